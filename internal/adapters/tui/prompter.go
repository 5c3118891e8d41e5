// Package tui provides the interactive terminal prompter.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/prj/internal/ui/output"
	"go.trai.ch/prj/internal/ui/style"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter with Bubble Tea programs.
type Prompter struct {
	out        *termenv.Output
	teaOptions []tea.ProgramOption
}

// NewPrompter creates a Prompter reading keys from in and drawing on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	o := output.New(out)
	lipgloss.SetColorProfile(o.Profile)

	return &Prompter{
		out: o,
		teaOptions: []tea.ProgramOption{
			tea.WithInput(in),
			tea.WithOutput(out),
		},
	}
}

// WithTeaOptions adds bubbletea program options to the Prompter.
// This is primarily used for testing to disable input/output.
func (p *Prompter) WithTeaOptions(opts ...tea.ProgramOption) *Prompter {
	p.teaOptions = append(p.teaOptions, opts...)
	return p
}

// Pick shows a filterable list and returns the chosen index.
func (p *Prompter) Pick(ctx context.Context, placeholder string, items []ports.PickItem) (int, bool, error) {
	final, err := p.run(ctx, NewPickerModel(placeholder, items))
	if err != nil {
		return 0, false, err
	}
	idx, ok := final.(PickerModel).Selected()
	return idx, ok, nil
}

// Input asks for a single line of text, validating it while it is typed.
func (p *Prompter) Input(ctx context.Context, prompt string, validate ports.Validator) (string, bool, error) {
	final, err := p.run(ctx, NewInputModel(prompt, validate))
	if err != nil {
		return "", false, err
	}
	value, ok := final.(InputModel).Value()
	return value, ok, nil
}

// Info shows an informational message below the prompt.
func (p *Prompter) Info(msg string) {
	p.print(style.Info.Prefix(msg), style.Info.Color)
}

// Error shows an error message below the prompt.
func (p *Prompter) Error(msg string) {
	p.print(style.Error.Prefix(msg), style.Error.Color)
}

func (p *Prompter) print(msg string, color lipgloss.Color) {
	styled := p.out.String(msg).Foreground(termenv.RGBColor(string(color)))
	_, _ = p.out.WriteString(styled.String() + "\n")
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.teaOptions...)
	final, err := tea.NewProgram(model, opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}
	return final, nil
}
