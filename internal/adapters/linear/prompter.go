// Package linear provides a line-based prompter for pipes, dumb terminals and CI.
package linear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/prj/internal/ui/output"
	"go.trai.ch/prj/internal/ui/style"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter by printing numbered choices and reading answers line by line.
// End of input dismisses any prompt; an empty line also dismisses a choice.
type Prompter struct {
	in     *bufio.Reader
	output *termenv.Output

	mu sync.Mutex
	// pending delivers the line of a read that outlived its prompt's context.
	// At most one read runs at a time.
	pending chan lineResult
}

// NewPrompter creates a Prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	return &Prompter{
		in:     bufio.NewReader(in),
		output: output.NewWithProfile(out, output.ColorProfileANSI),
	}
}

// Pick prints the items numbered from 1 and reads a number or an exact label.
func (p *Prompter) Pick(ctx context.Context, placeholder string, items []ports.PickItem) (int, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(p.styled(placeholder, style.Iris))
	width := len(strconv.Itoa(len(items)))
	for i, it := range items {
		line := fmt.Sprintf("  %*d) %s", width, i+1, it.Label)
		if it.Description != "" {
			line += "  " + p.styled(it.Description, style.Slate)
		}
		p.println(line)
	}

	for {
		answer, _, err := p.readLine(ctx, "> ")
		if err != nil || answer == "" {
			return 0, false, err
		}
		if idx, found := choose(answer, items); found {
			return idx, true, nil
		}
		p.println(p.styled(style.Error.Prefix("not a valid choice: "+answer), style.Error.Color))
	}
}

// Input reads one line of text. Rejected answers, empty ones included, print the
// validation message and ask again.
func (p *Prompter) Input(ctx context.Context, prompt string, validate ports.Validator) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		answer, eof, err := p.readLine(ctx, prompt+": ")
		if err != nil || (eof && answer == "") {
			return "", false, err
		}
		if validate != nil {
			if msg := validate(answer); msg != "" {
				p.println(p.styled(style.Error.Prefix(msg), style.Error.Color))
				continue
			}
		}
		return answer, true, nil
	}
}

// Info prints an informational message.
func (p *Prompter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.println(msg)
}

// Error prints an error message.
func (p *Prompter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.println(p.styled(style.Error.Prefix(msg), style.Error.Color))
}

// choose maps an answer to an item index, by 1-based number or exact label.
func choose(answer string, items []ports.PickItem) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(items) {
			return n - 1, true
		}
		return 0, false
	}
	for i, it := range items {
		if it.Label == answer {
			return i, true
		}
	}
	return 0, false
}

type lineResult struct {
	line string
	err  error
}

// readLine prints prompt and reads the next answer, trimmed.
// eof reports that input has ended; answer then holds any unterminated last line.
// When ctx ends first the read stays pending and the next call picks up its line.
func (p *Prompter) readLine(ctx context.Context, prompt string) (answer string, eof bool, err error) {
	_, _ = p.output.WriteString(prompt)

	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		p.println("")
		return "", false, ctx.Err()
	case res = <-p.pending:
		p.pending = nil
	}

	answer = strings.TrimSpace(res.line)
	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", false, res.err
		}
		p.println("")
		return answer, true, nil
	}
	return answer, false, nil
}

func (p *Prompter) styled(s string, color lipgloss.Color) string {
	return p.output.String(s).Foreground(termenv.RGBColor(string(color))).String()
}

func (p *Prompter) println(s string) {
	_, _ = p.output.WriteString(s + "\n")
}
