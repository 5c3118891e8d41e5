// Package statusline renders the current project label on a terminal stream.
package statusline

import (
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/prj/internal/ui/output"
	"go.trai.ch/prj/internal/ui/style"
)

var _ ports.StatusIndicator = (*Indicator)(nil)

// Status is the label currently shown.
type Status struct {
	Text    string
	Tooltip string
	Command string
}

// Indicator implements ports.StatusIndicator as one line per change.
// Plain mode prints only the label so the output can feed shell prompts and status bars.
// Detailed mode adds the folder and the command that switches projects.
type Indicator struct {
	out      *termenv.Output
	detailed bool

	mu      sync.Mutex
	current *Status
}

// New creates an Indicator writing to w.
func New(w io.Writer, detailed bool) *Indicator {
	if w == nil {
		w = os.Stdout
	}
	return &Indicator{
		out:      output.New(w),
		detailed: detailed,
	}
}

// Show prints the label unless it is already shown.
func (i *Indicator) Show(text, tooltip, command string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	next := Status{Text: text, Tooltip: tooltip, Command: command}
	if i.current != nil && *i.current == next {
		return
	}
	i.current = &next

	line := i.out.String(text).Foreground(termenv.RGBColor(string(style.Iris))).Bold().String()
	if i.detailed {
		if tooltip != "" {
			line += "  " + i.out.String(tooltip).Foreground(termenv.RGBColor(string(style.Slate))).String()
		}
		if command != "" {
			hint := style.Dot + " " + domain.AppName + " " + command
			line += "  " + i.out.String(hint).Faint().String()
		}
	}
	_, _ = i.out.WriteString(line + "\n")
}

// Hide clears the label. A visible label is replaced by an empty line.
func (i *Indicator) Hide() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.current == nil {
		return
	}
	i.current = nil
	_, _ = i.out.WriteString("\n")
}

// Current returns the label being shown.
func (i *Indicator) Current() (Status, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.current == nil {
		return Status{}, false
	}
	return *i.current, true
}
