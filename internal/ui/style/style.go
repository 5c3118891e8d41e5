// Package style holds the colors and icons shared by every prj surface.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Severity pairs the icon and color used for one kind of message.
type Severity struct {
	Icon  string
	Color lipgloss.Color
}

// Severities shared by the log handler and the prompters.
var (
	Debug = Severity{Icon: Circle, Color: Slate}
	Info  = Severity{Color: Slate}
	Warn  = Severity{Icon: Warning, Color: Yellow}
	Error = Severity{Icon: Cross, Color: Red}
)

// Prefix returns msg preceded by the severity icon, if it has one.
func (s Severity) Prefix(msg string) string {
	if s.Icon == "" {
		return msg
	}
	return s.Icon + " " + msg
}
