package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/prj/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	validationStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	pickerStyle = lipgloss.NewStyle().Padding(1, 2)
)
