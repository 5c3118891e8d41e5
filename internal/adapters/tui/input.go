package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/prj/internal/core/ports"
)

type inputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

func defaultInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

// InputModel is the Bubble Tea model behind Prompter.Input.
// The validation message is refreshed on every keystroke and blocks submission.
type InputModel struct {
	prompt    string
	input     textinput.Model
	validate  ports.Validator
	keys      inputKeyMap
	message   string
	submitted bool
	done      bool
}

// NewInputModel creates a single line input titled with prompt.
func NewInputModel(prompt string, validate ports.Validator) InputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Focus()

	m := InputModel{
		prompt:   prompt,
		input:    ti,
		validate: validate,
		keys:     defaultInputKeyMap(),
	}
	m.message = m.check()
	return m
}

// Init implements tea.Model.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			if m.message = m.check(); m.message != "" {
				return m, nil
			}
			m.submitted = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.message = m.check()
	return m, cmd
}

func (m InputModel) check() string {
	if m.validate == nil {
		return ""
	}
	return m.validate(m.input.Value())
}

// View implements tea.Model.
func (m InputModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(validationStyle.Render(m.message))
	} else {
		b.WriteString(hintStyle.Render("enter to confirm, esc to cancel"))
	}
	b.WriteString("\n")
	return b.String()
}

// Value returns the submitted text.
// ok is false if the prompt was dismissed.
func (m InputModel) Value() (string, bool) {
	return m.input.Value(), m.submitted
}
