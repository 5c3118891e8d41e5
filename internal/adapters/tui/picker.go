package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/prj/internal/core/ports"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

// pickerItem wraps a ports.PickItem and remembers its position in the caller's slice.
type pickerItem struct {
	index int
	item  ports.PickItem
}

func (i pickerItem) Title() string       { return i.item.Label }
func (i pickerItem) Description() string { return i.item.Description }
func (i pickerItem) FilterValue() string { return i.item.Label + " " + i.item.Description }

type pickerKeyMap struct {
	Enter  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// PickerModel is the Bubble Tea model behind Prompter.Pick.
type PickerModel struct {
	list     list.Model
	keys     pickerKeyMap
	selected int
	done     bool
}

// NewPickerModel creates a filterable list of items titled with placeholder.
func NewPickerModel(placeholder string, items []ports.PickItem) PickerModel {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = pickerItem{index: i, item: it}
	}

	keys := defaultPickerKeyMap()
	l := list.New(listItems, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = placeholder
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Enter, keys.Cancel}
	}

	return PickerModel{
		list:     l,
		keys:     keys,
		selected: -1,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := pickerStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}

		// While the filter is being typed, enter and esc belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Cancel) && m.list.FilterState() == list.Unfiltered:
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Enter):
			if it, ok := m.list.SelectedItem().(pickerItem); ok {
				m.selected = it.index
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.done {
		return ""
	}
	return pickerStyle.Render(m.list.View())
}

// Selected returns the index of the chosen item.
// ok is false if the picker was dismissed.
func (m PickerModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}
