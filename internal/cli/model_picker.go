package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var pickerTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("99")).
	MarginLeft(2)

var pickerHelpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

// modelItem is a single model identifier in the picker list.
type modelItem struct {
	id      string
	current bool
}

func (i modelItem) Title() string {
	if i.current {
		return "✓ " + i.id
	}
	return "  " + i.id
}

func (i modelItem) Description() string {
	if i.current {
		return "current model"
	}
	return ""
}

func (i modelItem) FilterValue() string { return i.id }

type pickerKeyMap struct {
	confirm key.Binding
	abort   key.Binding
}

func newPickerKeyMap() *pickerKeyMap {
	return &pickerKeyMap{
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		abort: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "cancel"),
		),
	}
}

// modelPickerModel is the model for the single-select model list.
type modelPickerModel struct {
	list     list.Model
	choice   string
	quitting bool
	aborted  bool
}

func (m modelPickerModel) Init() tea.Cmd {
	return nil
}

func (m modelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list's filter input consume keystrokes while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		keys := newPickerKeyMap()
		switch {
		case key.Matches(msg, keys.confirm):
			if item, ok := m.list.SelectedItem().(modelItem); ok {
				m.choice = item.id
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.abort):
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelPickerModel) View() string {
	if m.quitting {
		return ""
	}

	help := pickerHelpStyle.Render("\n[enter] select • [/] filter • [esc/q] cancel")
	return fmt.Sprintf("%s%s", m.list.View(), help)
}

// PickModel shows an interactive single-select list of model identifiers.
// It returns an empty string when the user cancels.
func PickModel(models []string, current string) (string, error) {
	items := make([]list.Item, len(models))
	for i, id := range models {
		items[i] = modelItem{id: id, current: id == current}
	}

	const defaultHeight = 20
	l := list.New(items, list.NewDefaultDelegate(), 0, defaultHeight)
	l.Title = "Select a chat model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = pickerTitleStyle

	p := tea.NewProgram(modelPickerModel{list: l}, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return "", err
	}

	finalModel := result.(modelPickerModel)
	if finalModel.aborted {
		return "", nil
	}
	return finalModel.choice, nil
}
