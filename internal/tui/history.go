package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DreamwareDevelopment/timescape/internal/store"
)

// pickItem implements list.Item for store.Pick.
type pickItem struct {
	pick store.Pick
}

func (i pickItem) Title() string {
	return i.pick.Chosen.Format("Mon, 02 Jan 2006 15:04:05")
}

func (i pickItem) Description() string {
	return fmt.Sprintf("picked %s", i.pick.PickedAt.Local().Format("2006-01-02 15:04"))
}

func (i pickItem) FilterValue() string {
	return i.pick.Chosen.Format("2006-01-02 15:04:05")
}

type historyModel struct {
	list   list.Model
	chosen *store.Pick
}

func newHistoryModel(picks []store.Pick) historyModel {
	items := make([]list.Item, 0, len(picks))
	for _, p := range picks {
		items = append(items, pickItem{pick: p})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pick history"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return historyModel{list: l}
}

func (m historyModel) Init() tea.Cmd { return nil }

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		// Don't intercept keys while the list's filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if it, ok := m.list.SelectedItem().(pickItem); ok {
				p := it.pick
				m.chosen = &p
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	return lipgloss.NewStyle().Padding(1, 1).Render(m.list.View())
}

// BrowseHistory opens an interactive history list and returns the selected
// pick, or nil when the user backed out.
func BrowseHistory(picks []store.Pick) (*store.Pick, error) {
	applyColorProfilePreference()
	applyThemePreference()

	out, err := tea.NewProgram(newHistoryModel(picks), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return out.(historyModel).chosen, nil
}
