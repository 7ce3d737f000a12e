package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zklings/zklings/internal/exercise"
)

type listItem struct {
	name   string
	path   string
	status string
}

func (i listItem) Title() string       { return i.status + " " + i.name }
func (i listItem) Description() string { return i.path }
func (i listItem) FilterValue() string { return i.name }

// ListModel shows the curriculum with per-exercise progress.
type ListModel struct {
	list list.Model
}

// NewList builds the exercise list. The current (first pending)
// exercise is marked with an arrow, completed ones with a check.
func NewList(m *exercise.Manifest, st *exercise.State) ListModel {
	current := st.Next(m)

	items := make([]list.Item, 0, len(m.Exercises))
	for i := range m.Exercises {
		ex := &m.Exercises[i]
		status := "○"
		switch {
		case st.IsDone(ex.Name):
			status = "✓"
		case current != nil && ex.Name == current.Name:
			status = "→"
		}
		items = append(items, listItem{name: ex.Name, path: ex.Path(), status: status})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "zklings exercises"
	return ListModel{list: l}
}

func (m ListModel) Init() tea.Cmd { return nil }

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ListModel) View() string { return m.list.View() }
