// Package tui holds the bubbletea models for watch mode and the
// exercise list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/render"
	"github.com/zklings/zklings/internal/runner"
	"github.com/zklings/zklings/internal/watch"
)

// WatchModel re-runs the current exercise whenever a file is saved.
type WatchModel struct {
	manifest *exercise.Manifest
	state    *exercise.State
	run      *runner.Runner
	watcher  *watch.Watcher
	styles   render.Styles
	bar      progress.Model

	current  *exercise.Exercise
	output   string
	showHint bool
	showList bool
	list     ListModel
	running  bool
	finished bool
	width    int
	height   int
	err      error
}

// NewWatch builds the watch-mode model positioned at the first pending
// exercise.
func NewWatch(m *exercise.Manifest, st *exercise.State, run *runner.Runner, w *watch.Watcher) WatchModel {
	model := WatchModel{
		manifest: m,
		state:    st,
		run:      run,
		watcher:  w,
		styles:   render.DefaultStyles(),
		bar:      progress.New(progress.WithDefaultGradient()),
		width:    80,
		height:   24,
	}
	model.current = st.Resume(m)
	model.finished = model.current == nil
	return model
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.runCurrent(), m.waitForSave())
}

func (m WatchModel) runCurrent() tea.Cmd {
	ex := m.current
	if ex == nil || ex.Kind != exercise.KindCircuit {
		return nil
	}
	run := m.run
	return func() tea.Msg {
		report, err := run.Run(context.Background(), ex)
		if err != nil {
			return errMsg{err}
		}
		return runFinishedMsg{report}
	}
}

func (m WatchModel) waitForSave() tea.Cmd {
	events := m.watcher.Events()
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return fileSavedMsg{path}
	}
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-4, 60)
		if m.showList {
			next, cmd := m.list.Update(msg)
			m.list = next.(ListModel)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.showList {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "l", "esc":
				m.showList = false
				return m, nil
			}
			next, cmd := m.list.Update(msg)
			m.list = next.(ListModel)
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h":
			m.showHint = !m.showHint
			return m, nil
		case "l":
			m.showList = true
			sized, _ := NewList(m.manifest, m.state).Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.list = sized.(ListModel)
			return m, nil
		case "n":
			m.advance()
			m.output = ""
			m.showHint = false
			if m.current != nil {
				m.state.SetCurrent(m.current.Name)
				if err := m.state.Save(m.manifest); err != nil {
					m.err = err
					return m, nil
				}
			}
			return m, m.runCurrent()
		}
		return m, nil

	case fileSavedMsg:
		m.running = true
		return m, tea.Batch(m.runCurrent(), m.waitForSave())

	case runFinishedMsg:
		// A report can arrive after the user skipped ahead; results
		// for anything but the current exercise are stale.
		if m.current == nil || msg.report.Exercise.Name != m.current.Name {
			return m, nil
		}
		m.running = false
		m.output = strings.TrimRight(string(msg.report.Output), "\n")
		if msg.report.Success {
			m.state.MarkDone(msg.report.Exercise.Name)
			if err := m.state.Save(m.manifest); err != nil {
				m.err = err
				return m, nil
			}
			m.current = m.state.Next(m.manifest)
			m.finished = m.current == nil
			m.showHint = false
			return m, m.runCurrent()
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

// advance moves to the exercise after the current one in curriculum
// order, without marking anything done.
func (m *WatchModel) advance() {
	if m.current == nil {
		return
	}
	names := m.manifest.Names()
	for i, name := range names {
		if name == m.current.Name && i+1 < len(names) {
			next, _ := m.manifest.Get(names[i+1])
			m.current = next
			return
		}
	}
}

func (m WatchModel) View() string {
	if m.showList {
		return m.list.View()
	}

	var b strings.Builder

	total := len(m.manifest.Exercises)
	ratio := float64(m.state.NbDone()) / float64(total)
	b.WriteString(m.styles.Title.Render("zklings watch"))
	b.WriteString(fmt.Sprintf("  %d/%d\n", m.state.NbDone(), total))
	b.WriteString(m.bar.ViewAs(ratio))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Failure.Render("error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.finished {
		b.WriteString(m.styles.Success.Render("All exercises done!"))
		b.WriteString("\n")
		b.WriteString(render.Markdown(m.manifest.FinalMessage, m.width))
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("current: " + m.current.Path()))
	b.WriteString("\n\n")

	switch {
	case m.current.Kind == exercise.KindQuiz:
		b.WriteString(m.styles.Pending.Render("This one is a quiz. Answer it with: zklings run " + m.current.Name))
		b.WriteString("\n")
	case m.running:
		b.WriteString(m.styles.Muted.Render("checking..."))
		b.WriteString("\n")
	case m.output != "":
		b.WriteString(m.output)
		b.WriteString("\n")
	}

	if m.showHint {
		b.WriteString("\n")
		b.WriteString(render.Markdown(m.current.Hint, m.width))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("h hint · l list · n next · q quit"))
	b.WriteString("\n")
	return b.String()
}
