package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/runner"
)

const manifestFixture = `format_version: 1
exercises:
  - name: ex1
    dir: a/ex1
    kind: circuit
    hint: "first hint"
  - name: ex2
    dir: b/ex2
    kind: circuit
    hint: "second hint"
`

func fixture(t *testing.T) (*exercise.Manifest, *exercise.State) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"exercises/a/ex1", "exercises/b/ex2"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, exercise.ManifestFile), []byte(manifestFixture), 0o644))

	m, err := exercise.Load(root)
	require.NoError(t, err)
	st, err := exercise.LoadState(m)
	require.NoError(t, err)
	return m, st
}

func TestWatchAdvancesOnSuccess(t *testing.T) {
	m, st := fixture(t)
	model := NewWatch(m, st, nil, nil)
	require.Equal(t, "ex1", model.current.Name)

	ex1, err := m.Get("ex1")
	require.NoError(t, err)

	next, _ := model.Update(runFinishedMsg{report: &runner.Report{Exercise: ex1, Success: true, Output: []byte("ok")}})
	got := next.(WatchModel)
	require.True(t, got.state.IsDone("ex1"))
	require.Equal(t, "ex2", got.current.Name)
}

func TestWatchStaysOnFailure(t *testing.T) {
	m, st := fixture(t)
	model := NewWatch(m, st, nil, nil)

	ex1, err := m.Get("ex1")
	require.NoError(t, err)

	next, _ := model.Update(runFinishedMsg{report: &runner.Report{Exercise: ex1, Success: false, Output: []byte("boom")}})
	got := next.(WatchModel)
	require.False(t, got.state.IsDone("ex1"))
	require.Equal(t, "ex1", got.current.Name)
	require.Contains(t, got.View(), "boom")
}

func TestWatchSkipKey(t *testing.T) {
	m, st := fixture(t)
	model := NewWatch(m, st, nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	got := next.(WatchModel)
	require.Equal(t, "ex2", got.current.Name)
	// nothing was marked done by skipping
	require.Equal(t, 0, got.state.NbDone())

	// the skip is persisted, so a restart resumes at ex2
	reloaded, err := exercise.LoadState(m)
	require.NoError(t, err)
	require.Equal(t, "ex2", reloaded.Current)
	resumed := NewWatch(m, reloaded, nil, nil)
	require.Equal(t, "ex2", resumed.current.Name)
}

func TestWatchIgnoresStaleReport(t *testing.T) {
	m, st := fixture(t)
	model := NewWatch(m, st, nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	got := next.(WatchModel)
	require.Equal(t, "ex2", got.current.Name)

	// a result for ex1 arriving after the skip must not be shown or
	// counted against ex2
	ex1, err := m.Get("ex1")
	require.NoError(t, err)
	next, _ = got.Update(runFinishedMsg{report: &runner.Report{Exercise: ex1, Success: true, Output: []byte("late")}})
	got = next.(WatchModel)
	require.Equal(t, "ex2", got.current.Name)
	require.False(t, got.state.IsDone("ex1"))
	require.NotContains(t, got.View(), "late")
}

func TestWatchListToggle(t *testing.T) {
	m, st := fixture(t)
	model := NewWatch(m, st, nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	got := next.(WatchModel)
	require.Contains(t, got.View(), "zklings exercises")

	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	got = next.(WatchModel)
	require.Contains(t, got.View(), "h hint · l list · n next · q quit")
}

func TestWatchHintToggle(t *testing.T) {
	m, st := fixture(t)
	model := NewWatch(m, st, nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	got := next.(WatchModel)
	require.Contains(t, got.View(), "first hint")
}

func TestListStatuses(t *testing.T) {
	m, st := fixture(t)
	st.MarkDone("ex1")

	model := NewList(m, st)
	sized, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	view := sized.View()
	require.Contains(t, view, "✓ ex1")
	require.Contains(t, view, "→ ex2")
}
