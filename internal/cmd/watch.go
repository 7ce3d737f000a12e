package cmd

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/runner"
	"github.com/zklings/zklings/internal/tui"
	"github.com/zklings/zklings/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check the current exercise whenever you save",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func runWatch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dirs := make([]string, 0, len(manifest.Exercises))
	seen := make(map[string]bool)
	for i := range manifest.Exercises {
		dir := filepath.Join(manifest.Root(), manifest.Exercises[i].Path())
		if manifest.Exercises[i].Kind != exercise.KindCircuit {
			dir = filepath.Dir(dir)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	w, err := watch.New(dirs, log)
	if err != nil {
		return err
	}
	defer w.Stop()
	w.Start(ctx)

	run := runner.New(manifest.Root(), log)
	model := tui.NewWatch(manifest, state, run, w)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
