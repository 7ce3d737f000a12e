package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	zklings "github.com/zklings/zklings"
	"github.com/zklings/zklings/internal/exercise"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Restore an exercise to its pristine state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := manifest.Get(args[0])
		if err != nil {
			return err
		}
		if err := restore(ex); err != nil {
			return err
		}
		state.MarkPending(ex.Name)
		if err := state.Save(manifest); err != nil {
			return err
		}
		fmt.Printf("%s restored\n", ex.Path())
		return nil
	},
}

// restore copies the embedded pristine files of the exercise over the
// working copy.
func restore(ex *exercise.Exercise) error {
	src := filepath.ToSlash(ex.Path())
	if ex.Kind == exercise.KindQuiz {
		data, err := zklings.Pristine.ReadFile(src)
		if err != nil {
			return fmt.Errorf("embedded copy of %s: %w", src, err)
		}
		return os.WriteFile(filepath.Join(manifest.Root(), ex.Path()), data, 0o644)
	}
	return fs.WalkDir(zklings.Pristine, src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("embedded copy of %s: %w", src, err)
		}
		if d.IsDir() {
			return nil
		}
		data, err := zklings.Pristine.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(manifest.Root(), filepath.FromSlash(path)), data, 0o644)
	})
}
