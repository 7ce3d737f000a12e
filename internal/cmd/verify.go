package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/render"
	"github.com/zklings/zklings/internal/runner"
)

var verifyParallel bool

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every circuit exercise in curriculum order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		run := runner.New(manifest.Root(), log)

		circuits := make([]*exercise.Exercise, 0, len(manifest.Exercises))
		for i := range manifest.Exercises {
			if manifest.Exercises[i].Kind == exercise.KindCircuit {
				circuits = append(circuits, &manifest.Exercises[i])
			}
		}

		if verifyParallel {
			reports := make([]*runner.Report, len(circuits))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.NumCPU())
			for i, ex := range circuits {
				g.Go(func() error {
					report, err := run.Run(ctx, ex)
					if err != nil {
						return fmt.Errorf("%s: %w", ex.Name, err)
					}
					reports[i] = report
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			failed := 0
			for i, report := range reports {
				if !settle(circuits[i], report) {
					failed++
				}
			}
			if err := state.Save(manifest); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d exercises failing", failed, len(circuits))
			}
			printProgress()
			return nil
		}

		// Sequential mode stops at the first failing exercise, like
		// working through the curriculum by hand.
		for _, ex := range circuits {
			report, err := run.Run(cmd.Context(), ex)
			if err != nil {
				return fmt.Errorf("%s: %w", ex.Name, err)
			}
			if !settle(ex, report) {
				if err := state.Save(manifest); err != nil {
					return err
				}
				return fmt.Errorf("%s is not passing, fix it before moving on", ex.Name)
			}
		}
		if err := state.Save(manifest); err != nil {
			return err
		}
		printProgress()
		return nil
	},
}

// settle prints the per-exercise verdict and records passing exercises
// as done. It reports whether the exercise counts as passing; a pending
// exercise is not a failure, it just is not done yet.
func settle(ex *exercise.Exercise, report *runner.Report) bool {
	styles := render.DefaultStyles()
	switch {
	case report.Pending:
		fmt.Println(styles.Pending.Render("○ " + ex.Name + " (not started)"))
		return true
	case !report.Success:
		fmt.Println(styles.Failure.Render("✗ " + ex.Name))
		os.Stdout.Write(report.Output)
		return false
	default:
		fmt.Println(styles.Success.Render("✓ " + ex.Name))
		state.MarkDone(ex.Name)
		return true
	}
}

func printProgress() {
	styles := render.DefaultStyles()
	fmt.Println(styles.Muted.Render(fmt.Sprintf("%d/%d done", state.NbDone(), len(manifest.Exercises))))
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyParallel, "parallel", false, "check exercises concurrently")
}
