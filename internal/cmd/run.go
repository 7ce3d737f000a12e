package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/render"
	"github.com/zklings/zklings/internal/runner"
)

var runSolution bool

var runCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Check a single exercise (the current one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := currentOrNamed(args)
		if err != nil {
			return err
		}

		run := runner.New(manifest.Root(), log)
		var report *runner.Report
		if runSolution {
			report, err = run.RunSolution(cmd.Context(), ex)
		} else {
			report, err = run.Run(cmd.Context(), ex)
		}
		if err != nil {
			return err
		}

		styles := render.DefaultStyles()
		os.Stdout.Write(report.Output)
		if report.Pending {
			fmt.Println(styles.Pending.Render(fmt.Sprintf("%s passes but is still marked as unfinished", ex.Name)))
			return nil
		}
		if !report.Success {
			fmt.Println(styles.Failure.Render(fmt.Sprintf("%s failed", ex.Name)))
			os.Exit(1)
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("%s passed in %s", ex.Name, report.Duration.Round(time.Millisecond))))

		if !runSolution {
			state.MarkDone(ex.Name)
			if err := state.Save(manifest); err != nil {
				return err
			}
			if next := state.Next(manifest); next != nil {
				fmt.Println(styles.Muted.Render("next up: " + next.Name))
			} else {
				fmt.Println(render.Markdown(manifest.FinalMessage, 80))
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runSolution, "solution", false, "check the reference solution instead of your code")
}
