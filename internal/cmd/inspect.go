package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/inspect"
	"github.com/zklings/zklings/solutions"
)

var inspectDump bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Compile the reference solution and show its constraint counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := solutions.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no circuit solution named %q (quizzes cannot be inspected)", args[0])
		}
		ccs, err := inspect.Compile(entry.New())
		if err != nil {
			return fmt.Errorf("compile %s: %w", args[0], err)
		}
		fmt.Println(inspect.Summarize(ccs))
		if inspectDump {
			fmt.Println()
			return inspect.Dump(os.Stdout, ccs)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectDump, "constraints", false, "print every R1CS constraint")
}
