package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/render"
)

var hintCmd = &cobra.Command{
	Use:   "hint [name]",
	Short: "Show the hint for an exercise (the current one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := currentOrNamed(args)
		if err != nil {
			return err
		}
		fmt.Print(render.Markdown(ex.Hint, 80))
		return nil
	},
}
