package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/stats"
)

var statsOut string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Chart constraint counts and progress as an HTML report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := stats.Collect(manifest, state, log)
		if err != nil {
			return err
		}
		f, err := os.Create(statsOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := stats.WriteChart(f, metrics); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", statsOut)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsOut, "out", "o", "zklings-stats.html", "output HTML file")
}
