package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the curriculum and your progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.NewList(manifest, state)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}
