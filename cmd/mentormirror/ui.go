package main

import (
	"fmt"

	"github.com/abdulachik/mentormirror/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive control panel",
	Long: `Launch the terminal control panel. It drives the scrape and session
workflows as subprocesses and streams their output into a console view.`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	program := tea.NewProgram(ui.New(), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run control panel: %w", err)
	}
	return nil
}
