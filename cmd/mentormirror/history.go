package main

import (
	"fmt"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/store"
	"github.com/spf13/cobra"
)

var (
	historyMentor string
	historyLimit  int
	historyGrams  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sessions and mentor-grams",
	Long: `List recent mentor sessions, or mentor-grams with --grams.

Examples:
  mentormirror history
  mentormirror history --grams --mentor "Sam Altman" --limit 5`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyMentor, "mentor", "", "Filter mentor-grams by mentor")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum rows to show")
	historyCmd.Flags().BoolVar(&historyGrams, "grams", false, "Show mentor-grams instead of sessions")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	st, err := store.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if historyGrams {
		grams, err := st.ListMentorgrams(ctx, historyMentor, historyLimit)
		if err != nil {
			return err
		}
		if len(grams) == 0 {
			fmt.Println("No mentor-grams recorded yet.")
			return nil
		}
		for _, g := range grams {
			fmt.Printf("%s  %s  [%s]\n", g.Date, g.Mentor, g.Topic)
			fmt.Printf("  %q\n", g.Quote)
		}
		return nil
	}

	sessions, err := st.ListSessions(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}
	for _, s := range sessions {
		fmt.Printf("%s  %s  %s/%s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Mentor, s.Service, s.Model)
		fmt.Printf("  %s\n", s.Dir)
	}
	return nil
}
