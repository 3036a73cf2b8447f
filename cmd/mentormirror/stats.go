package main

import (
	"fmt"
	"sort"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	Long:  `Print counts of recorded sessions, mentor-grams, scrapes, and artifacts, plus a per-mentor session breakdown.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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

	sessions, err := st.CountSessions(ctx)
	if err != nil {
		return err
	}
	grams, err := st.CountMentorgrams(ctx)
	if err != nil {
		return err
	}
	scrapes, err := st.CountScrapes(ctx)
	if err != nil {
		return err
	}
	artifacts, err := st.CountArtifacts(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Sessions:     %d\n", sessions)
	fmt.Printf("Mentor-grams: %d\n", grams)
	fmt.Printf("Scrapes:      %d\n", scrapes)
	fmt.Printf("Artifacts:    %d\n", artifacts)

	byMentor, err := st.SessionsByMentor(ctx)
	if err != nil {
		return err
	}
	if len(byMentor) > 0 {
		fmt.Println("\nSessions by mentor:")
		names := make([]string, 0, len(byMentor))
		for name := range byMentor {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-30s %d\n", name, byMentor[name])
		}
	}
	return nil
}
