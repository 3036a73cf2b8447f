package main

import (
	"fmt"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/keycheck"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Check configured API keys with live probes",
	Long: `Send a tiny probe request for each configured API key and report
whether it works.

Examples:
  mentormirror keys`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForKeys(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	checker := keycheck.New()
	failures := 0

	if cfg.GoogleAPIKey == "" {
		fmt.Println("Google: not configured (GOOGLE_API_KEY unset)")
	} else if reply, err := checker.CheckGoogle(ctx, cfg.GoogleAPIKey); err != nil {
		fmt.Printf("Google: FAILED: %v\n", err)
		failures++
	} else {
		fmt.Printf("Google: OK: %s\n", reply)
	}

	if cfg.OpenAIAPIKey == "" {
		fmt.Println("OpenAI: not configured (OPENAI_API_KEY unset)")
	} else if reply, err := checker.CheckOpenAI(ctx, cfg.OpenAIAPIKey); err != nil {
		fmt.Printf("OpenAI: FAILED: %v\n", err)
		failures++
	} else {
		fmt.Printf("OpenAI: OK: %s\n", reply)
	}

	if failures > 0 {
		return fmt.Errorf("%d key check(s) failed", failures)
	}
	return nil
}
