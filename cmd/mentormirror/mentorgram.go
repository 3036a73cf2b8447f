package main

import (
	"fmt"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/mentor"
	"github.com/abdulachik/mentormirror/internal/store"
	"github.com/spf13/cobra"
)

var (
	gramMentor  string
	gramTopic   string
	gramService string
	gramModel   string
)

var mentorgramCmd = &cobra.Command{
	Use:   "mentorgram",
	Short: "Generate a daily mentor-gram",
	Long: `Generate a daily mentor-gram (quote, action, reflection) in a mentor's
voice. The topic is drawn at random when not given.

Examples:
  mentormirror mentorgram --mentor "Marcus Aurelius"
  mentormirror mentorgram --mentor "Sam Altman" --topic "making hard decisions"`,
	RunE: runMentorgram,
}

func init() {
	mentorgramCmd.Flags().StringVar(&gramMentor, "mentor", "", "Mentor name (required)")
	mentorgramCmd.Flags().StringVar(&gramTopic, "topic", "", "Topic (random when omitted)")
	mentorgramCmd.Flags().StringVar(&gramService, "service", "", "LLM service: openai or google")
	mentorgramCmd.Flags().StringVar(&gramModel, "model", "", "Model id for the selected service")
	mentorgramCmd.MarkFlagRequired("mentor")
	rootCmd.AddCommand(mentorgramCmd)
}

func runMentorgram(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyModelFlags(cfg, gramService, gramModel)
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}

	mg, err := mentor.GenerateMentorgram(ctx, client, gramMentor, gramTopic, cfg.MentorgramTries)
	if err != nil {
		return err
	}

	printMentorgram(mg)

	// Record in history; the mentor-gram itself already printed, so
	// history failures are not fatal.
	st, err := store.NewStore(ctx, cfg.DatabasePath)
	if err == nil {
		defer st.Close()
		if err := st.Migrate(ctx); err == nil {
			_ = st.CreateMentorgram(ctx, store.MentorgramRecord{
				Mentor:     mg.Mentor,
				Topic:      mg.Topic,
				Quote:      mg.Quote,
				Action:     mg.Action,
				Reflection: mg.Reflection,
				Date:       mg.Date,
			})
		}
	}

	return nil
}
