package main

import (
	"fmt"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/mentor"
	"github.com/abdulachik/mentormirror/internal/store"
	"github.com/abdulachik/mentormirror/internal/tts"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	sessionMentor  string
	sessionContent string
	sessionTopic   string
	sessionService string
	sessionModel   string
	sessionSpeak   bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run a full mentor analysis session",
	Long: `Run the complete pipeline on a content file: style analysis, mentor
prompts, daily mentor-gram, styled content, and a session summary, all
saved to a timestamped session directory.

Examples:
  mentormirror session --content blog-post.txt --mentor "Sam Altman"
  mentormirror session --content post.txt --topic "finding clarity" --speak
  mentormirror session --content post.txt --service google --model gemini-2.0-flash`,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().StringVar(&sessionMentor, "mentor", "", "Mentor name (inferred from content when omitted)")
	sessionCmd.Flags().StringVar(&sessionContent, "content", "", "Path to the mentor content file (required)")
	sessionCmd.Flags().StringVar(&sessionTopic, "topic", "", "Mentor-gram topic (random when omitted)")
	sessionCmd.Flags().StringVar(&sessionService, "service", "", "LLM service: openai or google")
	sessionCmd.Flags().StringVar(&sessionModel, "model", "", "Model id for the selected service")
	sessionCmd.Flags().BoolVar(&sessionSpeak, "speak", false, "Render the mentor-gram to MP3")
	sessionCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyModelFlags(cfg, sessionService, sessionModel)
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if sessionSpeak {
		if err := cfg.ValidateForSpeech(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}

	st, err := store.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	passages := openCorpus(cfg)
	if passages != nil {
		defer passages.Close()
	}

	var speech *tts.Client
	if sessionSpeak {
		speech = tts.New(tts.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.TTSModel,
			Voice:  cfg.TTSVoice,
		})
	}

	pipeline := mentor.NewPipeline(cfg, client, st, passages, speech)
	result, err := pipeline.Run(ctx, mentor.Options{
		Mentor:      sessionMentor,
		ContentPath: sessionContent,
		Topic:       sessionTopic,
		Speak:       sessionSpeak,
	})
	if err != nil {
		return err
	}

	printMentorgram(result.Mentorgram)

	fmt.Printf("\nSession complete. Files created in: %s\n", result.Session.Dir)
	for _, f := range result.Summary.FilesGenerated {
		fmt.Printf("  - %s\n", f)
	}
	if result.AudioPath != "" {
		fmt.Printf("Audio: %s\n", result.AudioPath)
	}
	return nil
}

// printMentorgram renders the mentor-gram as markdown in the terminal,
// falling back to plain text when rendering fails.
func printMentorgram(mg *mentor.Mentorgram) {
	md := mg.Markdown()
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err == nil {
		if out, rerr := renderer.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}
