package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/tts"
	"github.com/spf13/cobra"
)

var (
	speakText  string
	speakIn    string
	speakOut   string
	speakVoice string
)

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Convert text to MP3 audio",
	Long: `Convert text to speech and write the MP3 to a file.

Examples:
  mentormirror speak --text "Keep going." -o hello.mp3
  mentormirror speak --in sess/generated_content_focus.txt -o essay.mp3 --voice nova`,
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().StringVar(&speakText, "text", "", "Text to speak")
	speakCmd.Flags().StringVar(&speakIn, "in", "", "File holding the text to speak")
	speakCmd.Flags().StringVarP(&speakOut, "out", "o", "speech.mp3", "Output MP3 path")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "Voice to use (defaults to TTS_VOICE)")
	rootCmd.AddCommand(speakCmd)
}

func runSpeak(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if speakText == "" && speakIn == "" {
		return fmt.Errorf("provide --text or --in")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForSpeech(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	text := speakText
	if text == "" {
		data, err := os.ReadFile(speakIn)
		if err != nil {
			return fmt.Errorf("read input text: %w", err)
		}
		text = string(data)
	}

	voice := cfg.TTSVoice
	if speakVoice != "" {
		voice = speakVoice
	}

	client := tts.New(tts.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.TTSModel,
		Voice:  voice,
	})

	audio, err := client.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	if err := os.WriteFile(speakOut, audio, 0644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	fmt.Printf("Audio saved to: %s (%d bytes)\n", speakOut, len(audio))
	return nil
}
