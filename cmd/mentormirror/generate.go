package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/style"
	"github.com/spf13/cobra"
)

var (
	generateAnalysis string
	generateContent  string
	generateTopic    string
	generateOut      string
	generateMentor   string
	generateService  string
	generateModel    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new content in a mentor's style",
	Long: `Generate new content about a topic in an analyzed writing style.
When a mentor corpus exists, relevant scraped passages are retrieved
and attached to the prompt as style exemplars.

Examples:
  mentormirror generate --analysis sess/style_analysis.json --mentor "Sam Altman" --topic "startups"
  mentormirror generate --content post.txt --topic "focus" -o essay.txt`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateAnalysis, "analysis", "", "Path to a saved style_analysis.json")
	generateCmd.Flags().StringVar(&generateContent, "content", "", "Content file to analyze when no saved analysis is given")
	generateCmd.Flags().StringVar(&generateTopic, "topic", "", "Topic to write about (required)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write the generated content to this file")
	generateCmd.Flags().StringVar(&generateMentor, "mentor", "", "Mentor name for exemplar retrieval and fresh analysis")
	generateCmd.Flags().StringVar(&generateService, "service", "", "LLM service: openai or google")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Model id for the selected service")
	generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if generateAnalysis == "" && generateContent == "" {
		return fmt.Errorf("provide --analysis or --content")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyModelFlags(cfg, generateService, generateModel)
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}
	emulator := style.New(client)

	analysis, err := resolveAnalysis(cmd, emulator, generateAnalysis, generateContent, generateMentor)
	if err != nil {
		return err
	}

	var exemplars []string
	if generateMentor != "" {
		if passages := openCorpus(cfg); passages != nil {
			defer passages.Close()
			exemplars, err = passages.ExemplarTexts(ctx, generateMentor, generateTopic, cfg.ExemplarPassages)
			if err != nil {
				exemplars = nil
			}
		}
	}

	content, err := emulator.GenerateStyled(ctx, analysis, generateTopic, exemplars)
	if err != nil {
		return err
	}

	if generateOut != "" {
		if err := os.WriteFile(generateOut, []byte(content), 0644); err != nil {
			return fmt.Errorf("write generated content: %w", err)
		}
		fmt.Printf("Generated content saved to: %s\n", generateOut)
		return nil
	}

	fmt.Println(content)
	return nil
}
