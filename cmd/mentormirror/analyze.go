package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/style"
	"github.com/spf13/cobra"
)

var (
	analyzeContent string
	analyzeMentor  string
	analyzeInfer   bool
	analyzeOut     string
	analyzeService string
	analyzeModel   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an author's writing style",
	Long: `Analyze the writing style of a content file and print (or save) the
structured style analysis.

Examples:
  mentormirror analyze --content blog-post.txt --mentor "Sam Altman"
  mentormirror analyze --content unknown.txt --infer-author
  mentormirror analyze --content post.txt -o style_analysis.json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeContent, "content", "", "Path to the content file (required)")
	analyzeCmd.Flags().StringVar(&analyzeMentor, "mentor", "", "Author name")
	analyzeCmd.Flags().BoolVar(&analyzeInfer, "infer-author", false, "Infer the author name from the content")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the analysis JSON to this file")
	analyzeCmd.Flags().StringVar(&analyzeService, "service", "", "LLM service: openai or google")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Model id for the selected service")
	analyzeCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyModelFlags(cfg, analyzeService, analyzeModel)
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}
	emulator := style.New(client)

	data, err := os.ReadFile(analyzeContent)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	text := string(data)

	mentorName := analyzeMentor
	if mentorName == "" && analyzeInfer {
		mentorName = emulator.InferAuthor(ctx, text)
		fmt.Printf("Inferred author: %s\n", mentorName)
	}

	analysis, err := emulator.AnalyzeStyle(ctx, text, mentorName)
	if err != nil {
		return err
	}

	out := analysis.Description()
	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, []byte(out), 0644); err != nil {
			return fmt.Errorf("write analysis: %w", err)
		}
		fmt.Printf("Style analysis saved to: %s\n", analyzeOut)
		return nil
	}

	fmt.Println(out)
	return nil
}
