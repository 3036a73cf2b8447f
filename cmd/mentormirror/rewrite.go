package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/style"
	"github.com/spf13/cobra"
)

var (
	rewriteAnalysis string
	rewriteContent  string
	rewriteText     string
	rewriteIn       string
	rewriteOut      string
	rewriteMentor   string
	rewriteService  string
	rewriteModel    string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite text in a mentor's style",
	Long: `Rewrite text to match an analyzed writing style while preserving its
meaning. The style comes from a saved style_analysis.json, or is
analyzed fresh from a content file.

Examples:
  mentormirror rewrite --analysis sess/style_analysis.json --text "My draft paragraph."
  mentormirror rewrite --content blog-post.txt --in draft.txt -o rewritten.txt`,
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVar(&rewriteAnalysis, "analysis", "", "Path to a saved style_analysis.json")
	rewriteCmd.Flags().StringVar(&rewriteContent, "content", "", "Content file to analyze when no saved analysis is given")
	rewriteCmd.Flags().StringVar(&rewriteText, "text", "", "Text to rewrite")
	rewriteCmd.Flags().StringVar(&rewriteIn, "in", "", "File holding the text to rewrite")
	rewriteCmd.Flags().StringVarP(&rewriteOut, "out", "o", "", "Write the rewritten text to this file")
	rewriteCmd.Flags().StringVar(&rewriteMentor, "mentor", "", "Author name for fresh analysis")
	rewriteCmd.Flags().StringVar(&rewriteService, "service", "", "LLM service: openai or google")
	rewriteCmd.Flags().StringVar(&rewriteModel, "model", "", "Model id for the selected service")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if rewriteText == "" && rewriteIn == "" {
		return fmt.Errorf("provide --text or --in")
	}
	if rewriteAnalysis == "" && rewriteContent == "" {
		return fmt.Errorf("provide --analysis or --content")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyModelFlags(cfg, rewriteService, rewriteModel)
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}
	emulator := style.New(client)

	analysis, err := resolveAnalysis(cmd, emulator, rewriteAnalysis, rewriteContent, rewriteMentor)
	if err != nil {
		return err
	}

	text := rewriteText
	if text == "" {
		data, err := os.ReadFile(rewriteIn)
		if err != nil {
			return fmt.Errorf("read input text: %w", err)
		}
		text = string(data)
	}

	rewritten, err := emulator.RewriteInStyle(ctx, analysis, text)
	if err != nil {
		return err
	}

	if rewriteOut != "" {
		if err := os.WriteFile(rewriteOut, []byte(rewritten), 0644); err != nil {
			return fmt.Errorf("write rewritten text: %w", err)
		}
		fmt.Printf("Rewritten text saved to: %s\n", rewriteOut)
		return nil
	}

	fmt.Println(rewritten)
	return nil
}

// resolveAnalysis loads a saved analysis or runs a fresh one on a
// content file.
func resolveAnalysis(cmd *cobra.Command, emulator *style.Emulator, analysisPath, contentPath, mentorName string) (style.Analysis, error) {
	if analysisPath != "" {
		return loadAnalysis(analysisPath)
	}

	data, err := os.ReadFile(contentPath)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return emulator.AnalyzeStyle(cmd.Context(), string(data), mentorName)
}
