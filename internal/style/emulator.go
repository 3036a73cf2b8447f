// Package style analyzes an author's writing style via an LLM call and
// builds the prompts used to emulate that style.
package style

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abdulachik/mentormirror/internal/llm"
)

const (
	// inferExcerptLen caps how much text goes into author inference.
	inferExcerptLen = 2000

	// maxAuthorLen and maxAuthorWords bound what counts as a
	// plausible inferred name.
	maxAuthorLen   = 50
	maxAuthorWords = 4
)

// UnknownAuthor is returned when inference cannot name the author.
const UnknownAuthor = "Unknown Author"

// Emulator analyzes and emulates author writing styles.
type Emulator struct {
	client llm.Client
}

// New creates a new Emulator backed by the given client.
func New(client llm.Client) *Emulator {
	return &Emulator{client: client}
}

// AnalyzeStyle asks the model to characterize the author's style and
// parses the result, degrading to a textual fallback when the model
// does not return valid JSON.
func (e *Emulator) AnalyzeStyle(ctx context.Context, text, authorName string) (Analysis, error) {
	if authorName == "" {
		authorName = UnknownAuthor
	}

	prompt := fmt.Sprintf(AnalysisPrompt, authorName, text)
	response, err := e.client.Complete(ctx, AnalysisSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("analyze style: %w", err)
	}

	analysis := ParseAnalysis(response)
	if analysis.IsRaw() {
		slog.Warn("style analysis did not parse as JSON, keeping raw text",
			"author", authorName,
			"length", len(response),
		)
	}

	return analysis, nil
}

// InferAuthor attempts to name the author from the content alone.
// Failures and implausible answers collapse to UnknownAuthor.
func (e *Emulator) InferAuthor(ctx context.Context, text string) string {
	excerpt := text
	if len(excerpt) > inferExcerptLen {
		excerpt = excerpt[:inferExcerptLen] + "..."
	}

	response, err := e.client.Complete(ctx, "", fmt.Sprintf(InferAuthorPrompt, excerpt))
	if err != nil {
		slog.Debug("author inference failed", "error", err)
		return UnknownAuthor
	}

	name := strings.TrimSpace(response)
	name = strings.Trim(name, `"'`)

	if name == "" || len(name) > maxAuthorLen || len(strings.Fields(name)) > maxAuthorWords {
		return UnknownAuthor
	}

	return name
}

// EmulationPromptFor builds the prompt that generates content about
// topic in the analyzed style. Exemplar passages, when present, are
// appended as reference material.
func (e *Emulator) EmulationPromptFor(analysis Analysis, topic string, exemplars []string) string {
	prompt := fmt.Sprintf(EmulationPrompt, topic, analysis.Description(), topic)
	if len(exemplars) > 0 {
		prompt += fmt.Sprintf(ExemplarSection, strings.Join(exemplars, "\n\n"))
	}
	return prompt
}

// GenerateStyled generates new content about topic in the analyzed style.
func (e *Emulator) GenerateStyled(ctx context.Context, analysis Analysis, topic string, exemplars []string) (string, error) {
	prompt := e.EmulationPromptFor(analysis, topic, exemplars)
	content, err := e.client.Complete(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("generate styled content: %w", err)
	}
	return strings.TrimSpace(content), nil
}

// RewriteInStyle rewrites userText to match the analyzed style while
// preserving its meaning.
func (e *Emulator) RewriteInStyle(ctx context.Context, analysis Analysis, userText string) (string, error) {
	prompt := fmt.Sprintf(RewritePrompt, analysis.Description(), userText)
	rewritten, err := e.client.Complete(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("rewrite in style: %w", err)
	}
	return strings.TrimSpace(rewritten), nil
}

// MentorPrompts builds the per-use-case mentor prompts from the style
// description. These are prompt artifacts, not LLM calls.
func (e *Emulator) MentorPrompts(analysis Analysis) map[string]string {
	description := analysis.Description()
	prompts := make(map[string]string, len(mentorPromptTemplates))
	for name, tmpl := range mentorPromptTemplates {
		prompts[name] = fmt.Sprintf(tmpl, description)
	}
	return prompts
}
