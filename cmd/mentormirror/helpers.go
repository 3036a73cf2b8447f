package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/corpus"
	"github.com/abdulachik/mentormirror/internal/llm"
	"github.com/abdulachik/mentormirror/internal/style"
)

// applyModelFlags overrides config with --service/--model when set.
func applyModelFlags(cfg *config.Config, service, model string) {
	if service != "" {
		cfg.Service = service
	}
	if model != "" {
		cfg.Model = model
	}
}

// newLLMClient builds the configured completion client.
func newLLMClient(cfg *config.Config) (llm.Client, error) {
	client, err := llm.New(cfg.Service, llm.Config{
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("create LLM client: %w", err)
	}
	return client, nil
}

// loadAnalysis reads a saved style_analysis.json artifact.
func loadAnalysis(path string) (style.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style analysis: %w", err)
	}
	var analysis style.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("parse style analysis: %w", err)
	}
	return analysis, nil
}

// openCorpus opens the passage corpus, or returns nil when it is not
// available so callers can proceed without exemplars.
func openCorpus(cfg *config.Config) *corpus.PassageStore {
	ps, err := corpus.New(corpus.Config{Path: cfg.VecLitePath})
	if err != nil {
		slog.Warn("passage corpus unavailable, continuing without exemplars", "error", err)
		return nil
	}
	return ps
}
