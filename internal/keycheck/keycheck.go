// Package keycheck validates configured API keys with live probes.
package keycheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	googleBaseURL = "https://generativelanguage.googleapis.com"
	openAIBaseURL = "https://api.openai.com"

	probeModel       = "gemini-2.0-flash"
	probeOpenAIModel = "gpt-3.5-turbo"
	probePrompt      = "Say hello in one sentence."
)

// Checker probes API keys for validity.
type Checker struct {
	GoogleBaseURL string
	OpenAIBaseURL string
	httpClient    *http.Client
}

// New creates a Checker with production endpoints.
func New() *Checker {
	return &Checker{
		GoogleBaseURL: googleBaseURL,
		OpenAIBaseURL: openAIBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CheckGoogle validates a Google API key with a one-sentence
// generateContent probe and returns the model's reply.
func (c *Checker) CheckGoogle(ctx context.Context, apiKey string) (string, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": probePrompt}}},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.GoogleBaseURL, probeModel, apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("probe failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("unexpected response format: %s", string(respBody))
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}

// CheckOpenAI validates an OpenAI API key with a small chat completion
// probe and returns the model's reply.
func (c *Checker) CheckOpenAI(ctx context.Context, apiKey string) (string, error) {
	reqBody := map[string]any{
		"model": probeOpenAIModel,
		"messages": []map[string]string{
			{"role": "user", "content": probePrompt},
		},
		"max_tokens":  20,
		"temperature": 0.2,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.OpenAIBaseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("probe failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
