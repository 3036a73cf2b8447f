package mentor

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/abdulachik/mentormirror/internal/llm"
	"github.com/abdulachik/mentormirror/internal/style"
)

// Mentorgram is the daily artifact generated in a mentor's voice.
type Mentorgram struct {
	Date       string `json:"date"`
	Mentor     string `json:"mentor"`
	Topic      string `json:"topic"`
	Quote      string `json:"quote"`
	Action     string `json:"action"`
	Reflection string `json:"reflection"`
}

// defaultTopics is drawn from when no topic is given.
var defaultTopics = []string{
	"building good habits",
	"making hard decisions",
	"personal growth",
	"overcoming challenges",
	"finding clarity",
}

// RandomTopic picks a mentor-gram topic.
func RandomTopic() string {
	return defaultTopics[rand.Intn(len(defaultTopics))]
}

// GenerateMentorgram produces a quote, action, and reflection in the
// mentor's voice. Empty components fail validation and the whole
// generation is retried up to tries times.
func GenerateMentorgram(ctx context.Context, client llm.Client, mentorName, topic string, tries int) (*Mentorgram, error) {
	if topic == "" {
		topic = RandomTopic()
	}
	if tries <= 0 {
		tries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= tries; attempt++ {
		mg, err := generateOnce(ctx, client, mentorName, topic)
		if err == nil {
			if err := mg.Validate(); err == nil {
				return mg, nil
			} else {
				lastErr = err
			}
		} else {
			lastErr = err
		}

		slog.Warn("mentorgram generation failed",
			"mentor", mentorName,
			"attempt", attempt,
			"error", lastErr,
		)
	}

	return nil, fmt.Errorf("generate mentorgram after %d attempts: %w", tries, lastErr)
}

func generateOnce(ctx context.Context, client llm.Client, mentorName, topic string) (*Mentorgram, error) {
	quote, err := client.Complete(ctx, "", fmt.Sprintf(style.QuotePrompt, mentorName, topic))
	if err != nil {
		return nil, fmt.Errorf("generate quote: %w", err)
	}

	action, err := client.Complete(ctx, "", fmt.Sprintf(style.ActionPrompt, mentorName, topic))
	if err != nil {
		return nil, fmt.Errorf("generate action: %w", err)
	}

	reflection, err := client.Complete(ctx, "", fmt.Sprintf(style.ReflectionPrompt, mentorName, topic))
	if err != nil {
		return nil, fmt.Errorf("generate reflection: %w", err)
	}

	return &Mentorgram{
		Date:       time.Now().Format("2006-01-02"),
		Mentor:     mentorName,
		Topic:      topic,
		Quote:      strings.TrimSpace(quote),
		Action:     strings.TrimSpace(action),
		Reflection: strings.TrimSpace(reflection),
	}, nil
}

// Validate rejects mentor-grams with missing components.
func (m *Mentorgram) Validate() error {
	if m.Quote == "" {
		return fmt.Errorf("empty quote")
	}
	if m.Action == "" {
		return fmt.Errorf("empty action")
	}
	if m.Reflection == "" {
		return fmt.Errorf("empty reflection")
	}
	return nil
}

// FileName returns the dated artifact file name.
func (m *Mentorgram) FileName() string {
	return fmt.Sprintf("mentorgram_%s.json", m.Date)
}

// Markdown renders the mentor-gram for terminal display.
func (m *Mentorgram) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Daily Mentor-gram from %s\n\n", m.Mentor)
	fmt.Fprintf(&b, "**Date:** %s  \n", m.Date)
	fmt.Fprintf(&b, "**Topic:** %s\n\n", m.Topic)
	fmt.Fprintf(&b, "## Quote\n\n> %s\n\n", m.Quote)
	fmt.Fprintf(&b, "## Action\n\n%s\n\n", m.Action)
	fmt.Fprintf(&b, "## Reflection\n\n%s\n", m.Reflection)
	return b.String()
}

// Speech renders the mentor-gram as spoken text for TTS playback.
func (m *Mentorgram) Speech() string {
	return fmt.Sprintf(
		"A mentor-gram from %s, on %s. %s. Today's action: %s. And a question to reflect on: %s",
		m.Mentor, m.Topic, m.Quote, m.Action, m.Reflection,
	)
}
