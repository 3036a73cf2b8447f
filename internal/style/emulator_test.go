package style

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned responses in order, cycling on the last.
type fakeClient struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (f *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.prompts = append(f.prompts, user)
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++
	return f.responses[idx], nil
}

func (f *fakeClient) Model() string { return "fake-model" }

func TestEmulator_AnalyzeStyle(t *testing.T) {
	t.Run("parses structured response", func(t *testing.T) {
		client := &fakeClient{responses: []string{`{"Tone & Voice": "direct"}`}}
		e := New(client)

		a, err := e.AnalyzeStyle(context.Background(), "some writing", "Sam Altman")
		require.NoError(t, err)
		assert.False(t, a.IsRaw())
		assert.Equal(t, "direct", a["Tone & Voice"])
		assert.Contains(t, client.prompts[0], "Sam Altman")
	})

	t.Run("keeps raw response when not json", func(t *testing.T) {
		client := &fakeClient{responses: []string{"Just prose, no JSON."}}
		e := New(client)

		a, err := e.AnalyzeStyle(context.Background(), "some writing", "")
		require.NoError(t, err)
		assert.True(t, a.IsRaw())
	})

	t.Run("propagates client error", func(t *testing.T) {
		client := &fakeClient{err: fmt.Errorf("boom")}
		e := New(client)

		_, err := e.AnalyzeStyle(context.Background(), "text", "x")
		assert.Error(t, err)
	})
}

func TestEmulator_InferAuthor(t *testing.T) {
	t.Run("accepts a plausible name", func(t *testing.T) {
		client := &fakeClient{responses: []string{`"Paul Graham"`}}
		e := New(client)

		assert.Equal(t, "Paul Graham", e.InferAuthor(context.Background(), "essay text"))
	})

	t.Run("rejects a name with too many words", func(t *testing.T) {
		client := &fakeClient{responses: []string{"The author of this piece appears to be someone famous"}}
		e := New(client)

		assert.Equal(t, UnknownAuthor, e.InferAuthor(context.Background(), "essay text"))
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		client := &fakeClient{responses: []string{strings.Repeat("x", 60)}}
		e := New(client)

		assert.Equal(t, UnknownAuthor, e.InferAuthor(context.Background(), "essay text"))
	})

	t.Run("falls back on error", func(t *testing.T) {
		client := &fakeClient{err: fmt.Errorf("boom")}
		e := New(client)

		assert.Equal(t, UnknownAuthor, e.InferAuthor(context.Background(), "essay text"))
	})

	t.Run("truncates long content to an excerpt", func(t *testing.T) {
		client := &fakeClient{responses: []string{"A. Writer"}}
		e := New(client)

		long := strings.Repeat("word ", 1000)
		e.InferAuthor(context.Background(), long)
		require.Len(t, client.prompts, 1)
		assert.Less(t, len(client.prompts[0]), len(long))
	})
}

func TestEmulator_EmulationPromptFor(t *testing.T) {
	e := New(&fakeClient{})
	analysis := Analysis{"Tone & Voice": "direct"}

	t.Run("without exemplars", func(t *testing.T) {
		prompt := e.EmulationPromptFor(analysis, "startups", nil)
		assert.Contains(t, prompt, "startups")
		assert.NotContains(t, prompt, "REFERENCE PASSAGES")
	})

	t.Run("with exemplars", func(t *testing.T) {
		prompt := e.EmulationPromptFor(analysis, "startups", []string{"passage one", "passage two"})
		assert.Contains(t, prompt, "REFERENCE PASSAGES")
		assert.Contains(t, prompt, "passage one")
		assert.Contains(t, prompt, "passage two")
	})
}

func TestEmulator_MentorPrompts(t *testing.T) {
	e := New(&fakeClient{})
	analysis := Analysis{"Tone & Voice": "direct"}

	prompts := e.MentorPrompts(analysis)
	require.Len(t, prompts, len(MentorPromptNames))
	for _, name := range MentorPromptNames {
		assert.Contains(t, prompts, name)
		assert.Contains(t, prompts[name], "Tone & Voice")
	}
}

func TestEmulator_RewriteInStyle(t *testing.T) {
	client := &fakeClient{responses: []string{"  rewritten text  "}}
	e := New(client)

	out, err := e.RewriteInStyle(context.Background(), Analysis{"Tone & Voice": "direct"}, "original text")
	require.NoError(t, err)
	assert.Equal(t, "rewritten text", out)
	assert.Contains(t, client.prompts[0], "original text")
}
