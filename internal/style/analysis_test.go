package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("parses fenced json block", func(t *testing.T) {
		response := "Here is the analysis:\n\n```json\n{\"Tone & Voice\": \"direct and warm\"}\n```\n\nHope this helps."

		a := ParseAnalysis(response)
		assert.False(t, a.IsRaw())
		assert.Equal(t, "direct and warm", a["Tone & Voice"])
	})

	t.Run("parses bare fence without language tag", func(t *testing.T) {
		response := "```\n{\"Sentence Structure\": \"short\"}\n```"

		a := ParseAnalysis(response)
		assert.False(t, a.IsRaw())
		assert.Equal(t, "short", a["Sentence Structure"])
	})

	t.Run("parses whole body as json", func(t *testing.T) {
		response := `{"Vocabulary & Diction": "plain", "Content Themes": ["startups", "focus"]}`

		a := ParseAnalysis(response)
		assert.False(t, a.IsRaw())
		assert.Equal(t, "plain", a["Vocabulary & Diction"])
	})

	t.Run("extracts balanced object from prose", func(t *testing.T) {
		response := `The author writes like this: {"Tone & Voice": "wry, with nested {braces} in strings"} which sums it up.`

		a := ParseAnalysis(response)
		assert.False(t, a.IsRaw())
		assert.Equal(t, "wry, with nested {braces} in strings", a["Tone & Voice"])
	})

	t.Run("falls back to raw text", func(t *testing.T) {
		response := "The author favors short sentences and dry humor."

		a := ParseAnalysis(response)
		assert.True(t, a.IsRaw())
		assert.Equal(t, response, a["analysis"])
	})
}

func TestAnalysis_Description(t *testing.T) {
	t.Run("raw analysis returns the raw text", func(t *testing.T) {
		a := Analysis{"analysis": "plain description", "raw_response": true}
		assert.Equal(t, "plain description", a.Description())
	})

	t.Run("structured analysis returns indented json", func(t *testing.T) {
		a := Analysis{"Tone & Voice": "direct"}
		desc := a.Description()
		assert.Contains(t, desc, "\"Tone & Voice\"")
		assert.Contains(t, desc, "\"direct\"")
	})
}

func TestAnalysis_Highlight(t *testing.T) {
	a := Analysis{
		"Tone & Voice":   "direct",
		"Content Themes": []any{"startups", "focus"},
	}

	t.Run("string category", func(t *testing.T) {
		assert.Equal(t, "direct", a.Highlight("Tone & Voice", "n/a"))
	})

	t.Run("non-string category marshals", func(t *testing.T) {
		assert.Equal(t, `["startups","focus"]`, a.Highlight("Content Themes", "n/a"))
	})

	t.Run("missing category falls back", func(t *testing.T) {
		assert.Equal(t, "n/a", a.Highlight("Rhythm", "n/a"))
	})
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("ignores braces inside strings", func(t *testing.T) {
		body, ok := extractJSONObject(`before {"a": "x } y"} after`)
		require.True(t, ok)
		assert.Equal(t, `{"a": "x } y"}`, body)
	})

	t.Run("handles escaped quotes", func(t *testing.T) {
		body, ok := extractJSONObject(`{"a": "he said \"}\" loudly"}`)
		require.True(t, ok)
		assert.Equal(t, `{"a": "he said \"}\" loudly"}`, body)
	})

	t.Run("no object found", func(t *testing.T) {
		_, ok := extractJSONObject("no braces here")
		assert.False(t, ok)
	})

	t.Run("unbalanced object", func(t *testing.T) {
		_, ok := extractJSONObject(`{"a": {"b": 1}`)
		assert.False(t, ok)
	})
}
