package mentor

import (
	"testing"

	"github.com/abdulachik/mentormirror/internal/session"
	"github.com/abdulachik/mentormirror/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	sess, err := session.NewMentorSession(t.TempDir(), "Sam Altman")
	require.NoError(t, err)

	_, err = sess.WriteJSON("style_analysis.json", map[string]string{"k": "v"})
	require.NoError(t, err)

	analysis := style.Analysis{
		"Tone & Voice":   "direct",
		"Content Themes": "startups",
	}
	mg := &Mentorgram{Mentor: "Sam Altman", Topic: "focus", Quote: "q", Action: "a", Reflection: "r", Date: "2026-08-24"}

	summary := BuildSummary(sess, "openai", "gpt-4o-mini", analysis, mg)

	assert.Equal(t, "Sam Altman", summary.SessionInfo.Mentor)
	assert.Equal(t, "openai", summary.SessionInfo.Service)
	assert.Equal(t, "gpt-4o-mini", summary.SessionInfo.Model)
	assert.Equal(t, sess.Dir, summary.SessionInfo.OutputDirectory)

	assert.Equal(t, "direct", summary.StyleHighlights.Tone)
	assert.Equal(t, "startups", summary.StyleHighlights.KeyThemes)
	assert.Empty(t, summary.StyleHighlights.SignatureElements)

	assert.Equal(t, mg, summary.DailyMentorgram)
	assert.Equal(t, []string{"style_analysis.json"}, summary.FilesGenerated)
}

func TestBuildSummary_RawAnalysis(t *testing.T) {
	sess, err := session.NewMentorSession(t.TempDir(), "Unknown Author")
	require.NoError(t, err)

	analysis := style.Analysis{"analysis": "prose only", "raw_response": true}
	summary := BuildSummary(sess, "google", "gemini-2.0-flash", analysis, nil)

	assert.Equal(t, "Not analyzed", summary.StyleHighlights.Tone)
	assert.Nil(t, summary.DailyMentorgram)
}
