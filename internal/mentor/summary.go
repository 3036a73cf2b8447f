package mentor

import (
	"time"

	"github.com/abdulachik/mentormirror/internal/session"
	"github.com/abdulachik/mentormirror/internal/style"
)

// SessionInfo identifies a summary's session.
type SessionInfo struct {
	Mentor          string `json:"mentor"`
	Date            string `json:"date"`
	Service         string `json:"service"`
	Model           string `json:"model"`
	OutputDirectory string `json:"output_directory"`
}

// StyleHighlights pulls the headline categories out of a style analysis.
type StyleHighlights struct {
	Tone              string `json:"tone"`
	KeyThemes         string `json:"key_themes"`
	SignatureElements string `json:"signature_elements"`
}

// Summary is the session_summary.json artifact.
type Summary struct {
	SessionInfo     SessionInfo     `json:"session_info"`
	StyleHighlights StyleHighlights `json:"style_highlights"`
	DailyMentorgram *Mentorgram     `json:"daily_mentorgram,omitempty"`
	FilesGenerated  []string        `json:"files_generated"`
}

// BuildSummary assembles the session summary from the run's artifacts.
func BuildSummary(sess *session.Session, service, model string, analysis style.Analysis, mg *Mentorgram) *Summary {
	files, err := sess.Files()
	if err != nil {
		files = nil
	}

	return &Summary{
		SessionInfo: SessionInfo{
			Mentor:          sess.Mentor,
			Date:            time.Now().Format(time.RFC3339),
			Service:         service,
			Model:           model,
			OutputDirectory: sess.Dir,
		},
		StyleHighlights: StyleHighlights{
			Tone:              analysis.Highlight("Tone & Voice", "Not analyzed"),
			KeyThemes:         analysis.Highlight("Content Themes", ""),
			SignatureElements: analysis.Highlight("Unique Stylistic Elements", ""),
		},
		DailyMentorgram: mg,
		FilesGenerated:  files,
	}
}
