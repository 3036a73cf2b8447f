package scraper

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abdulachik/mentormirror/internal/session"
)

// SavePage writes a scraped page as text, HTML, and JSON artifacts in
// the session directory. Returns the path of the text artifact, which
// feeds the style pipeline.
func SavePage(sess *session.Session, sectionName string, content *PageContent) (string, error) {
	base := session.SafeName(sectionName)
	if base == "" {
		base = "page"
	}

	if _, err := sess.WriteJSON(base+".json", content); err != nil {
		return "", err
	}
	if content.HTML != "" {
		if _, err := sess.WriteText(base+".html", content.HTML); err != nil {
			return "", err
		}
	}

	textPath, err := sess.WriteText(base+".txt", content.Text)
	if err != nil {
		return "", err
	}

	slog.Info("saved section",
		"section", sectionName,
		"chars", len(content.Text),
	)
	return textPath, nil
}

// SaveChunked writes a chunked extraction: the combined record as JSON,
// each chunk as its own file, and the flattened text.
func SaveChunked(sess *session.Session, sectionName string, content *ChunkedContent) (string, error) {
	base := session.SafeName(sectionName)
	if base == "" {
		base = "page"
	}

	if _, err := sess.WriteJSON(base+".json", content); err != nil {
		return "", err
	}

	chunksDir := filepath.Join(sess.Dir, base+"_chunks")
	if err := os.MkdirAll(chunksDir, 0755); err != nil {
		return "", fmt.Errorf("create chunks directory: %w", err)
	}
	for i, chunk := range content.Chunks {
		data, err := json.MarshalIndent(chunk, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal chunk %d: %w", i+1, err)
		}
		path := filepath.Join(chunksDir, fmt.Sprintf("chunk_%d.json", i+1))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("write chunk %d: %w", i+1, err)
		}
	}

	textPath, err := sess.WriteText(base+".txt", content.CombinedText)
	if err != nil {
		return "", err
	}

	slog.Info("saved chunked section",
		"section", sectionName,
		"chunks", len(content.Chunks),
	)
	return textPath, nil
}
