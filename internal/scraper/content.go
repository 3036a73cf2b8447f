package scraper

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	// minContentLen is the threshold below which extracted text is
	// treated as noise rather than page content.
	minContentLen = 200

	// minChunkLen is the per-chunk threshold for chunked extraction.
	minChunkLen = 50
)

var (
	fenceOpen  = regexp.MustCompile("(?m)^```[a-zA-Z]*\n?")
	fenceClose = regexp.MustCompile("\n?```$")
)

// CleanContent strips markdown code fence markers and surrounding
// whitespace from extracted content.
func CleanContent(content string) string {
	content = fenceOpen.ReplaceAllString(content, "")
	content = fenceClose.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

// narrationPrefixes mark text that describes an extraction rather than
// being one.
var narrationPrefixes = []string{
	"The task was successfully completed",
	"Successfully extracted",
	"The main content of",
	"The page",
}

// narrationMarkers anywhere in the text also disqualify it.
var narrationMarkers = []string{
	"task completed",
	"was extracted successfully",
	"404 error",
	"does not exist",
	"cannot be completed",
}

// UsableContent reports whether extracted text looks like genuine page
// content rather than a status summary or an error page.
func UsableContent(content string) bool {
	if len(content) < minContentLen {
		return false
	}

	for _, prefix := range narrationPrefixes {
		if strings.HasPrefix(content, prefix) {
			return false
		}
	}

	lower := strings.ToLower(content)
	for _, marker := range narrationMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	return true
}

// SectionName derives a readable section name from a URL, falling back
// to page_<n> when the path yields nothing.
func SectionName(rawURL string, index int) string {
	fallback := "page_" + strconv.Itoa(index)

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	name := segments[len(segments)-1]
	if name == "" {
		return fallback
	}
	return name
}

// joinParts joins chunk texts with blank lines between them.
func joinParts(parts []string) string {
	return strings.Join(parts, "\n\n")
}
