package style

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Analysis is a structured description of an author's writing style as
// returned by the model. Keys are the analysis categories; when the
// model response could not be parsed as JSON the analysis degrades to
// {"analysis": <raw text>, "raw_response": true}.
type Analysis map[string]any

// IsRaw reports whether the analysis is an unparsed textual fallback.
func (a Analysis) IsRaw() bool {
	raw, ok := a["raw_response"].(bool)
	return ok && raw
}

// Description returns the style description suitable for embedding in
// downstream prompts: indented JSON for structured analyses, the raw
// model text for fallbacks.
func (a Analysis) Description() string {
	if a.IsRaw() {
		if s, ok := a["analysis"].(string); ok {
			return s
		}
	}
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(a))
	}
	return string(out)
}

// Highlight returns a category value as a display string, or the
// fallback when the category is absent.
func (a Analysis) Highlight(category, fallback string) string {
	v, ok := a[category]
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return fallback
		}
		return string(out)
	}
}

// ParseAnalysis parses a model response into an Analysis. Parsing
// order: fenced json block, whole body, balanced-brace extraction,
// then the textual fallback.
func ParseAnalysis(response string) Analysis {
	if body, ok := fencedJSON(response); ok {
		var a Analysis
		if err := json.Unmarshal([]byte(body), &a); err == nil {
			return a
		}
	}

	var a Analysis
	if err := json.Unmarshal([]byte(response), &a); err == nil {
		return a
	}

	if body, ok := extractJSONObject(response); ok {
		if err := json.Unmarshal([]byte(body), &a); err == nil {
			return a
		}
	}

	return Analysis{
		"analysis":     response,
		"raw_response": true,
	}
}

// fencedJSON returns the contents of the first ```json fence, if any.
func fencedJSON(s string) (string, bool) {
	start := strings.Index(s, "```json")
	if start == -1 {
		start = strings.Index(s, "```")
		if start == -1 {
			return "", false
		}
		start += len("```")
	} else {
		start += len("```json")
	}

	rest := s[start:]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// extractJSONObject finds the first balanced JSON object in a response
// that may contain surrounding prose.
func extractJSONObject(response string) (string, bool) {
	start := strings.IndexByte(response, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(response); i++ {
		c := response[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return response[start : i+1], true
			}
		}
	}

	return "", false
}
