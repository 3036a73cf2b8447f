package corpus

import "strings"

// Passage is one chunk of a mentor's scraped writing.
type Passage struct {
	Text      string
	WordCount int
	Index     int
}

// ChunkerConfig bounds passage sizes in words.
type ChunkerConfig struct {
	TargetWords int
	MinWords    int
}

// DefaultChunkerConfig returns passage-scale defaults. Scraped posts
// are far shorter than books, so passages stay small enough to quote
// inside a prompt.
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		TargetWords: 180,
		MinWords:    40,
	}
}

// Chunker splits article text into passages on paragraph boundaries.
type Chunker struct {
	config ChunkerConfig
}

// NewChunker creates a chunker with the given config.
func NewChunker(config ChunkerConfig) *Chunker {
	if config.TargetWords <= 0 {
		config = DefaultChunkerConfig()
	}
	return &Chunker{config: config}
}

// ChunkText splits text into passages. Paragraphs accumulate until the
// target word count is reached; a paragraph is never split.
func (c *Chunker) ChunkText(text string) []Passage {
	paragraphs := splitParagraphs(text)

	var passages []Passage
	var current []string
	currentWords := 0

	flush := func() {
		if currentWords >= c.config.MinWords {
			passages = append(passages, Passage{
				Text:      strings.Join(current, "\n\n"),
				WordCount: currentWords,
				Index:     len(passages),
			})
		}
		current = nil
		currentWords = 0
	}

	for _, para := range paragraphs {
		words := len(strings.Fields(para))
		if words == 0 {
			continue
		}
		current = append(current, para)
		currentWords += words
		if currentWords >= c.config.TargetWords {
			flush()
		}
	}
	flush()

	return passages
}

// splitParagraphs breaks text on blank lines, trimming each paragraph.
func splitParagraphs(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	var paragraphs []string
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
