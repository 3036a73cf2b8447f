// Package scraper pulls page content into session artifacts using a
// real browser. The browser does the rendering; this package decides
// which part of what comes back is genuine content.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Config holds browser configuration.
type Config struct {
	Headless    bool
	Bin         string // Optional explicit browser binary.
	NavTimeout  time.Duration
	MaxSections int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless:    true,
		NavTimeout:  30 * time.Second,
		MaxSections: 10,
	}
}

// PageContent is what one scraped page yields.
type PageContent struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

// ChunkedContent is the fallback result when single-shot extraction
// yields nothing usable: focused extractions combined into one record.
type ChunkedContent struct {
	URL              string           `json:"url"`
	ExtractionMethod string           `json:"extraction_method"`
	TotalChunks      int              `json:"total_chunks"`
	Chunks           []ExtractedChunk `json:"chunks"`
	CombinedText     string           `json:"combined_text,omitempty"`
}

// ExtractedChunk is one focused extraction.
type ExtractedChunk struct {
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Scraper drives a browser to extract page content.
type Scraper struct {
	cfg     Config
	browser *rod.Browser
}

// New launches a browser and returns a connected Scraper.
func New(ctx context.Context, cfg Config) (*Scraper, error) {
	if cfg.NavTimeout <= 0 {
		cfg.NavTimeout = DefaultConfig().NavTimeout
	}
	if cfg.MaxSections <= 0 {
		cfg.MaxSections = DefaultConfig().MaxSections
	}

	l := launcher.New().Headless(cfg.Headless)
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	return &Scraper{cfg: cfg, browser: browser}, nil
}

// Close shuts the browser down.
func (s *Scraper) Close() error {
	if s.browser != nil {
		return s.browser.Close()
	}
	return nil
}

// openPage navigates to url in a fresh page and waits for it to load.
func (s *Scraper) openPage(ctx context.Context, url string) (*rod.Page, error) {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := page.Context(ctx).Timeout(s.cfg.NavTimeout).Navigate(url); err != nil {
		page.Close()
		return nil, fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.Context(ctx).Timeout(s.cfg.NavTimeout).WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("wait for %s: %w", url, err)
	}

	return page, nil
}

// mainContentJS picks the most article-like element on the page and
// returns its title, visible text, and inner HTML.
const mainContentJS = `() => {
	const pick = () => {
		const selectors = ['article', 'main', '[role="main"]', '#content', '.post', '.entry-content'];
		for (const sel of selectors) {
			const el = document.querySelector(sel);
			if (el && el.innerText && el.innerText.trim().length > 200) return el;
		}
		return document.body;
	};
	const el = pick();
	return {
		title: document.title || '',
		text: el ? el.innerText : '',
		html: el ? el.innerHTML : '',
	};
}`

// ScrapePage extracts the main content of a single URL. Content that
// fails the narration/length filters is rejected so callers can fall
// back to chunked extraction.
func (s *Scraper) ScrapePage(ctx context.Context, url string) (*PageContent, error) {
	slog.Info("extracting content", "url", url)

	page, err := s.openPage(ctx, url)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	res, err := page.Context(ctx).Evaluate(&rod.EvalOptions{JS: mainContentJS})
	if err != nil {
		return nil, fmt.Errorf("evaluate content script: %w", err)
	}

	content := &PageContent{
		URL:   url,
		Title: res.Value.Get("title").Str(),
		Text:  CleanContent(res.Value.Get("text").Str()),
		HTML:  res.Value.Get("html").Str(),
	}

	if !UsableContent(content.Text) {
		return nil, fmt.Errorf("no substantial content extracted from %s", url)
	}

	return content, nil
}

// chunkTasks are the focused extractions used when single-shot
// extraction fails, in document order.
var chunkTasks = []struct {
	description string
	js          string
}{
	{
		description: "Extract the title, author, and introduction/first few paragraphs",
		js: `() => {
			const h = document.querySelector('h1');
			const paras = Array.from(document.querySelectorAll('p')).slice(0, 3);
			const byline = document.querySelector('[rel="author"], .author, .byline');
			return [
				h ? h.innerText : document.title,
				byline ? byline.innerText : '',
				paras.map(p => p.innerText).join('\n\n'),
			].filter(Boolean).join('\n\n');
		}`,
	},
	{
		description: "Extract the main body content, focusing on key points and arguments",
		js: `() => {
			const paras = Array.from(document.querySelectorAll('article p, main p, p'));
			return paras.slice(3, paras.length - 2).map(p => p.innerText).join('\n\n');
		}`,
	},
	{
		description: "Extract any conclusions, final thoughts, or call-to-action sections",
		js: `() => {
			const paras = Array.from(document.querySelectorAll('article p, main p, p'));
			return paras.slice(-2).map(p => p.innerText).join('\n\n');
		}`,
	},
	{
		description: "Extract any additional metadata like publication date, tags, or related links",
		js: `() => {
			const time = document.querySelector('time');
			const tags = Array.from(document.querySelectorAll('.tag, .tags a, [rel="tag"]'));
			return [
				time ? ('Published: ' + (time.dateTime || time.innerText)) : '',
				tags.length ? ('Tags: ' + tags.map(t => t.innerText).join(', ')) : '',
			].filter(Boolean).join('\n');
		}`,
	},
}

// ScrapeChunked extracts content in focused chunks when single-shot
// extraction yields nothing usable.
func (s *Scraper) ScrapeChunked(ctx context.Context, url string) (*ChunkedContent, error) {
	slog.Info("attempting chunked extraction", "url", url)

	page, err := s.openPage(ctx, url)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	var chunks []ExtractedChunk
	for i, task := range chunkTasks {
		res, err := page.Context(ctx).Evaluate(&rod.EvalOptions{JS: task.js})
		if err != nil {
			slog.Warn("chunk extraction failed",
				"url", url,
				"chunk", i+1,
				"error", err,
			)
			continue
		}

		text := CleanContent(res.Value.Str())
		if len(text) < minChunkLen {
			continue
		}

		chunks = append(chunks, ExtractedChunk{
			Description: task.description,
			Content:     text,
		})
	}

	if len(chunks) == 0 {
		return nil, fmt.Errorf("failed to extract any chunks from %s", url)
	}

	combined := &ChunkedContent{
		URL:              url,
		ExtractionMethod: "chunked",
		TotalChunks:      len(chunks),
		Chunks:           chunks,
	}

	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	combined.CombinedText = joinParts(parts)

	return combined, nil
}
