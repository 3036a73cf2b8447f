package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/corpus"
	"github.com/abdulachik/mentormirror/internal/scraper"
	"github.com/abdulachik/mentormirror/internal/session"
	"github.com/abdulachik/mentormirror/internal/store"
	"github.com/spf13/cobra"
)

var (
	scrapeSections []string
	scrapeDiscover bool
	scrapeHeadless bool
	scrapeMentor   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape mentor content from a URL",
	Long: `Scrape page content into text files that feed the style pipeline.

Examples:
  mentormirror scrape https://blog.samaltman.com
  mentormirror scrape https://blog.samaltman.com --discover
  mentormirror scrape https://example.com --sections /post-1 --sections /post-2`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringArrayVar(&scrapeSections, "sections", nil, "Specific section URLs to scrape")
	scrapeCmd.Flags().BoolVar(&scrapeDiscover, "discover", false, "Auto-discover sections from the base URL")
	scrapeCmd.Flags().BoolVar(&scrapeHeadless, "headless", true, "Run the browser headless")
	scrapeCmd.Flags().StringVar(&scrapeMentor, "mentor", "", "Mentor name for corpus ingestion (defaults to the domain)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	baseURL := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForScrape(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	sess, err := session.NewScrapeSession(cfg.SessionsDir, baseURL)
	if err != nil {
		return err
	}
	fmt.Printf("Output directory: %s\n", sess.Dir)

	sc, err := scraper.New(ctx, scraper.Config{
		Headless:    scrapeHeadless && cfg.ScrapeHeadless,
		Bin:         cfg.BrowserBin,
		NavTimeout:  cfg.ScrapeTimeout,
		MaxSections: cfg.MaxSections,
	})
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer sc.Close()

	// Determine sections to scrape
	var sections []string
	switch {
	case len(scrapeSections) > 0:
		sections = resolveSections(baseURL, scrapeSections)
	case scrapeDiscover:
		sections = sc.DiscoverSections(ctx, baseURL)
	default:
		sections = []string{baseURL}
	}

	mentorName := scrapeMentor
	if mentorName == "" {
		mentorName = session.DomainName(baseURL)
	}
	passages := openCorpus(cfg)
	if passages != nil {
		defer passages.Close()
	}

	saved := 0
	for i, url := range sections {
		name := scraper.SectionName(url, i+1)
		fmt.Printf("[%d/%d] %s\n", i+1, len(sections), url)

		textPath, err := scrapeSection(ctx, sc, sess, name, url)
		if err != nil {
			slog.Error("section failed", "url", url, "error", err)
			continue
		}
		saved++

		if passages != nil {
			if err := ingestFile(ctx, passages, mentorName, textPath); err != nil {
				slog.Warn("corpus ingestion failed", "section", name, "error", err)
			}
		}
	}

	recordScrape(ctx, cfg, sess, baseURL, len(sections), saved)

	fmt.Printf("\nScraping complete: %d/%d sections saved to %s\n", saved, len(sections), sess.Dir)
	if files, err := sess.Files(); err == nil {
		for _, f := range files {
			fmt.Printf("  %s\n", f)
		}
	}
	return nil
}

// scrapeSection extracts one URL, falling back to chunked extraction
// when single-shot extraction yields nothing usable.
func scrapeSection(ctx context.Context, sc *scraper.Scraper, sess *session.Session, name, url string) (string, error) {
	page, err := sc.ScrapePage(ctx, url)
	if err == nil {
		return scraper.SavePage(sess, name, page)
	}

	slog.Warn("single-shot extraction failed, trying chunked", "url", url, "error", err)
	chunked, cerr := sc.ScrapeChunked(ctx, url)
	if cerr != nil {
		return "", fmt.Errorf("extract content: %w", cerr)
	}
	return scraper.SaveChunked(sess, name, chunked)
}

// resolveSections turns relative section paths into absolute URLs on
// the base domain.
func resolveSections(baseURL string, sections []string) []string {
	resolved := make([]string, 0, len(sections))
	for _, s := range sections {
		resolved = append(resolved, session.ResolveSection(baseURL, s))
	}
	return resolved
}

func ingestFile(ctx context.Context, passages *corpus.PassageStore, mentorName, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = passages.IngestText(ctx, mentorName, filepath.Base(path), string(data))
	return err
}

func recordScrape(ctx context.Context, cfg *config.Config, sess *session.Session, url string, sections, saved int) {
	st, err := store.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		slog.Warn("history store unavailable", "error", err)
		return
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		slog.Warn("history migration failed", "error", err)
		return
	}
	err = st.CreateScrape(ctx, store.ScrapeRecord{
		ID:       sess.ID,
		URL:      url,
		Dir:      sess.Dir,
		Sections: int64(sections),
		Saved:    int64(saved),
	})
	if err != nil {
		slog.Warn("failed to record scrape", "error", err)
	}
}
