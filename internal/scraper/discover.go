package scraper

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/go-rod/rod"
)

// discoverJS collects candidate content links: same-host anchors from
// navigation and article listings, href plus link text.
const discoverJS = `() => {
	const anchors = Array.from(document.querySelectorAll('nav a, article a, main a, .post a, h2 a, h3 a'));
	const all = anchors.length ? anchors : Array.from(document.querySelectorAll('a'));
	const seen = new Set();
	const links = [];
	for (const a of all) {
		const href = a.href;
		if (!href || !href.startsWith(location.origin)) continue;
		if (href === location.href || seen.has(href)) continue;
		if (/#|mailto:|\.(png|jpg|gif|pdf|zip)$/.test(href)) continue;
		seen.add(href);
		links.push(href);
	}
	return links;
}`

// DiscoverSections finds content pages linked from baseURL. When
// discovery fails or yields nothing the base URL itself is returned, so
// scraping always has something to do.
func (s *Scraper) DiscoverSections(ctx context.Context, baseURL string) []string {
	slog.Info("discovering sections", "url", baseURL)

	page, err := s.openPage(ctx, baseURL)
	if err != nil {
		slog.Warn("section discovery failed, using base URL only", "error", err)
		return []string{baseURL}
	}
	defer page.Close()

	res, err := page.Context(ctx).Evaluate(&rod.EvalOptions{JS: discoverJS})
	if err != nil {
		slog.Warn("section discovery failed, using base URL only", "error", err)
		return []string{baseURL}
	}

	base, _ := url.Parse(baseURL)

	var sections []string
	for _, item := range res.Value.Arr() {
		link := item.Str()
		if link == "" {
			continue
		}
		// Discovery runs in the page, so links are already absolute;
		// keep only same-host ones as a second line of defense.
		if parsed, err := url.Parse(link); err != nil || (base != nil && parsed.Host != base.Host) {
			continue
		}
		sections = append(sections, link)
		if len(sections) >= s.cfg.MaxSections {
			break
		}
	}

	if len(sections) == 0 {
		slog.Warn("auto-discovery found nothing, using base URL only")
		return []string{baseURL}
	}

	slog.Info("discovered sections", "count", len(sections))
	return sections
}
