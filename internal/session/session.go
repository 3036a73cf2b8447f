// Package session manages the timestamped working directories that
// hold the artifacts of one analysis or scrape run.
package session

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02_15-04-05"

var unsafeChars = regexp.MustCompile(`[^a-z0-9_\-]`)

// SafeName converts an arbitrary string into a filesystem-safe slug,
// capped at 50 characters.
func SafeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, ".", "-")
	name = unsafeChars.ReplaceAllString(name, "")
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}

// DomainName extracts a clean domain slug from a URL for folder naming.
func DomainName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return SafeName(rawURL)
	}
	domain := strings.ToLower(parsed.Host)
	domain = strings.TrimPrefix(domain, "www.")
	for _, tld := range []string{".com", ".org", ".net"} {
		domain = strings.ReplaceAll(domain, tld, "")
	}
	return SafeName(domain)
}

// ResolveSection turns a relative section path into an absolute URL on
// the base URL's scheme and host. Absolute sections pass through.
func ResolveSection(baseURL, section string) string {
	if strings.HasPrefix(section, "http://") || strings.HasPrefix(section, "https://") {
		return section
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return section
	}
	if !strings.HasPrefix(section, "/") {
		section = "/" + section
	}
	return base.Scheme + "://" + base.Host + section
}

// Session is one timestamped working directory and its metadata.
type Session struct {
	ID        string    `json:"id"`
	Mentor    string    `json:"mentor,omitempty"`
	Dir       string    `json:"dir"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMentorSession creates a mentor_session_<name>_<timestamp> directory
// under baseDir.
func NewMentorSession(baseDir, mentorName string) (*Session, error) {
	now := time.Now()
	dirName := fmt.Sprintf("mentor_session_%s_%s", SafeName(mentorName), now.Format(timestampLayout))
	dir := filepath.Join(baseDir, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	return &Session{
		ID:        uuid.NewString(),
		Mentor:    mentorName,
		Dir:       dir,
		CreatedAt: now,
	}, nil
}

// NewScrapeSession creates a <domain>_<timestamp> output directory
// under baseDir for scrape artifacts.
func NewScrapeSession(baseDir, rawURL string) (*Session, error) {
	now := time.Now()
	dirName := fmt.Sprintf("%s_%s", DomainName(rawURL), now.Format(timestampLayout))
	dir := filepath.Join(baseDir, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create scrape directory: %w", err)
	}

	return &Session{
		ID:        uuid.NewString(),
		Dir:       dir,
		CreatedAt: now,
	}, nil
}

// WriteJSON writes v as indented JSON to name inside the session dir
// and returns the full path.
func (s *Session) WriteJSON(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// WriteText writes content to name inside the session dir and returns
// the full path.
func (s *Session) WriteText(name, content string) (string, error) {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// WriteBytes writes raw bytes (e.g. MP3 audio) to name inside the
// session dir and returns the full path.
func (s *Session) WriteBytes(name string, data []byte) (string, error) {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Files lists the artifact file names in the session directory.
func (s *Session) Files() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read session directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
