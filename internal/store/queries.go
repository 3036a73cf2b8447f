package store

import (
	"context"
	"fmt"
	"time"
)

// SessionRecord is a persisted mentor session.
type SessionRecord struct {
	ID        string
	Mentor    string
	Dir       string
	Service   string
	Model     string
	Topic     string
	CreatedAt time.Time
}

// MentorgramRecord is a persisted mentor-gram.
type MentorgramRecord struct {
	ID         int64
	SessionID  string
	Mentor     string
	Topic      string
	Quote      string
	Action     string
	Reflection string
	Date       string
	CreatedAt  time.Time
}

// ScrapeRecord is a persisted scrape run.
type ScrapeRecord struct {
	ID        string
	URL       string
	Dir       string
	Sections  int64
	Saved     int64
	CreatedAt time.Time
}

// CreateSession records a mentor session.
func (s *Store) CreateSession(ctx context.Context, rec SessionRecord) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO sessions (id, mentor, dir, service, model, topic)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Mentor, rec.Dir, rec.Service, rec.Model, rec.Topic,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// CreateArtifact records a generated artifact file for a session.
func (s *Store) CreateArtifact(ctx context.Context, sessionID, kind, path string) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO artifacts (session_id, kind, path)
		VALUES (?, ?, ?)`,
		sessionID, kind, path,
	)
	if err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}
	return nil
}

// CreateMentorgram records a generated mentor-gram.
func (s *Store) CreateMentorgram(ctx context.Context, rec MentorgramRecord) error {
	var sessionID any
	if rec.SessionID != "" {
		sessionID = rec.SessionID
	}
	_, err := s.ExecContext(ctx, `
		INSERT INTO mentorgrams (session_id, mentor, topic, quote, action, reflection, gram_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, rec.Mentor, rec.Topic, rec.Quote, rec.Action, rec.Reflection, rec.Date,
	)
	if err != nil {
		return fmt.Errorf("insert mentorgram: %w", err)
	}
	return nil
}

// CreateScrape records a scrape run.
func (s *Store) CreateScrape(ctx context.Context, rec ScrapeRecord) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO scrapes (id, url, dir, sections, saved)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.URL, rec.Dir, rec.Sections, rec.Saved,
	)
	if err != nil {
		return fmt.Errorf("insert scrape: %w", err)
	}
	return nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, mentor, dir, service, model, topic, created_at
		FROM sessions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.Mentor, &rec.Dir, &rec.Service, &rec.Model, &rec.Topic, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListMentorgrams returns the most recent mentor-grams, newest first.
// An empty mentor matches all mentors.
func (s *Store) ListMentorgrams(ctx context.Context, mentor string, limit int) ([]MentorgramRecord, error) {
	query := `
		SELECT id, COALESCE(session_id, ''), mentor, topic, quote, action, reflection, gram_date, created_at
		FROM mentorgrams`
	args := []any{}
	if mentor != "" {
		query += " WHERE mentor = ?"
		args = append(args, mentor)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mentorgrams: %w", err)
	}
	defer rows.Close()

	var records []MentorgramRecord
	for rows.Next() {
		var rec MentorgramRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Mentor, &rec.Topic, &rec.Quote, &rec.Action, &rec.Reflection, &rec.Date, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mentorgram: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountSessions returns the total number of recorded sessions.
func (s *Store) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	err := s.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&count)
	return count, err
}

// CountMentorgrams returns the total number of recorded mentor-grams.
func (s *Store) CountMentorgrams(ctx context.Context) (int64, error) {
	var count int64
	err := s.QueryRowContext(ctx, "SELECT COUNT(*) FROM mentorgrams").Scan(&count)
	return count, err
}

// CountScrapes returns the total number of recorded scrape runs.
func (s *Store) CountScrapes(ctx context.Context) (int64, error) {
	var count int64
	err := s.QueryRowContext(ctx, "SELECT COUNT(*) FROM scrapes").Scan(&count)
	return count, err
}

// CountArtifacts returns the total number of recorded artifacts.
func (s *Store) CountArtifacts(ctx context.Context) (int64, error) {
	var count int64
	err := s.QueryRowContext(ctx, "SELECT COUNT(*) FROM artifacts").Scan(&count)
	return count, err
}

// SessionsByMentor returns session counts grouped by mentor.
func (s *Store) SessionsByMentor(ctx context.Context) (map[string]int64, error) {
	rows, err := s.QueryContext(ctx, "SELECT mentor, COUNT(*) FROM sessions GROUP BY mentor")
	if err != nil {
		return nil, fmt.Errorf("query sessions by mentor: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var mentor string
		var count int64
		if err := rows.Scan(&mentor, &count); err != nil {
			return nil, fmt.Errorf("scan session count: %w", err)
		}
		counts[mentor] = count
	}
	return counts, rows.Err()
}
