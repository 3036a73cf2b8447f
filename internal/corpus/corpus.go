// Package corpus stores a mentor's scraped passages in VecLite and
// retrieves topic-relevant exemplars for styled generation.
package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdul-hamid-achik/veclite"
)

const passagesCollection = "passages"

// Config holds configuration for the PassageStore.
type Config struct {
	// Path to the VecLite database file (e.g., "data/corpus.veclite").
	Path string

	// ConfigPath is the path to veclite.yaml config file (optional).
	// If empty, searches ./veclite.yaml, ~/.veclite/config.yaml.
	ConfigPath string

	Chunker ChunkerConfig
}

// PassageStore wraps VecLite for passage storage and exemplar search.
type PassageStore struct {
	vecdb    *veclite.DB
	coll     *veclite.Collection
	embedder veclite.Embedder
	chunker  *Chunker
}

// SearchResult is one retrieved passage.
type SearchResult struct {
	ID         uint64
	Mentor     string
	Source     string
	Text       string
	Similarity float32
}

// New creates a PassageStore using veclite.yaml configuration.
func New(cfg Config) (*PassageStore, error) {
	vecliteCfg, err := veclite.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load veclite config: %w", err)
	}

	embedder, err := veclite.NewEmbedderFromConfig(vecliteCfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	vecdb, err := veclite.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open veclite db: %w", err)
	}

	coll, err := vecdb.CreateCollection(passagesCollection,
		veclite.WithDimension(embedder.Dimension()),
		veclite.WithDistanceType(veclite.DistanceCosine),
		veclite.WithHNSW(16, 200),
		veclite.WithTextIndex("mentor", "source", "text"),
		veclite.WithEmbedder(embedder),
	)
	if err != nil {
		// Collection might already exist, try to get it
		coll, err = vecdb.GetCollection(passagesCollection)
		if err != nil {
			vecdb.Close()
			return nil, fmt.Errorf("get collection: %w", err)
		}
	}

	return &PassageStore{
		vecdb:    vecdb,
		coll:     coll,
		embedder: embedder,
		chunker:  NewChunker(cfg.Chunker),
	}, nil
}

// Close closes the VecLite database.
func (s *PassageStore) Close() error {
	if s.vecdb != nil {
		return s.vecdb.Close()
	}
	return nil
}

// Count returns the number of stored passages.
func (s *PassageStore) Count() int {
	return s.coll.Count()
}

// IngestText chunks text into passages and inserts each one under the
// given mentor and source labels. Returns the number of passages stored.
func (s *PassageStore) IngestText(ctx context.Context, mentor, source, text string) (int, error) {
	passages := s.chunker.ChunkText(text)

	inserted := 0
	for _, p := range passages {
		select {
		case <-ctx.Done():
			return inserted, ctx.Err()
		default:
		}

		payload := map[string]any{
			"mentor": mentor,
			"source": source,
			"text":   p.Text,
			"words":  p.WordCount,
		}

		// InsertText auto-embeds via the configured embedder
		if _, err := s.coll.InsertText(p.Text, payload); err != nil {
			return inserted, fmt.Errorf("insert passage: %w", err)
		}
		inserted++
	}

	slog.Info("ingested passages",
		"mentor", mentor,
		"source", source,
		"passages", inserted,
	)

	return inserted, nil
}

// Exemplars retrieves the k passages by mentor most relevant to topic.
func (s *PassageStore) Exemplars(ctx context.Context, mentor, topic string, k int) ([]SearchResult, error) {
	queryVec, err := s.embedder.Embed(topic)
	if err != nil {
		return nil, fmt.Errorf("embed topic: %w", err)
	}

	results, err := s.coll.Search(queryVec,
		veclite.TopK(k),
		veclite.WithFilter(veclite.Equal("mentor", mentor)),
	)
	if err != nil {
		return nil, fmt.Errorf("search passages: %w", err)
	}

	return convertResults(results), nil
}

// Search runs a hybrid (vector + BM25) search across all mentors.
func (s *PassageStore) Search(ctx context.Context, query string, k int) ([]SearchResult, error) {
	queryVec, err := s.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := s.coll.HybridSearch(queryVec, query,
		veclite.TopK(k),
		veclite.WithVectorWeight(1.0),
		veclite.WithTextWeight(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}

	return convertResults(results), nil
}

// ExemplarTexts returns just the passage texts from Exemplars.
func (s *PassageStore) ExemplarTexts(ctx context.Context, mentor, topic string, k int) ([]string, error) {
	results, err := s.Exemplars(ctx, mentor, topic, k)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Text)
	}
	return texts, nil
}

func convertResults(results []veclite.Result) []SearchResult {
	converted := make([]SearchResult, 0, len(results))
	for _, r := range results {
		sr := SearchResult{
			ID:         r.Record.ID,
			Similarity: r.Score,
		}
		if r.Record.Payload != nil {
			if v, ok := r.Record.Payload["mentor"].(string); ok {
				sr.Mentor = v
			}
			if v, ok := r.Record.Payload["source"].(string); ok {
				sr.Source = v
			}
			if v, ok := r.Record.Payload["text"].(string); ok {
				sr.Text = v
			}
		}
		if sr.Text == "" && r.Record.Content != "" {
			sr.Text = r.Record.Content
		}
		converted = append(converted, sr)
	}
	return converted
}
