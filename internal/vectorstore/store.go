// Package vectorstore is an append-mostly in-memory vector store with
// cosine-similarity nearest-neighbor search and metadata filtering.
//
// Lookup is a linear scan over every stored vector. That is deliberate:
// corpus sizes at this scope stay bounded, so an approximate index would
// buy nothing. The scan cost grows with the store; revisit only if
// entries reach the hundreds of thousands.
package vectorstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/revuiq/revuiq/internal/models"
)

// Filter restricts a query to entries whose metadata matches every
// non-empty field.
type Filter struct {
	Sentiment string
	Business  string
}

type Store struct {
	mu        sync.RWMutex
	dimension int
	entries   []models.EmbeddingEntry
}

// NewStore creates a store for vectors of the given fixed length.
func NewStore(dimension int) *Store {
	return &Store{dimension: dimension}
}

// Add appends one entry. The write either fully succeeds or leaves the
// store untouched; readers never observe a half-written entry. A new
// id is generated when the caller supplies none.
func (s *Store) Add(vector []float64, text string, metadata models.EntryMetadata) (string, error) {
	return s.AddWithID(uuid.NewString(), vector, text, metadata)
}

func (s *Store) AddWithID(id string, vector []float64, text string, metadata models.EntryMetadata) (string, error) {
	if len(vector) != s.dimension {
		return "", fmt.Errorf("vector length %d does not match store dimension %d", len(vector), s.dimension)
	}

	entry := models.EmbeddingEntry{
		ID:       id,
		Vector:   append([]float64(nil), vector...),
		Text:     text,
		Metadata: metadata,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return id, nil
}

// Query returns the topN stored entries most cosine-similar to the
// query vector, filtered by metadata, similarity descending. Ties keep
// insertion order, oldest first. Cancelling the context aborts the scan
// and returns what was accumulated so far alongside ctx.Err().
func (s *Store) Query(ctx context.Context, query []float64, topN int, filter Filter) ([]models.SimilarReview, error) {
	if len(query) != s.dimension {
		return nil, fmt.Errorf("query length %d does not match store dimension %d", len(query), s.dimension)
	}
	if topN <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	snapshot := s.entries
	s.mu.RUnlock()

	queryNorm := floats.Norm(query, 2)

	hits := make([]models.SimilarReview, 0, topN)
	for i, entry := range snapshot {
		if i%256 == 0 && ctx.Err() != nil {
			return sortHits(hits, topN), ctx.Err()
		}
		if !filter.matches(entry.Metadata) {
			continue
		}
		hits = append(hits, models.SimilarReview{
			Entry:      entry,
			Similarity: cosine(query, queryNorm, entry.Vector),
		})
	}

	return sortHits(hits, topN), nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Purge drops every entry. Partial deletion is not supported.
func (s *Store) Purge() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

func (f Filter) matches(m models.EntryMetadata) bool {
	if f.Sentiment != "" && f.Sentiment != m.Sentiment {
		return false
	}
	if f.Business != "" && f.Business != m.Business {
		return false
	}
	return true
}

func cosine(query []float64, queryNorm float64, vector []float64) float64 {
	norm := floats.Norm(vector, 2)
	if queryNorm == 0 || norm == 0 {
		return 0
	}
	return floats.Dot(query, vector) / (queryNorm * norm)
}

func sortHits(hits []models.SimilarReview, topN int) []models.SimilarReview {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})
	if len(hits) > topN {
		hits = hits[:topN]
	}
	return hits
}
