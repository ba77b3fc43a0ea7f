package vectorstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revuiq/revuiq/internal/models"
)

func TestAdd_GeneratesID(t *testing.T) {
	store := NewStore(3)

	id, err := store.Add([]float64{1, 0, 0}, "first", models.EntryMetadata{})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, store.Len())
}

func TestAddWithID_KeepsCallerID(t *testing.T) {
	store := NewStore(3)

	id, err := store.AddWithID("review-1", []float64{1, 0, 0}, "first", models.EntryMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "review-1", id)
}

func TestAdd_RejectsWrongDimension(t *testing.T) {
	store := NewStore(3)

	_, err := store.Add([]float64{1, 0}, "short", models.EntryMetadata{})
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestAdd_CopiesVector(t *testing.T) {
	store := NewStore(3)
	vector := []float64{0, 1, 0}

	_, err := store.Add(vector, "stored", models.EntryMetadata{})
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the stored entry.
	vector[1] = 0
	vector[0] = 1

	hits, err := store.Query(context.Background(), []float64{0, 1, 0}, 1, Filter{})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-9)
}

func TestQuery_SelfMatchIsTopOne(t *testing.T) {
	store := NewStore(3)

	_, err := store.Add([]float64{1, 0, 0}, "a", models.EntryMetadata{})
	require.NoError(t, err)
	target, err := store.Add([]float64{0, 1, 0}, "b", models.EntryMetadata{})
	require.NoError(t, err)
	_, err = store.Add([]float64{0, 0, 1}, "c", models.EntryMetadata{})
	require.NoError(t, err)

	hits, err := store.Query(context.Background(), []float64{0, 1, 0}, 3, Filter{})
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, target, hits[0].Entry.ID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-9)
}

func TestQuery_SimilarityDescending(t *testing.T) {
	store := NewStore(2)

	_, _ = store.Add([]float64{1, 0}, "aligned", models.EntryMetadata{})
	_, _ = store.Add([]float64{1, 1}, "diagonal", models.EntryMetadata{})
	_, _ = store.Add([]float64{0, 1}, "orthogonal", models.EntryMetadata{})

	hits, err := store.Query(context.Background(), []float64{1, 0}, 3, Filter{})
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "aligned", hits[0].Entry.Text)
	assert.Equal(t, "diagonal", hits[1].Entry.Text)
	assert.Equal(t, "orthogonal", hits[2].Entry.Text)
}

func TestQuery_TiesKeepInsertionOrder(t *testing.T) {
	store := NewStore(2)

	first, _ := store.AddWithID("first", []float64{1, 0}, "", models.EntryMetadata{})
	second, _ := store.AddWithID("second", []float64{2, 0}, "", models.EntryMetadata{})

	hits, err := store.Query(context.Background(), []float64{1, 0}, 2, Filter{})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, first, hits[0].Entry.ID)
	assert.Equal(t, second, hits[1].Entry.ID)
}

func TestQuery_MetadataFilter(t *testing.T) {
	store := NewStore(2)

	_, _ = store.Add([]float64{1, 0}, "loved it", models.EntryMetadata{Sentiment: models.SentimentPositive})
	_, _ = store.Add([]float64{1, 0}, "hated it", models.EntryMetadata{Sentiment: models.SentimentNegative})
	_, _ = store.Add([]float64{0, 1}, "also loved it", models.EntryMetadata{Sentiment: models.SentimentPositive})

	hits, err := store.Query(context.Background(), []float64{1, 0}, 10,
		Filter{Sentiment: models.SentimentPositive})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	for _, hit := range hits {
		assert.Equal(t, models.SentimentPositive, hit.Entry.Metadata.Sentiment)
	}
}

func TestQuery_BusinessFilter(t *testing.T) {
	store := NewStore(2)

	_, _ = store.Add([]float64{1, 0}, "ours", models.EntryMetadata{Business: "cafe-a"})
	_, _ = store.Add([]float64{1, 0}, "theirs", models.EntryMetadata{Business: "cafe-b"})

	hits, err := store.Query(context.Background(), []float64{1, 0}, 10, Filter{Business: "cafe-a"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "ours", hits[0].Entry.Text)
}

func TestQuery_TruncatesToTopN(t *testing.T) {
	store := NewStore(2)
	for i := 0; i < 10; i++ {
		_, _ = store.Add([]float64{1, float64(i)}, "", models.EntryMetadata{})
	}

	hits, err := store.Query(context.Background(), []float64{1, 0}, 3, Filter{})
	require.NoError(t, err)
	assert.Len(t, hits, 3)
}

func TestQuery_RejectsWrongDimension(t *testing.T) {
	store := NewStore(3)

	_, err := store.Query(context.Background(), []float64{1, 0}, 1, Filter{})
	assert.Error(t, err)
}

func TestQuery_ZeroVectorSimilarityIsZero(t *testing.T) {
	store := NewStore(2)

	_, _ = store.Add([]float64{0, 0}, "empty", models.EntryMetadata{})

	hits, err := store.Query(context.Background(), []float64{1, 0}, 1, Filter{})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 0.0, hits[0].Similarity)
}

func TestQuery_CancelledContextAborts(t *testing.T) {
	store := NewStore(2)
	_, _ = store.Add([]float64{1, 0}, "", models.EntryMetadata{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hits, err := store.Query(ctx, []float64{1, 0}, 1, Filter{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, hits)
}

func TestQuery_NonPositiveTopN(t *testing.T) {
	store := NewStore(2)
	_, _ = store.Add([]float64{1, 0}, "", models.EntryMetadata{})

	hits, err := store.Query(context.Background(), []float64{1, 0}, 0, Filter{})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestConcurrentAddAndQuery(t *testing.T) {
	store := NewStore(4)
	const writes = 500

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			_, err := store.Add([]float64{1, float64(i), 0, 1}, "entry",
				models.EntryMetadata{Sentiment: models.SentimentPositive})
			assert.NoError(t, err)
		}
	}()

	// Readers run against the writer; every hit they observe must be a
	// fully written entry.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				hits, err := store.Query(context.Background(), []float64{1, 0, 0, 1}, 5,
					Filter{Sentiment: models.SentimentPositive})
				assert.NoError(t, err)
				for _, hit := range hits {
					assert.Len(t, hit.Entry.Vector, 4)
					assert.Equal(t, "entry", hit.Entry.Text)
					assert.NotEmpty(t, hit.Entry.ID)
				}
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, writes, store.Len())
}

func TestPurge_EmptiesStore(t *testing.T) {
	store := NewStore(2)
	_, _ = store.Add([]float64{1, 0}, "", models.EntryMetadata{})
	_, _ = store.Add([]float64{0, 1}, "", models.EntryMetadata{})

	store.Purge()

	assert.Equal(t, 0, store.Len())
	hits, err := store.Query(context.Background(), []float64{1, 0}, 5, Filter{})
	require.NoError(t, err)
	assert.Empty(t, hits)
}
