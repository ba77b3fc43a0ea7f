package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/revuiq/revuiq/internal/models"
)

// Ingest queues a finalized review for asynchronous insertion into the
// embedding index. It never blocks the caller: when the queue is full
// the review is dropped with a warning, since the index is a best-effort
// retrieval aid, not a system of record.
func (e *AnalysisEngine) Ingest(review models.AnalyzedReview) error {
	if e.embedder == nil || e.store == nil {
		return fmt.Errorf("ingestion disabled: no embedder or store configured")
	}

	select {
	case e.ingestCh <- review:
		return nil
	default:
		slog.Warn("[AnalysisEngine] Ingest queue full, dropping review",
			slog.String("review_id", review.ReviewID))
		return fmt.Errorf("ingest queue full")
	}
}

// StartIngestWorker runs the index writer until ctx is cancelled. Writes
// are buffered and flushed in batches. The single worker goroutine is
// the only writer, which keeps the store's write discipline trivial.
func (e *AnalysisEngine) StartIngestWorker(ctx context.Context) {
	go func() {
		defer close(e.done)

		buffer := newBatchBuffer[models.AnalyzedReview]()
		ticker := time.NewTicker(ingestBatchTimeout)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[AnalysisEngine] Ingest worker shutting down, flushing buffer")
				for {
					select {
					case review := <-e.ingestCh:
						buffer.Add(review)
					default:
						e.flushIngestBatch(context.Background(), buffer)
						return
					}
				}
			case <-ticker.C:
				e.flushIngestBatch(ctx, buffer)
			case review := <-e.ingestCh:
				buffer.Add(review)
				if buffer.Size() >= ingestBatchSize {
					e.flushIngestBatch(ctx, buffer)
				}
			}
		}
	}()
}

// WaitIngestDone blocks until the ingest worker has flushed and exited.
func (e *AnalysisEngine) WaitIngestDone() {
	<-e.done
}

func (e *AnalysisEngine) flushIngestBatch(ctx context.Context, buffer *batchBuffer[models.AnalyzedReview]) {
	batch := buffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for _, review := range batch {
		if e.marker != nil && e.marker.IsIngested(ctx, review.ReviewID) {
			slog.Debug("[AnalysisEngine] Review already indexed, skipping",
				slog.String("review_id", review.ReviewID))
			continue
		}

		vector, err := e.embedder.Encode(ctx, review.Text)
		if err != nil {
			slog.Error("[AnalysisEngine] Failed to embed review for indexing",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
			continue
		}

		_, err = e.store.AddWithID(review.ReviewID, vector, review.Text, models.EntryMetadata{
			Sentiment: review.Result.Sentiment.Label,
			Rating:    review.Rating,
			Business:  review.Business,
		})
		if err != nil {
			slog.Error("[AnalysisEngine] Failed to index review",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
			continue
		}

		if e.marker != nil {
			if err := e.marker.MarkIngested(ctx, review.ReviewID); err != nil {
				slog.Warn("[AnalysisEngine] Failed to mark review as ingested",
					slog.String("review_id", review.ReviewID),
					slog.String("error", err.Error()))
			}
		}
	}

	slog.Info("[AnalysisEngine] Indexed review batch",
		slog.Int("batch_size", len(batch)),
		slog.Int("index_size", e.store.Len()))
}
