package engine

import (
	"context"

	"github.com/revuiq/revuiq/internal/models"
)

// Persistence is the storage collaborator consumed by callers after
// they receive an AnalysisResult. The engine itself never persists
// reviews; it only defines the contract the surrounding service
// implements.
type Persistence interface {
	CreateReview(ctx context.Context, review models.AnalyzedReview) (string, error)
	UpdateReview(ctx context.Context, reviewID string, review models.AnalyzedReview) error
}
