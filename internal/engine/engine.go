// Package engine wires the pipeline stages into one explicitly
// constructed AnalysisEngine. All stage dependencies are injected at
// construction; there are no lazily initialized package-level models.
package engine

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/revuiq/revuiq/internal/aspect"
	"github.com/revuiq/revuiq/internal/cache"
	"github.com/revuiq/revuiq/internal/compose"
	"github.com/revuiq/revuiq/internal/embed"
	"github.com/revuiq/revuiq/internal/emotion"
	"github.com/revuiq/revuiq/internal/lexicon"
	"github.com/revuiq/revuiq/internal/models"
	"github.com/revuiq/revuiq/internal/sentiment"
	"github.com/revuiq/revuiq/internal/vectorstore"
)

const (
	defaultRetrievalTopN    = 5
	defaultRetrievalTimeout = 2 * time.Second
	defaultIngestBuffer     = 256

	// themeThreshold is how many of the retrieved neighbors must mention
	// an aspect before it counts as a theme.
	themeThreshold = 2
)

// Params configures an AnalysisEngine. Scorer defaults to the VADER
// backend. Embedder and Store are optional; leaving either nil disables
// retrieval-augmented composition and index ingestion.
type Params struct {
	Scorer           sentiment.Scorer
	Embedder         embed.Embedder
	Store            *vectorstore.Store
	Marker           *cache.IngestMarker
	BusinessName     string
	RetrievalTopN    int
	RetrievalTimeout time.Duration
	IngestBuffer     int
}

type AnalysisEngine struct {
	sentiment *sentiment.Analyzer
	emotions  *emotion.Profiler
	aspects   *aspect.Extractor
	composer  *compose.Composer

	embedder embed.Embedder
	store    *vectorstore.Store
	marker   *cache.IngestMarker

	businessName     string
	retrievalTopN    int
	retrievalTimeout time.Duration

	ingestCh chan models.AnalyzedReview
	done     chan struct{}
}

func NewAnalysisEngine(p Params) *AnalysisEngine {
	scorer := p.Scorer
	if scorer == nil {
		scorer = sentiment.NewVADERScorer()
	}
	if p.RetrievalTopN <= 0 {
		p.RetrievalTopN = defaultRetrievalTopN
	}
	if p.RetrievalTimeout <= 0 {
		p.RetrievalTimeout = defaultRetrievalTimeout
	}
	if p.IngestBuffer <= 0 {
		p.IngestBuffer = defaultIngestBuffer
	}
	if p.BusinessName == "" {
		p.BusinessName = "our business"
	}

	return &AnalysisEngine{
		sentiment:        sentiment.NewAnalyzer(scorer),
		emotions:         emotion.NewProfiler(),
		aspects:          aspect.NewExtractor(),
		composer:         compose.NewComposer(),
		embedder:         p.Embedder,
		store:            p.Store,
		marker:           p.Marker,
		businessName:     p.BusinessName,
		retrievalTopN:    p.RetrievalTopN,
		retrievalTimeout: p.RetrievalTimeout,
		ingestCh:         make(chan models.AnalyzedReview, p.IngestBuffer),
		done:             make(chan struct{}),
	}
}

// Analyze runs the five stages in order and returns the finished
// result. It never returns an error: predictable edge cases produce
// defaults and retrieval failures degrade to template-only composition.
func (e *AnalysisEngine) Analyze(ctx context.Context, in models.ReviewInput) models.AnalysisResult {
	sent := e.sentiment.Analyze(in.Text, in.Rating)
	emotions := e.emotions.Profile(in.Text, sent.Label, math.Abs(sent.Polarity))
	aspects := e.aspects.Extract(in.Text, sent.Label)

	themes, ragEnabled := e.retrieveThemes(ctx, in.Text, sent.Label)

	response := e.composer.Compose(compose.Input{
		Text:         in.Text,
		Sentiment:    sent,
		Aspects:      aspects,
		Themes:       themes,
		BusinessName: e.businessName,
	})

	return models.AnalysisResult{
		Sentiment:  sent,
		Emotions:   emotions,
		Aspects:    aspects,
		Response:   response,
		RAGEnabled: ragEnabled,
	}
}

// retrieveThemes looks up similar same-sentiment reviews and extracts
// the aspects recurring across them. Any failure or timeout returns no
// themes and rag disabled; it is never a hard error.
func (e *AnalysisEngine) retrieveThemes(ctx context.Context, text, sentimentLabel string) ([]string, bool) {
	if e.embedder == nil || e.store == nil || e.store.Len() == 0 {
		return nil, false
	}
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	rctx, cancel := context.WithTimeout(ctx, e.retrievalTimeout)
	defer cancel()

	vector, err := e.embedder.Encode(rctx, text)
	if err != nil {
		slog.Warn("[AnalysisEngine] Embedding failed, composing without retrieval",
			slog.String("error", err.Error()))
		return nil, false
	}

	similar, err := e.store.Query(rctx, vector, e.retrievalTopN, vectorstore.Filter{Sentiment: sentimentLabel})
	if err != nil {
		slog.Warn("[AnalysisEngine] Similarity search aborted, composing without retrieval",
			slog.String("error", err.Error()))
		return nil, false
	}
	if len(similar) == 0 {
		return nil, false
	}

	return e.extractThemes(similar), true
}

// extractThemes returns the aspects mentioned in at least
// themeThreshold of the retrieved reviews, most recurrent first, ties
// in taxonomy order. Mentions are decided by the extractor's own
// word-boundary patterns, never a looser substring scan.
func (e *AnalysisEngine) extractThemes(similar []models.SimilarReview) []string {
	counts := make(map[string]int)
	for _, hit := range similar {
		for _, name := range e.aspects.Mentioned(strings.ToLower(hit.Entry.Text)) {
			counts[name]++
		}
	}

	var themes []string
	for _, name := range lexicon.AspectOrder {
		if counts[name] >= themeThreshold {
			themes = append(themes, name)
		}
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return counts[themes[i]] > counts[themes[j]]
	})
	return themes
}
