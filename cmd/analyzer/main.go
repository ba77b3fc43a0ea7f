package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/revuiq/revuiq/config"
	"github.com/revuiq/revuiq/internal/cache"
	"github.com/revuiq/revuiq/internal/embed"
	"github.com/revuiq/revuiq/internal/engine"
	"github.com/revuiq/revuiq/internal/logging"
	"github.com/revuiq/revuiq/internal/models"
	"github.com/revuiq/revuiq/internal/vectorstore"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	embedder := buildEmbedder(cfg)
	store := vectorstore.NewStore(embedder.Dimension())

	var marker *cache.IngestMarker
	if cfg.ValkeyAddress != "" {
		m, err := cache.NewIngestMarker(cache.Options{
			Address:  cfg.ValkeyAddress,
			Password: cfg.ValkeyPassword,
			UseTLS:   cfg.ValkeyTLS,
		})
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, ingest dedupe disabled",
				slog.String("error", err.Error()))
		} else {
			marker = m
			defer marker.Close()
		}
	}

	eng := engine.NewAnalysisEngine(engine.Params{
		Embedder:         embedder,
		Store:            store,
		Marker:           marker,
		BusinessName:     cfg.BusinessName,
		RetrievalTopN:    cfg.RetrievalTopN,
		RetrievalTimeout: cfg.RetrievalTimeout,
		IngestBuffer:     cfg.IngestBuffer,
	})
	eng.StartIngestWorker(ctx)

	rating := func(v float64) *float64 { return &v }
	samples := []models.ReviewInput{
		{Text: "Great food and service! Will definitely come back.", Rating: rating(5), Business: cfg.BusinessName},
		{Text: "The pasta was amazing but the wait was way too long.", Rating: rating(4), Business: cfg.BusinessName},
		{Text: "Food was okay", Rating: rating(1), Business: cfg.BusinessName},
		{Text: "I got food poisoning here", Rating: rating(1), Business: cfg.BusinessName},
	}

	for _, sample := range samples {
		result := eng.Analyze(ctx, sample)
		slog.Info("[Main] Review analyzed",
			slog.String("text", sample.Text),
			slog.String("sentiment", result.Sentiment.Label),
			slog.Float64("polarity", result.Sentiment.Polarity),
			slog.String("tone", result.Response.Tone),
			slog.Bool("rag_enabled", result.RAGEnabled),
			slog.String("response", result.Response.Text))

		if err := eng.Ingest(models.AnalyzedReview{
			ReviewID: uuid.NewString(),
			Text:     sample.Text,
			Rating:   sample.RatingValue(),
			Business: sample.Business,
			Result:   result,
		}); err != nil {
			slog.Warn("[Main] Failed to queue review for indexing",
				slog.String("error", err.Error()))
		}
	}

	cancel()
	eng.WaitIngestDone()
	slog.Info("[Main] Done", slog.Int("indexed", store.Len()))
}

func buildEmbedder(cfg config.Config) embed.Embedder {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Info("[Main] No OPENAI_API_KEY set, using local hashing embedder")
		return embed.NewHashingEmbedder(cfg.EmbeddingDim)
	}

	embedder, err := embed.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel, cfg.EmbeddingDim)
	if err != nil {
		slog.Warn("[Main] OpenAI embedder unavailable, falling back to hashing embedder",
			slog.String("error", err.Error()))
		return embed.NewHashingEmbedder(cfg.EmbeddingDim)
	}
	return embedder
}
