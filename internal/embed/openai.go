package embed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 30 * time.Second
	maxRetries           = 3
	initialBackoff       = 500 * time.Millisecond
)

// OpenAIEmbedder encodes text through the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client    *openai.Client
	model     string
	dimension int
}

func NewOpenAIEmbedder(apiKey, model string, dimension int) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing OpenAI API key")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(openAIRequestTimeout),
	)

	slog.Info("[OpenAIEmbedder] Client initialized",
		slog.String("model", model),
		slog.Int("dimension", dimension))

	return &OpenAIEmbedder{client: client, model: model, dimension: dimension}, nil
}

func (e *OpenAIEmbedder) Encode(ctx context.Context, text string) ([]float64, error) {
	var resp *openai.CreateEmbeddingResponse
	var err error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err = e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
			Input:      openai.F[openai.EmbeddingNewParamsInputUnion](openai.EmbeddingNewParamsInputArrayOfStrings([]string{text})),
			Model:      openai.F(openai.EmbeddingModel(e.model)),
			Dimensions: openai.F(int64(e.dimension)),
		})
		if err == nil {
			break
		}

		slog.Warn("[OpenAIEmbedder] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	if err != nil {
		return nil, fmt.Errorf("embedding request failed after retries: %w", err)
	}

	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("unexpected embedding result size: got %d want 1", len(resp.Data))
	}

	vector := resp.Data[0].Embedding
	if len(vector) != e.dimension {
		return nil, fmt.Errorf("embedding size mismatch: got %d want %d", len(vector), e.dimension)
	}

	return vector, nil
}

func (e *OpenAIEmbedder) Dimension() int {
	return e.dimension
}
