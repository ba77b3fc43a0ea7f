package embed

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// HashingEmbedder is a local, dependency-free embedder: tokens are
// hashed into a fixed number of buckets and the bucket counts are
// L2-normalized. It is deterministic and cheap, which makes it the
// right backend for tests and offline development; similarity quality
// is bag-of-words only.
type HashingEmbedder struct {
	dimension int
}

func NewHashingEmbedder(dimension int) *HashingEmbedder {
	return &HashingEmbedder{dimension: dimension}
}

func (e *HashingEmbedder) Encode(_ context.Context, text string) ([]float64, error) {
	vector := make([]float64, e.dimension)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,!?;:\"'()")
		if token == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(token))
		vector[int(h.Sum32())%e.dimension]++
	}

	norm := 0.0
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector, nil
}

func (e *HashingEmbedder) Dimension() int {
	return e.dimension
}
