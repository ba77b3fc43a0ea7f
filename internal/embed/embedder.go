// Package embed defines the embedding collaborator: a deterministic
// text to fixed-length-vector function. The pipeline treats vectors as
// opaque arrays; which model produces them is a backend choice.
package embed

import "context"

type Embedder interface {
	// Encode returns a fixed-length vector for the text. Implementations
	// must be deterministic for identical input.
	Encode(ctx context.Context, text string) ([]float64, error)

	// Dimension reports the length of vectors produced by Encode.
	Dimension() int
}
