package models

// EntryMetadata is the filterable metadata stored with each vector.
type EntryMetadata struct {
	Sentiment string  `json:"sentiment"`
	Rating    float64 `json:"rating,omitempty"`
	Business  string  `json:"business,omitempty"`
}

// EmbeddingEntry is one stored (vector, text, metadata) triple.
// Entries are append-only; the store never edits them in place.
type EmbeddingEntry struct {
	ID       string        `json:"id"`
	Vector   []float64     `json:"vector"`
	Text     string        `json:"text"`
	Metadata EntryMetadata `json:"metadata"`
}

// SimilarReview is a nearest-neighbor hit returned by the store.
type SimilarReview struct {
	Entry      EmbeddingEntry `json:"entry"`
	Similarity float64        `json:"similarity"`
}
