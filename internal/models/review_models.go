package models

// ReviewInput is the single synchronous entry payload for the pipeline.
// Rating is optional; values outside [1,5] are treated as absent.
type ReviewInput struct {
	Text     string   `json:"text"`
	Rating   *float64 `json:"rating,omitempty"`
	Business string   `json:"business,omitempty"`
}

// HasRating reports whether a usable rating was supplied.
func (r ReviewInput) HasRating() bool {
	return r.Rating != nil && *r.Rating >= 1.0 && *r.Rating <= 5.0
}

// RatingValue returns the rating, or 0 when absent or malformed.
func (r ReviewInput) RatingValue() float64 {
	if !r.HasRating() {
		return 0
	}
	return *r.Rating
}

// AnalyzedReview pairs a finalized analysis with the review it came
// from, as handed to the ingest path and the analytics aggregator.
type AnalyzedReview struct {
	ReviewID string         `json:"review_id"`
	Text     string         `json:"text"`
	Rating   float64        `json:"rating,omitempty"`
	Business string         `json:"business,omitempty"`
	Result   AnalysisResult `json:"result"`
}
