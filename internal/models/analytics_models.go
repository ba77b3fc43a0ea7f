package models

// AnalyticsSummary aggregates a set of analyzed reviews.
type AnalyticsSummary struct {
	TotalReviews          int                `json:"total_reviews"`
	AverageRating         float64            `json:"average_rating"`
	SentimentDistribution map[string]int     `json:"sentiment_distribution"`
	RatingDistribution    map[int]int        `json:"rating_distribution"`
	TopEmotions           []WeightedLabel    `json:"top_emotions"`
	TopAspects            []WeightedLabel    `json:"top_aspects"`
	ResponseRate          float64            `json:"response_rate"`
	AverageConfidence     map[string]float64 `json:"average_confidence,omitempty"`
}

// WeightedLabel is a name with an aggregate weight, sorted descending.
type WeightedLabel struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
