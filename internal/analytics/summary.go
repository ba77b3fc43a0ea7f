// Package analytics aggregates analyzed reviews into the summary
// figures the dashboards consume. Everything here is pure computation
// over in-memory slices.
package analytics

import (
	"math"
	"sort"

	"github.com/revuiq/revuiq/internal/models"
)

const topK = 5

// Summarize computes the aggregate view over a set of analyzed reviews.
func Summarize(reviews []models.AnalyzedReview) models.AnalyticsSummary {
	summary := models.AnalyticsSummary{
		TotalReviews:          len(reviews),
		SentimentDistribution: map[string]int{},
		RatingDistribution:    map[int]int{},
	}
	if len(reviews) == 0 {
		return summary
	}

	emotionWeights := make(map[string]float64)
	aspectMentions := make(map[string]float64)
	confidenceSums := make(map[string]float64)
	confidenceCounts := make(map[string]int)

	var ratingSum float64
	var rated, responded int

	for _, review := range reviews {
		label := review.Result.Sentiment.Label
		summary.SentimentDistribution[label]++

		if review.Rating >= 1 && review.Rating <= 5 {
			summary.RatingDistribution[int(math.Round(review.Rating))]++
			ratingSum += review.Rating
			rated++
		}

		for emotion, intensity := range review.Result.Emotions {
			emotionWeights[emotion] += intensity
		}
		for _, a := range review.Result.Aspects {
			aspectMentions[a.Name] += float64(a.Mentions)
		}

		if review.Result.Response.Text != "" {
			responded++
			confidenceSums[label] += review.Result.Response.Confidence
			confidenceCounts[label]++
		}
	}

	if rated > 0 {
		summary.AverageRating = round2(ratingSum / float64(rated))
	}
	summary.ResponseRate = round2(float64(responded) / float64(len(reviews)))
	summary.TopEmotions = topWeighted(emotionWeights, topK)
	summary.TopAspects = topWeighted(aspectMentions, topK)

	if len(confidenceCounts) > 0 {
		summary.AverageConfidence = make(map[string]float64, len(confidenceCounts))
		for label, sum := range confidenceSums {
			summary.AverageConfidence[label] = round2(sum / float64(confidenceCounts[label]))
		}
	}

	return summary
}

// topWeighted returns the k heaviest labels, weight descending, names
// ascending on ties so output is stable.
func topWeighted(weights map[string]float64, k int) []models.WeightedLabel {
	labels := make([]models.WeightedLabel, 0, len(weights))
	for name, weight := range weights {
		labels = append(labels, models.WeightedLabel{Name: name, Weight: round2(weight)})
	}

	sort.Slice(labels, func(i, j int) bool {
		if labels[i].Weight != labels[j].Weight {
			return labels[i].Weight > labels[j].Weight
		}
		return labels[i].Name < labels[j].Name
	})

	if len(labels) > k {
		labels = labels[:k]
	}
	return labels
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
