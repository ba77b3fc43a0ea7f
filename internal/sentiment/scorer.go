// Package sentiment turns raw review text plus an optional star rating
// into a bounded polarity and a three-way label. The compound polarity
// comes from a pluggable backend; the override rules and thresholds on
// top of it are backend-independent.
package sentiment

import (
	"log/slog"
	"math"
	"strings"

	"github.com/revuiq/revuiq/internal/lexicon"
	"github.com/revuiq/revuiq/internal/models"
)

// RawScore is what a scoring backend produces for a text: a compound
// polarity in [-1,1] and the pos/neg/neu proportions when available.
type RawScore struct {
	Compound float64
	Pos      float64
	Neg      float64
	Neu      float64
}

// Scorer is a pluggable compound-polarity backend.
type Scorer interface {
	Score(text string) (RawScore, error)
}

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

type Analyzer struct {
	scorer Scorer
}

func NewAnalyzer(scorer Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze scores a review. Empty text and malformed ratings are
// predictable inputs, not errors: empty text yields the neutral
// default and out-of-range ratings are ignored.
func (a *Analyzer) Analyze(text string, rating *float64) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{
			Label: models.SentimentNeutral,
			Score: 0.5,
			Neu:   1.0,
		}
	}

	raw, err := a.scorer.Score(text)
	if err != nil {
		slog.Warn("[Sentiment] Backend scoring failed, defaulting to neutral",
			slog.String("error", err.Error()))
		return models.SentimentResult{
			Label: models.SentimentNeutral,
			Score: 0.5,
			Neu:   1.0,
		}
	}

	compound := raw.Compound
	textLower := strings.ToLower(text)

	// Strong negative phrases the compound scorer underweights.
	if hasStrongNegative(textLower) && compound > -0.3 {
		compound = math.Min(compound-0.4, -0.3)
	}

	// A 1-2 star rating is stronger ground truth than lexical cues.
	if rating != nil && *rating >= 1.0 && *rating <= 5.0 && *rating <= 2.0 && compound >= 0 {
		compound = -0.5
	}

	var label string
	var score float64
	switch {
	case compound >= positiveThreshold:
		label = models.SentimentPositive
		score = math.Min(0.5+compound*0.5, 0.99)
	case compound <= negativeThreshold:
		label = models.SentimentNegative
		score = math.Min(0.5+math.Abs(compound)*0.5, 0.99)
	default:
		label = models.SentimentNeutral
		score = 0.5
	}

	return models.SentimentResult{
		Label:    label,
		Score:    round3(score),
		Polarity: round3(compound),
		Pos:      round3(raw.Pos),
		Neg:      round3(raw.Neg),
		Neu:      round3(raw.Neu),
	}
}

func hasStrongNegative(textLower string) bool {
	for _, phrase := range lexicon.StrongNegativePhrases {
		if strings.Contains(textLower, phrase) {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
