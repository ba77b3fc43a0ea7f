// Package aspect detects which topic categories a review discusses and
// assigns each a sentiment localized to the text around its mentions.
package aspect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/revuiq/revuiq/internal/lexicon"
	"github.com/revuiq/revuiq/internal/models"
)

// window is the character span scanned on each side of a keyword when
// computing local sentiment.
const window = 50

type Extractor struct {
	patterns map[string]*regexp.Regexp
}

// NewExtractor compiles one word-boundary pattern per aspect category.
func NewExtractor() *Extractor {
	patterns := make(map[string]*regexp.Regexp, len(lexicon.AspectKeywords))
	for name, keywords := range lexicon.AspectKeywords {
		escaped := make([]string, len(keywords))
		for i, kw := range keywords {
			escaped[i] = regexp.QuoteMeta(kw)
		}
		patterns[name] = regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
	}
	return &Extractor{patterns: patterns}
}

// Extract returns detected aspects sorted by mention count descending,
// ties broken by taxonomy order. When nothing matches it emits the
// fallback general entry carrying the overall document sentiment.
func (e *Extractor) Extract(text, overallSentiment string) []models.Aspect {
	textLower := strings.ToLower(text)

	var aspects []models.Aspect
	for _, name := range lexicon.AspectOrder {
		matches := e.patterns[name].FindAllStringIndex(textLower, -1)
		if len(matches) == 0 {
			continue
		}
		aspects = append(aspects, models.Aspect{
			Name:      name,
			Sentiment: e.localSentiment(textLower, matches),
			Mentions:  len(matches),
		})
	}

	if len(aspects) == 0 {
		return []models.Aspect{{
			Name:      "general",
			Sentiment: overallSentiment,
			Mentions:  1,
		}}
	}

	sort.SliceStable(aspects, func(i, j int) bool {
		return aspects[i].Mentions > aspects[j].Mentions
	})
	return aspects
}

// Mentioned reports which taxonomy categories the text mentions, in
// taxonomy order. It applies the same word-boundary patterns as
// Extract, so every caller answers "does this review mention aspect X"
// the same way.
func (e *Extractor) Mentioned(text string) []string {
	var names []string
	for _, name := range lexicon.AspectOrder {
		if e.patterns[name].MatchString(text) {
			names = append(names, name)
		}
	}
	return names
}

// localSentiment counts positive and negative lexicon hits inside the
// window around every keyword occurrence, never the whole text, so
// unrelated sentence sentiment does not bleed into the aspect.
func (e *Extractor) localSentiment(textLower string, matches [][]int) string {
	var posHits, negHits int

	for _, m := range matches {
		start := m[0] - window
		if start < 0 {
			start = 0
		}
		end := m[1] + window
		if end > len(textLower) {
			end = len(textLower)
		}
		context := textLower[start:end]

		for _, word := range lexicon.WindowPositive {
			if strings.Contains(context, word) {
				posHits++
			}
		}
		for _, word := range lexicon.WindowNegative {
			if strings.Contains(context, word) {
				negHits++
			}
		}
	}

	switch {
	case posHits > negHits:
		return models.SentimentPositive
	case negHits > posHits:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
