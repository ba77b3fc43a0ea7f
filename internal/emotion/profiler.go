// Package emotion derives a multi-label, intensity-weighted emotion set
// from review text conditioned on the document sentiment.
package emotion

import (
	"math"
	"strings"

	"github.com/revuiq/revuiq/internal/lexicon"
	"github.com/revuiq/revuiq/internal/models"
)

type Profiler struct{}

func NewProfiler() *Profiler {
	return &Profiler{}
}

// Profile maps text plus its sentiment onto emotion intensities.
// Intensity is |polarity|; each family's output is base + intensity*scale
// capped at the family maximum. The result is never empty and every
// value lies in [0,1].
func (p *Profiler) Profile(text, sentimentLabel string, intensity float64) map[string]float64 {
	emotions := make(map[string]float64)
	textLower := strings.ToLower(text)
	intensity = clamp01(math.Abs(intensity))

	switch sentimentLabel {
	case models.SentimentPositive:
		p.profilePositive(textLower, intensity, emotions)
	case models.SentimentNegative:
		p.profileNegative(textLower, intensity, emotions)
	default:
		emotions["neutral"] = lexicon.NeutralIntensity
	}

	return emotions
}

func (p *Profiler) profilePositive(textLower string, intensity float64, emotions map[string]float64) {
	// Families are priority-ordered; only the first match fires.
	for i, family := range lexicon.PositiveFamilies {
		if !matchesAny(textLower, family.Keywords) {
			continue
		}
		emotions[family.Emotion] = familyIntensity(family.Base, family.Scale, family.Cap, intensity)

		// Gratitude rides along with strong joy only.
		if i == 0 && matchesAny(textLower, lexicon.GratitudeFamily.Keywords) {
			g := lexicon.GratitudeFamily
			emotions[g.Emotion] = familyIntensity(g.Base, g.Scale, g.Cap, intensity)
		}
		break
	}

	// Surprise is additive regardless of which joy family matched.
	if matchesAny(textLower, lexicon.SurpriseFamily.Keywords) {
		s := lexicon.SurpriseFamily
		emotions[s.Emotion] = familyIntensity(s.Base, s.Scale, s.Cap, intensity)
	}

	if len(emotions) == 0 {
		emotions["joy"] = lexicon.DefaultJoyIntensity
	}
}

func (p *Profiler) profileNegative(textLower string, intensity float64, emotions map[string]float64) {
	for _, family := range lexicon.NegativeFamilies {
		if !matchesAny(textLower, family.Keywords) {
			continue
		}
		emotions[family.Emotion] = familyIntensity(family.Base, family.Scale, family.Cap, intensity)
		for _, co := range family.CoEmits {
			emotions[co.Emotion] = familyIntensity(co.Base, co.Scale, co.Cap, intensity)
		}
		return
	}

	emotions["sadness"] = lexicon.DefaultSadnessIntensity
}

func familyIntensity(base, scale, limit, intensity float64) float64 {
	return clamp01(math.Min(base+intensity*scale, limit))
}

func matchesAny(textLower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(textLower, keyword) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
