package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revuiq/revuiq/internal/models"
)

func TestProfile_StrongJoy(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("I love this place", models.SentimentPositive, 0.8)

	require.Contains(t, emotions, "joy")
	// base 0.75 + 0.8*0.20 = 0.91, under the 0.95 cap
	assert.InDelta(t, 0.91, emotions["joy"], 1e-9)
}

func TestProfile_StrongJoyCapped(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("Absolutely amazing, the best!", models.SentimentPositive, 1.0)

	assert.InDelta(t, 0.95, emotions["joy"], 1e-9)
}

func TestProfile_ModerateJoyWhenNoStrongKeywords(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("Really good evening out", models.SentimentPositive, 0.8)

	require.Contains(t, emotions, "joy")
	// moderate family: base 0.60 + 0.8*0.20 = 0.76
	assert.InDelta(t, 0.76, emotions["joy"], 1e-9)
}

func TestProfile_GratitudeRequiresStrongJoy(t *testing.T) {
	profiler := NewProfiler()

	strong := profiler.Profile("I love it here, thank you all", models.SentimentPositive, 0.5)
	require.Contains(t, strong, "gratitude")
	assert.InDelta(t, 0.80, strong["gratitude"], 1e-9)

	moderate := profiler.Profile("Pretty good, thank you", models.SentimentPositive, 0.5)
	assert.NotContains(t, moderate, "gratitude")
	assert.Contains(t, moderate, "joy")
}

func TestProfile_SurpriseIsAdditive(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("Wow, what a good unexpected find", models.SentimentPositive, 0.4)

	assert.Contains(t, emotions, "joy")
	require.Contains(t, emotions, "surprise")
	assert.InDelta(t, 0.66, emotions["surprise"], 1e-9)
}

func TestProfile_PositiveDefaultJoy(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("A decent stop on our trip", models.SentimentPositive, 0.3)

	assert.Equal(t, map[string]float64{"joy": 0.65}, emotions)
}

func TestProfile_DisgustCoEmitsAnger(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("I got food poisoning here", models.SentimentNegative, 0.5)

	require.Contains(t, emotions, "disgust")
	require.Contains(t, emotions, "anger")
	assert.InDelta(t, 0.875, emotions["disgust"], 1e-9)
	assert.InDelta(t, 0.775, emotions["anger"], 1e-9)
	assert.Greater(t, emotions["disgust"], emotions["anger"])
}

func TestProfile_DisgustOutranksAnger(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("Terrible and disgusting", models.SentimentNegative, 0.6)

	// The health family wins; the anger family never fires on its own,
	// so its disappointment co-emit must be absent.
	assert.Contains(t, emotions, "disgust")
	assert.Contains(t, emotions, "anger")
	assert.NotContains(t, emotions, "disappointment")
}

func TestProfile_AngerCoEmitsDisappointment(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("The worst dinner of my life", models.SentimentNegative, 1.0)

	require.Contains(t, emotions, "anger")
	require.Contains(t, emotions, "disappointment")
	assert.InDelta(t, 0.90, emotions["anger"], 1e-9)
	assert.InDelta(t, 0.80, emotions["disappointment"], 1e-9)
}

func TestProfile_SadnessFamily(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("Honestly disappointing", models.SentimentNegative, 0.2)

	require.Contains(t, emotions, "sadness")
	assert.Contains(t, emotions, "disappointment")
	assert.InDelta(t, 0.68, emotions["sadness"], 1e-9)
}

func TestProfile_FearFamily(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("I was worried the whole time", models.SentimentNegative, 0.4)

	assert.InDelta(t, 0.66, emotions["fear"], 1e-9)
	assert.Len(t, emotions, 1)
}

func TestProfile_NegativeDefaultSadness(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("Just meh", models.SentimentNegative, 0.1)

	assert.Equal(t, map[string]float64{"sadness": 0.60}, emotions)
}

func TestProfile_NeutralFixedIntensity(t *testing.T) {
	profiler := NewProfiler()
	emotions := profiler.Profile("It was a restaurant", models.SentimentNeutral, 0.0)

	assert.Equal(t, map[string]float64{"neutral": 0.70}, emotions)
}

func TestProfile_NeverEmptyAndAlwaysInRange(t *testing.T) {
	profiler := NewProfiler()

	texts := []string{
		"", "amazing", "worst ever", "sick to my stomach",
		"thank you so much, I love it", "wow unexpected",
		"bad and disappointing and worried",
	}
	labels := []string{
		models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral,
	}

	for _, text := range texts {
		for _, label := range labels {
			for _, intensity := range []float64{0, 0.5, 1.0, 2.5, -0.3} {
				emotions := profiler.Profile(text, label, intensity)
				require.NotEmpty(t, emotions, "text=%q label=%s", text, label)
				for name, value := range emotions {
					assert.GreaterOrEqual(t, value, 0.0, "emotion %s", name)
					assert.LessOrEqual(t, value, 1.0, "emotion %s", name)
				}
			}
		}
	}
}
