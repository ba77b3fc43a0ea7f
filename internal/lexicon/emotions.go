package lexicon

// EmotionFamily is one keyword family in a sentiment branch. Families
// are evaluated in order; the first whose keywords appear wins, and
// only its declared co-emits fire alongside it.
type EmotionFamily struct {
	Emotion  string
	Keywords []string
	Base     float64
	Scale    float64
	Cap      float64
	CoEmits  []CoEmission
}

// CoEmission is an emotion a family always emits alongside its own,
// at a slightly lower intensity.
type CoEmission struct {
	Emotion string
	Base    float64
	Scale   float64
	Cap     float64
}

// PositiveFamilies in priority order: strong joy, moderate satisfaction,
// then surprise, which may also fire on top of an earlier match.
var PositiveFamilies = []EmotionFamily{
	{
		Emotion:  "joy",
		Keywords: []string{"love", "amazing", "excellent", "perfect", "best", "wonderful"},
		Base:     0.75, Scale: 0.20, Cap: 0.95,
	},
	{
		Emotion:  "joy",
		Keywords: []string{"good", "nice", "great", "happy", "enjoyed"},
		Base:     0.60, Scale: 0.20, Cap: 0.80,
	},
}

// GratitudeFamily fires only when a strong-joy match is already present.
var GratitudeFamily = EmotionFamily{
	Emotion:  "gratitude",
	Keywords: []string{"thank", "appreciate", "grateful"},
	Base:     0.70, Scale: 0.20, Cap: 0.90,
}

// SurpriseFamily is additive within the positive branch.
var SurpriseFamily = EmotionFamily{
	Emotion:  "surprise",
	Keywords: []string{"surprised", "unexpected", "wow", "amazing"},
	Base:     0.60, Scale: 0.15, Cap: 0.75,
}

// NegativeFamilies in priority order. Acute categories saturate faster,
// so their caps sit higher than the mild ones.
var NegativeFamilies = []EmotionFamily{
	{
		Emotion:  "disgust",
		Keywords: []string{"sick", "poisoning", "vomit", "nausea", "disgusting", "gross"},
		Base:     0.80, Scale: 0.15, Cap: 0.95,
		CoEmits: []CoEmission{{Emotion: "anger", Base: 0.70, Scale: 0.15, Cap: 0.85}},
	},
	{
		Emotion:  "anger",
		Keywords: []string{"terrible", "worst", "horrible", "awful", "hate", "never again"},
		Base:     0.75, Scale: 0.15, Cap: 0.90,
		CoEmits: []CoEmission{{Emotion: "disappointment", Base: 0.65, Scale: 0.15, Cap: 0.80}},
	},
	{
		Emotion:  "sadness",
		Keywords: []string{"bad", "poor", "disappointing", "disappointed", "sad"},
		Base:     0.65, Scale: 0.15, Cap: 0.80,
		CoEmits: []CoEmission{{Emotion: "disappointment", Base: 0.60, Scale: 0.15, Cap: 0.75}},
	},
	{
		Emotion:  "fear",
		Keywords: []string{"scared", "afraid", "worried", "concern"},
		Base:     0.60, Scale: 0.15, Cap: 0.75,
	},
}

// Branch defaults when no family matches.
const (
	DefaultJoyIntensity     = 0.65
	DefaultSadnessIntensity = 0.60
	NeutralIntensity        = 0.70
)
