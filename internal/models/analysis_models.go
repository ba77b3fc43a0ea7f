package models

// Sentiment labels emitted by every scoring backend.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// Response tones, derived from the sentiment label.
const (
	ToneApologetic   = "apologetic"
	ToneGrateful     = "grateful"
	ToneProfessional = "professional"
)

type SentimentResult struct {
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	Polarity float64 `json:"polarity"`
	Pos      float64 `json:"pos,omitempty"`
	Neg      float64 `json:"neg,omitempty"`
	Neu      float64 `json:"neu,omitempty"`
}

// Aspect is one detected topic category with its localized sentiment.
type Aspect struct {
	Name      string `json:"aspect"`
	Sentiment string `json:"sentiment"`
	Mentions  int    `json:"mention_count"`
}

type ComposedResponse struct {
	Text       string  `json:"text"`
	Tone       string  `json:"tone"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult is the full pipeline output. It is never mutated after
// being returned; callers own it from there.
type AnalysisResult struct {
	Sentiment  SentimentResult    `json:"sentiment"`
	Emotions   map[string]float64 `json:"emotions"`
	Aspects    []Aspect           `json:"aspects"`
	Response   ComposedResponse   `json:"response"`
	RAGEnabled bool               `json:"rag_enabled"`
}
