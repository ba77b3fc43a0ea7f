// Package compose builds the suggested reply to a review from the
// sentiment label, aspect list, and optionally the themes recurring in
// retrieved similar reviews.
package compose

import (
	"fmt"
	"strings"

	"github.com/revuiq/revuiq/internal/lexicon"
	"github.com/revuiq/revuiq/internal/models"
)

const (
	baseConfidence    = 0.70
	maxTemplateConf   = 0.85
	retrievalConf     = 0.90
	confidencePerHint = 0.05
)

// Input carries everything the composer needs. Themes, when non-empty,
// switch composition into retrieval-augmented mode.
type Input struct {
	Text         string
	Sentiment    models.SentimentResult
	Aspects      []models.Aspect
	Themes       []string
	BusinessName string
}

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) Compose(in Input) models.ComposedResponse {
	textLower := strings.ToLower(in.Text)

	var text string
	switch in.Sentiment.Label {
	case models.SentimentPositive:
		text = c.composePositive(textLower, in)
	case models.SentimentNegative:
		text = c.composeNegative(textLower, in)
	default:
		text = c.composeNeutral(in)
	}

	return models.ComposedResponse{
		Text:       text,
		Tone:       toneFor(in.Sentiment.Label),
		Confidence: confidenceFor(in),
	}
}

func toneFor(label string) string {
	switch label {
	case models.SentimentNegative:
		return models.ToneApologetic
	case models.SentimentPositive:
		return models.ToneGrateful
	default:
		return models.ToneProfessional
	}
}

// confidenceFor keeps retrieval-informed responses distinguishable from
// template-only ones by a fixed delta.
func confidenceFor(in Input) float64 {
	if len(in.Themes) > 0 {
		return retrievalConf
	}
	conf := baseConfidence + confidencePerHint*float64(len(in.Aspects))
	if conf > maxTemplateConf {
		conf = maxTemplateConf
	}
	return conf
}

// ---------- positive ----------

var positiveThemeOpeners = map[string]string{
	"food":     "We're thrilled you enjoyed our food! Our chefs work hard to deliver quality dishes.",
	"service":  "Thank you for recognizing our team's efforts! We'll share your kind words with our staff.",
	"ambiance": "We're so glad you appreciated the atmosphere! We strive to create a welcoming environment.",
}

func (c *Composer) composePositive(textLower string, in Input) string {
	var parts []string

	if opener, ok := themeOpener(in.Themes, positiveThemeOpeners); ok {
		parts = append(parts, opener)
	} else {
		parts = append(parts, c.positiveOpener(textLower, in.Aspects))
	}

	if containsAny(textLower, lexicon.ReturnCues) {
		parts = append(parts, "We can't wait to see you again!")
	} else {
		parts = append(parts, "We hope to welcome you back soon!")
	}

	return strings.Join(parts, " ")
}

// positiveOpener keys on the first affirmatively-mentioned aspect in
// priority order food > service > ambiance.
func (c *Composer) positiveOpener(textLower string, aspects []models.Aspect) string {
	switch firstPositiveAspect(aspects, "food", "service", "ambiance") {
	case "food":
		if containsAny(textLower, []string{"coffee", "latte", "espresso", "drink"}) {
			return "We're thrilled you enjoyed our beverages!"
		}
		if containsAny(textLower, []string{"pastry", "danish", "croissant", "baked"}) {
			return "Our bakers will be delighted to hear you loved their creations!"
		}
		return "We're glad our food hit the spot!"
	case "service":
		return "We'll make sure to share your kind words with our team!"
	case "ambiance":
		return "We're happy you enjoyed the atmosphere!"
	default:
		return "Thank you for taking the time to share your experience!"
	}
}

func firstPositiveAspect(aspects []models.Aspect, priority ...string) string {
	for _, name := range priority {
		for _, a := range aspects {
			if a.Name == name && a.Sentiment == models.SentimentPositive {
				return name
			}
		}
	}
	return ""
}

// ---------- negative ----------

var negativeThemeOpeners = map[string]string{
	"food":        "We sincerely apologize for the disappointing food quality. This doesn't meet our standards, and we're addressing this with our kitchen team immediately.",
	"service":     "We're truly sorry about the poor service you experienced. This is unacceptable, and we're taking immediate steps to improve our team's performance.",
	"cleanliness": "We apologize for the cleanliness issues. This is a top priority for us, and we're addressing this immediately with our staff.",
	"wait_time":   "We're sorry for the long wait time. We're working on improving our efficiency to serve you better.",
}

const healthSafetyResponse = "We are deeply concerned about your health issue and sincerely apologize. " +
	"This is absolutely unacceptable, and we take food safety extremely seriously. " +
	"We will investigate this immediately and take all necessary steps to prevent this from happening again."

func (c *Composer) composeNegative(textLower string, in Input) string {
	// Health and safety complaints bypass every other branch.
	if containsAny(textLower, lexicon.HealthSafetyKeywords) {
		return healthSafetyResponse
	}

	var parts []string

	if opener, ok := themeOpener(in.Themes, negativeThemeOpeners); ok {
		parts = append(parts, opener)
	} else {
		parts = append(parts, negativeApology(textLower))
	}

	for _, a := range in.Aspects {
		parts = append(parts, remediationClause(textLower, a.Name))
	}

	parts = append(parts, "Please give us another chance to rectify our mistake and restore your trust.")

	return strings.Join(parts, " ")
}

func negativeApology(textLower string) string {
	if containsAny(textLower, []string{"terrible", "worst", "horrible", "awful", "disgusting"}) {
		return "We sincerely apologize for this unacceptable experience."
	}
	if containsAny(textLower, []string{"disappointed", "disappointing", "expected better"}) {
		return "We're truly sorry we didn't meet your expectations."
	}
	return "We apologize for the issues you experienced."
}

func remediationClause(textLower, aspectName string) string {
	switch aspectName {
	case "food":
		if containsAny(textLower, []string{"cold", "warm"}) {
			return "Food temperature is crucial, and we'll address this with our kitchen team."
		}
		if containsAny(textLower, []string{"quality", "taste"}) {
			return "We're committed to maintaining high food quality standards."
		}
		return "We'll review our food preparation processes."
	case "service":
		if containsAny(textLower, []string{"rude", "unprofessional"}) {
			return "This behavior is unacceptable, and we'll address it with our staff immediately."
		}
		if containsAny(textLower, []string{"slow", "wait", "long"}) {
			return "We understand your time is valuable and will work on improving our speed."
		}
		return "Our team will receive additional training to prevent this."
	case "price":
		return "We appreciate your feedback on pricing and value."
	default:
		return "We're reviewing your feedback with the team responsible."
	}
}

// ---------- neutral ----------

func (c *Composer) composeNeutral(in Input) string {
	phrases := keyPhrases(in.Text, 2)
	if len(phrases) > 0 {
		return fmt.Sprintf(
			"Thank you for sharing your thoughts about %s. We appreciate all feedback as it helps us improve our service!",
			strings.Join(phrases, ", "))
	}
	return "Thank you for taking the time to share your experience. Your feedback helps us continue to improve!"
}

// keyPhrases approximates noun-phrase extraction: adjacent non-stopword
// tokens longer than three characters, first max pairs.
func keyPhrases(text string, limit int) []string {
	tokens := strings.Fields(strings.ToLower(text))
	cleaned := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.Trim(tok, ".,!?;:\"'()")
		if len(tok) <= 3 || lexicon.Stopwords[tok] {
			continue
		}
		cleaned = append(cleaned, tok)
	}

	var phrases []string
	for i := 0; i+1 < len(cleaned) && len(phrases) < limit; i += 2 {
		phrases = append(phrases, cleaned[i]+" "+cleaned[i+1])
	}
	if len(phrases) == 0 && len(cleaned) > 0 {
		phrases = append(phrases, cleaned[0])
	}
	return phrases
}

// ---------- shared ----------

func themeOpener(themes []string, openers map[string]string) (string, bool) {
	if len(themes) == 0 {
		return "", false
	}
	opener, ok := openers[themes[0]]
	return opener, ok
}

func containsAny(textLower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(textLower, cue) {
			return true
		}
	}
	return false
}
