package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// VADERScorer is the default backend: lexicon valence with negation,
// intensifier, and punctuation/capitalization handling, squashed into
// [-1,1] by VADER's alpha normalization.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VADERScorer) Score(text string) (RawScore, error) {
	scores := v.analyzer.PolarityScores(ConvertMarkdownToText(text))
	return RawScore{
		Compound: scores.Compound,
		Pos:      scores.Positive,
		Neg:      scores.Negative,
		Neu:      scores.Neutral,
	}, nil
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText flattens markdown reviews to plain text so
// formatting characters do not register as punctuation emphasis. The
// rendered HTML tags are stripped as well; a token like "<p>great"
// would otherwise miss its lexicon entry.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := tagPattern.ReplaceAllString(string(output), " ")
	plainText := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plainText)
}
