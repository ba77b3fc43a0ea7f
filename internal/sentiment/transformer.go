package sentiment

import (
	"fmt"
	"os"
	"strings"

	"log/slog"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

// TransformerScorer runs an ONNX sentiment-classification model through
// hugot. It is the optional heavyweight backend; the engine defaults to
// VADER and callers opt in when the model assets are available.
type TransformerScorer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewTransformerScorer downloads the model on first use and builds an
// ONNX runtime session around it.
func NewTransformerScorer(modelName, modelDir string) (*TransformerScorer, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath, err := hugot.DownloadModel(modelName, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to download sentiment model: %w", err)
	}
	slog.Info("[TransformerScorer] Model ready", slog.String("path", modelPath))

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &TransformerScorer{session: session, pipeline: pipeline}, nil
}

func (t *TransformerScorer) Score(text string) (RawScore, error) {
	output, err := t.pipeline.RunPipeline([]string{ConvertMarkdownToText(text)})
	if err != nil {
		return RawScore{}, fmt.Errorf("classification failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return RawScore{}, fmt.Errorf("classifier returned no predictions")
	}

	best := output.ClassificationOutputs[0][0]
	for _, candidate := range output.ClassificationOutputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return rawFromPrediction(best.Label, float64(best.Score)), nil
}

func (t *TransformerScorer) Close() error {
	if t.session != nil {
		return t.session.Destroy()
	}
	return nil
}

// rawFromPrediction maps a classifier label and confidence onto the
// compound scale shared with the lexicon backend. Cardiff-style models
// emit LABEL_0/1/2; others emit lowercase names.
func rawFromPrediction(label string, score float64) RawScore {
	switch strings.ToLower(label) {
	case "positive", "label_2":
		return RawScore{Compound: score, Pos: score, Neu: 1 - score}
	case "negative", "label_0":
		return RawScore{Compound: -score, Neg: score, Neu: 1 - score}
	default:
		return RawScore{Neu: score}
	}
}
