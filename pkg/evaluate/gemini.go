// Package evaluate sends rendered question batches to Gemini and returns the
// model's answers. Evaluation is a convenience around the manual third-party
// step; the pipeline itself never depends on it.
package evaluate

import (
	"context"
	"os"

	"google.golang.org/genai"

	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/logging"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// instruction primes the model to answer the batch in place.
const instruction = "For each <entity> below, answer the <question> with Yes or No " +
	"inside the <answer> tag and return the completed entities.\n\n"

// Evaluator submits prompt batches to Gemini.
type Evaluator struct {
	client *genai.Client
	model  string
}

// New creates an Evaluator. The API key is read from GEMINI_API_KEY (or
// GOOGLE_API_KEY) when not passed explicitly.
func New(ctx context.Context, apiKey, model string) (*Evaluator, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, errors.WrapAPI("gemini", 0, err)
	}

	return &Evaluator{client: client, model: model}, nil
}

// Batch sends one rendered prompt batch and returns the model's reply text.
func (e *Evaluator) Batch(ctx context.Context, batch string) (string, error) {
	logger := logging.FromContext(ctx)
	logger.Info().
		Str("model", e.model).
		Int("batch_bytes", len(batch)).
		Msg("Submitting prompt batch for evaluation")

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(instruction+batch), nil)
	if err != nil {
		return "", errors.WrapAPI("gemini", 0, err)
	}
	return resp.Text(), nil
}
