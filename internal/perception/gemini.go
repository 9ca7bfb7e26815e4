package perception

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
	"github.com/geoquest/GeoQuest_Go/internal/logger"
)

// contentGenerator is the slice of *genai.Models used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAdapter asks a Gemini model for a structured plant health assessment
type GeminiAdapter struct {
	models contentGenerator
	model  string
}

// NewGeminiAdapter creates a Gemini-backed perception adapter
func NewGeminiAdapter(ctx context.Context, apiKey, model string) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGeminiAdapter(client.Models, model), nil
}

func newGeminiAdapter(models contentGenerator, model string) *GeminiAdapter {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiAdapter{models: models, model: model}
}

// Assess sends the photo and prompt in a single user turn and decodes the
// JSON reply. Transport failures wrap domain.ErrUpstreamUnavailable, bad
// replies wrap domain.ErrUpstreamData.
func (g *GeminiAdapter) Assess(ctx context.Context, image []byte, mimeType, prompt string) (*domain.HealthAssessment, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: responseMIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gemini generate failed: %w", domain.ErrUpstreamUnavailable, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: gemini returned no candidates", domain.ErrUpstreamData)
	}

	assessment, err := DecodeAssessment(resp.Text())
	if err != nil {
		logger.FromContext(ctx).Warn(logMsgAssessmentRejected, "model", g.model, "error", err)
		return nil, err
	}
	return assessment, nil
}
