package ai

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	apperrors "finera/internal/errors"
	"finera/internal/logger"
)

// GeminiClient adapts Google's Gemini models to the Extractor and Advisor
// capabilities via the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini adapter using an API key.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrProviderNotConfigured, err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Extract implements Extractor.
func (g *GeminiClient) Extract(ctx context.Context, statementText string, categoryNames []string) (*ExtractedStatement, error) {
	raw, err := g.generate(ctx, buildExtractionPrompt(statementText, categoryNames))
	if err != nil {
		return nil, err
	}
	extracted, err := ParseExtraction(raw)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("gemini extraction complete",
		"transactions", len(extracted.Transactions),
		"period_year", int(extracted.PeriodYear),
		"period_month", int(extracted.PeriodMonth),
	)
	return extracted, nil
}

// Advise implements Advisor.
func (g *GeminiClient) Advise(ctx context.Context, goal decimal.Decimal, spending []CategorySpending) ([]Recommendation, error) {
	raw, err := g.generate(ctx, buildAdvicePrompt(goal, spending))
	if err != nil {
		return nil, err
	}
	return ParseRecommendations(raw)
}

func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAIRequestFailed, err)
	}
	raw := resp.Text()
	if raw == "" {
		return "", apperrors.WithMessage(apperrors.ErrAIResponseInvalid, "gemini returned an empty response")
	}
	return raw, nil
}
