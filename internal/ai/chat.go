package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	apperrors "finera/internal/errors"
	"finera/internal/logger"
)

const (
	openAIBaseURL   = "https://api.openai.com/v1"
	deepSeekBaseURL = "https://api.deepseek.com/v1"

	chatTemperature = 0.2
)

// ChatClient adapts OpenAI-compatible chat-completion APIs (OpenAI,
// DeepSeek) to the Extractor and Advisor capabilities. No timeout is set
// on the underlying client; callers bound requests through ctx.
type ChatClient struct {
	baseURL    string
	apiKey     string
	model      string
	name       string
	httpClient *http.Client
}

// NewOpenAIClient creates a chat adapter for the OpenAI API.
func NewOpenAIClient(apiKey, model string) *ChatClient {
	return &ChatClient{
		baseURL:    openAIBaseURL,
		apiKey:     apiKey,
		model:      model,
		name:       string(ProviderOpenAI),
		httpClient: &http.Client{},
	}
}

// NewDeepSeekClient creates a chat adapter for the DeepSeek API, which
// speaks the same chat-completions wire format.
func NewDeepSeekClient(apiKey, model string) *ChatClient {
	return &ChatClient{
		baseURL:    deepSeekBaseURL,
		apiKey:     apiKey,
		model:      model,
		name:       string(ProviderDeepSeek),
		httpClient: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Extract implements Extractor.
func (c *ChatClient) Extract(ctx context.Context, statementText string, categoryNames []string) (*ExtractedStatement, error) {
	raw, err := c.complete(ctx, buildExtractionPrompt(statementText, categoryNames))
	if err != nil {
		return nil, err
	}
	extracted, err := ParseExtraction(raw)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("chat extraction complete",
		"provider", c.name,
		"transactions", len(extracted.Transactions),
		"period_year", int(extracted.PeriodYear),
		"period_month", int(extracted.PeriodMonth),
	)
	return extracted, nil
}

// Advise implements Advisor.
func (c *ChatClient) Advise(ctx context.Context, goal decimal.Decimal, spending []CategorySpending) ([]Recommendation, error) {
	raw, err := c.complete(ctx, buildAdvicePrompt(goal, spending))
	if err != nil {
		return nil, err
	}
	return ParseRecommendations(raw)
}

func (c *ChatClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAIRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Get().Warnw("chat completion failed",
			"provider", c.name,
			"status", resp.StatusCode,
			"body", string(respBody),
		)
		return "", apperrors.Wrap(apperrors.ErrAIRequestFailed,
			fmt.Errorf("%s returned status %d", c.name, resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.Wrap(apperrors.ErrAIResponseInvalid, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", apperrors.WithMessage(apperrors.ErrAIResponseInvalid, c.name+" returned an empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
