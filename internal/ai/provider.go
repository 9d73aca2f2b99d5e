// Package ai bridges unstructured text-understanding providers and the
// strict internal extraction contract. All defensive parsing of provider
// output lives here.
package ai

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "finera/internal/errors"
)

// Provider identifies a configured text-understanding backend. The set is
// closed; anything else is rejected at the API boundary.
type Provider string

const (
	ProviderGemini   Provider = "gemini"
	ProviderOpenAI   Provider = "openai"
	ProviderDeepSeek Provider = "deepseek"
)

// ParseProvider validates a provider identifier supplied by a caller.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderGemini, ProviderOpenAI, ProviderDeepSeek:
		return Provider(s), nil
	}
	return "", apperrors.WithMessage(apperrors.ErrUnknownProvider, "unknown AI provider: "+s)
}

// Extractor turns normalized statement text into a period and transaction
// list, constrained to the given category vocabulary.
type Extractor interface {
	Extract(ctx context.Context, statementText string, categoryNames []string) (*ExtractedStatement, error)
}

// CategorySpending is one category's current spending total, as input to
// the savings advisor.
type CategorySpending struct {
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// Recommendation is one suggested spending reduction from the advisor.
type Recommendation struct {
	CategoryName       string          `json:"categoryName"`
	SuggestedReduction decimal.Decimal `json:"suggestedReduction"`
	Reason             string          `json:"reason"`
}

// Advisor produces structured savings recommendations from current
// spending and a savings goal.
type Advisor interface {
	Advise(ctx context.Context, goal decimal.Decimal, spending []CategorySpending) ([]Recommendation, error)
}

// Registry holds the provider adapters resolved at startup. Selecting a
// provider with no registered adapter is a configuration error, distinct
// from an extraction failure.
type Registry struct {
	extractors map[Provider]Extractor
	advisors   map[Provider]Advisor
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[Provider]Extractor),
		advisors:   make(map[Provider]Advisor),
	}
}

// RegisterExtractor wires an extractor adapter for a provider.
func (r *Registry) RegisterExtractor(p Provider, e Extractor) {
	r.extractors[p] = e
}

// RegisterAdvisor wires an advisor adapter for a provider.
func (r *Registry) RegisterAdvisor(p Provider, a Advisor) {
	r.advisors[p] = a
}

// Extractor returns the adapter for the given provider.
func (r *Registry) Extractor(p Provider) (Extractor, error) {
	e, ok := r.extractors[p]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrProviderNotConfigured,
			"no extractor configured for provider: "+string(p))
	}
	return e, nil
}

// Advisor returns the advisor adapter for the given provider.
func (r *Registry) Advisor(p Provider) (Advisor, error) {
	a, ok := r.advisors[p]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrProviderNotConfigured,
			"no savings advisor configured for provider: "+string(p))
	}
	return a, nil
}
