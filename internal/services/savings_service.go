package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"finera/internal/ai"
	"finera/internal/logger"
)

// savingsService turns advisor output into a response with a Turkish
// text summary alongside the structured recommendations.
type savingsService struct {
	providers *ai.Registry
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(providers *ai.Registry) SavingsServicer {
	return &savingsService{providers: providers}
}

// GetRecommendations asks the selected provider for spending reductions
// toward the savings goal.
func (s *savingsService) GetRecommendations(ctx context.Context, provider ai.Provider, goal decimal.Decimal, spending []ai.CategorySpending) (*SavingsResponse, error) {
	advisor, err := s.providers.Advisor(provider)
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("requesting savings recommendations",
		"provider", provider,
		"goal", goal.String(),
		"spending_categories", len(spending),
	)

	recommendations, err := advisor.Advise(ctx, goal, spending)
	if err != nil {
		return nil, err
	}

	return &SavingsResponse{
		Summary:         buildSavingsSummary(goal, recommendations),
		Recommendations: recommendations,
	}, nil
}

// buildSavingsSummary renders the recommendations as a short Turkish
// text for display.
func buildSavingsSummary(goal decimal.Decimal, recommendations []ai.Recommendation) string {
	if len(recommendations) == 0 {
		return "Hedefinize (" + goal.String() + " TL) ulaşmak için spesifik bir kesinti önerisi bulunamadı. Harcamalarınızı gözden geçirin."
	}

	var sb strings.Builder
	sb.WriteString(goal.String())
	sb.WriteString(" TL tasarruf hedefinize ulaşmak için öneriler:\n")

	totalReduction := decimal.Zero
	for _, rec := range recommendations {
		sb.WriteString("- ")
		sb.WriteString(rec.CategoryName)
		sb.WriteString(": ")
		sb.WriteString(rec.SuggestedReduction.String())
		sb.WriteString(" TL azaltın.")
		if strings.TrimSpace(rec.Reason) != "" {
			sb.WriteString(" (")
			sb.WriteString(rec.Reason)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
		totalReduction = totalReduction.Add(rec.SuggestedReduction)
	}
	sb.WriteString("Toplam önerilen kesinti: ")
	sb.WriteString(totalReduction.String())
	sb.WriteString(" TL.")

	return sb.String()
}
