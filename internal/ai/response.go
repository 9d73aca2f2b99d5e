package ai

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "finera/internal/errors"
)

// FlexInt decodes a JSON number that providers sometimes emit as a quoted
// string ("2024" instead of 2024).
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// ExtractedTransaction is one row of the provider's extraction output.
// Pointer fields distinguish "missing" from zero values so malformed rows
// can be skipped individually.
type ExtractedTransaction struct {
	Date         *string          `json:"date"`
	Description  *string          `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	CategoryName string           `json:"categoryName"`
}

// ExtractedStatement is the strict contract the extraction providers must
// fulfil: a financial period plus a list of transactions.
type ExtractedStatement struct {
	PeriodYear   FlexInt                `json:"periodYear"`
	PeriodMonth  FlexInt                `json:"periodMonth"`
	Transactions []ExtractedTransaction `json:"transactions"`
}

// StripCodeFence removes Markdown code-fence wrapping from a provider
// response. If the response starts with a fence, the opening fence line is
// dropped and everything from the last closing fence onward is discarded,
// including any trailing prose outside the fence. Responses without a
// leading fence are returned trimmed but otherwise untouched.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	} else {
		// A fence with no newline carries no payload.
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s, "```json"), "```"))
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// ParseExtraction parses a raw provider reply into the extraction
// contract. Malformed JSON or a missing transactions list is an
// extraction failure, fatal to the current ingestion.
func ParseExtraction(raw string) (*ExtractedStatement, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, apperrors.WithMessage(apperrors.ErrAIResponseInvalid, "provider returned an empty response")
	}

	var extracted ExtractedStatement
	if err := json.Unmarshal([]byte(cleaned), &extracted); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIResponseInvalid, err)
	}
	if extracted.Transactions == nil {
		return nil, apperrors.WithMessage(apperrors.ErrAIResponseInvalid, "provider response is missing the transactions list")
	}
	return &extracted, nil
}

// ParseRecommendations parses a raw advisor reply into a recommendation
// list, applying the same fence-stripping rules as extraction.
func ParseRecommendations(raw string) ([]Recommendation, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, apperrors.WithMessage(apperrors.ErrAIResponseInvalid, "provider returned an empty response")
	}

	var recommendations []Recommendation
	if err := json.Unmarshal([]byte(cleaned), &recommendations); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIResponseInvalid, err)
	}
	return recommendations, nil
}
