package ai

import (
	"testing"

	"github.com/shopspring/decimal"

	"finera/internal/testutil"
)

func TestStripCodeFence(t *testing.T) {
	t.Run("json_fence", func(t *testing.T) {
		raw := "```json\n{\"periodYear\": 2024}\n```"
		if got := StripCodeFence(raw); got != `{"periodYear": 2024}` {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("bare_fence", func(t *testing.T) {
		raw := "```\n{\"a\": 1}\n```"
		if got := StripCodeFence(raw); got != `{"a": 1}` {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("trailing_prose_outside_fence_is_discarded", func(t *testing.T) {
		raw := "```json\n{\"periodYear\": 2024, \"periodMonth\": 1, \"transactions\": []}\n```\nBu analiz tahminidir, kontrol ediniz."
		got := StripCodeFence(raw)
		if got != `{"periodYear": 2024, "periodMonth": 1, "transactions": []}` {
			t.Errorf("prose outside the fence should be discarded, got %q", got)
		}
	})

	t.Run("no_fence_left_untouched", func(t *testing.T) {
		raw := "  {\"a\": 1}  "
		if got := StripCodeFence(raw); got != `{"a": 1}` {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("prose_inside_unfenced_response_is_kept", func(t *testing.T) {
		// Without a leading fence there is no boundary to cut at; the
		// malformed response must fail later, at parse time.
		raw := `{"a": 1} trailing words`
		if got := StripCodeFence(raw); got != `{"a": 1} trailing words` {
			t.Errorf("unexpected result %q", got)
		}
	})
}

func TestParseExtraction(t *testing.T) {
	t.Run("fenced_response", func(t *testing.T) {
		raw := "```json\n" +
			`{"periodYear": "2024", "periodMonth": "1", "transactions": [` +
			`{"date": "2024-01-05", "description": "Market", "amount": -150.00, "categoryName": "Market"}]}` +
			"\n```"
		extracted, err := ParseExtraction(raw)
		testutil.AssertNoError(t, err)

		if int(extracted.PeriodYear) != 2024 || int(extracted.PeriodMonth) != 1 {
			t.Errorf("expected period 2024-1, got %d-%d", extracted.PeriodYear, extracted.PeriodMonth)
		}
		if len(extracted.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(extracted.Transactions))
		}
		row := extracted.Transactions[0]
		if row.Amount == nil || !row.Amount.Equal(decimal.RequireFromString("-150.00")) {
			t.Errorf("unexpected amount %v", row.Amount)
		}
		if row.CategoryName != "Market" {
			t.Errorf("unexpected category %q", row.CategoryName)
		}
	})

	t.Run("numeric_period_fields", func(t *testing.T) {
		extracted, err := ParseExtraction(`{"periodYear": 2023, "periodMonth": 12, "transactions": []}`)
		testutil.AssertNoError(t, err)
		if int(extracted.PeriodYear) != 2023 || int(extracted.PeriodMonth) != 12 {
			t.Errorf("unexpected period %d-%d", extracted.PeriodYear, extracted.PeriodMonth)
		}
	})

	t.Run("missing_transactions_list", func(t *testing.T) {
		_, err := ParseExtraction(`{"periodYear": 2024, "periodMonth": 1}`)
		testutil.AssertAppError(t, err, "AI_RESPONSE_INVALID")
	})

	t.Run("malformed_json", func(t *testing.T) {
		_, err := ParseExtraction("not json at all")
		testutil.AssertAppError(t, err, "AI_RESPONSE_INVALID")
	})

	t.Run("empty_response", func(t *testing.T) {
		_, err := ParseExtraction("```json\n```")
		testutil.AssertAppError(t, err, "AI_RESPONSE_INVALID")
	})

	t.Run("missing_row_fields_survive_parsing", func(t *testing.T) {
		extracted, err := ParseExtraction(`{"periodYear": 2024, "periodMonth": 2, "transactions": [{"description": "ATM"}]}`)
		testutil.AssertNoError(t, err)
		row := extracted.Transactions[0]
		if row.Date != nil || row.Amount != nil {
			t.Errorf("expected nil date and amount, got %v / %v", row.Date, row.Amount)
		}
	})
}

func TestParseRecommendations(t *testing.T) {
	raw := "```json\n" +
		`[{"categoryName": "Yeme İçme", "suggestedReduction": 250.00, "reason": "Dışarıda yemek sıklığı yüksek"}]` +
		"\n```"
	recs, err := ParseRecommendations(raw)
	testutil.AssertNoError(t, err)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].CategoryName != "Yeme İçme" {
		t.Errorf("unexpected category %q", recs[0].CategoryName)
	}
	if !recs[0].SuggestedReduction.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("unexpected reduction %s", recs[0].SuggestedReduction)
	}
}
