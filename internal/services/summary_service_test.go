package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finera/internal/models"
	"finera/internal/testutil"
)

func createSummaryTransaction(t *testing.T, db *gorm.DB, userID string, period *models.Period, source *models.Source, categoryID *int, amount string) {
	t.Helper()

	tx := &models.Transaction{
		SourceID:            source.ID,
		UserID:              userID,
		PeriodID:            period.ID,
		CategoryID:          categoryID,
		TransactionDate:     period.StartDate.Add(12 * time.Hour),
		DescriptionOriginal: "summary fixture",
		Amount:              decimal.RequireFromString(amount),
		Currency:            models.DefaultCurrency,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
}

func TestSummaryService_GetPeriodExpenseSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewSummaryService(db, NewPeriodService(db))
	user := testutil.CreateTestUser(t, db)
	categories := testutil.SeedStatementCategories(t, db)

	period := testutil.CreateTestPeriod(t, db, user.ID, 2024, 1)
	statement := testutil.CreateTestSource(t, db, period.ID, user.ID, models.SourceTypeStatement, "Ekstre - ocak.pdf")
	manual := testutil.CreateTestSource(t, db, period.ID, user.ID, models.SourceTypeManual, "Manuel Girişler Ocak 2024")

	market := categories["Market"].ID
	transport := categories["Ulaşım"].ID
	salary := categories["Maaş"].ID

	createSummaryTransaction(t, db, user.ID, period, statement, &market, "-150.00")
	createSummaryTransaction(t, db, user.ID, period, statement, &market, "-50.00")
	createSummaryTransaction(t, db, user.ID, period, statement, &transport, "-30.00")
	createSummaryTransaction(t, db, user.ID, period, manual, &market, "-20.00")
	// Income and uncategorized rows.
	createSummaryTransaction(t, db, user.ID, period, statement, &salary, "50000.00")
	createSummaryTransaction(t, db, user.ID, period, manual, nil, "-5.00")

	summary, err := service.GetPeriodExpenseSummary(user.ID, 2024, 1)
	testutil.AssertNoError(t, err)

	t.Run("names_the_period_in_turkish", func(t *testing.T) {
		if summary.PeriodName != "2024 Ocak" {
			t.Errorf("unexpected period name: %q", summary.PeriodName)
		}
	})

	t.Run("income_is_excluded_and_totals_are_positive", func(t *testing.T) {
		want := decimal.RequireFromString("255.00")
		if !summary.GrandTotal.Equal(want) {
			t.Errorf("expected grand total %s, got %s", want, summary.GrandTotal)
		}
	})

	t.Run("groups_by_source_then_category", func(t *testing.T) {
		if len(summary.Sources) != 2 {
			t.Fatalf("expected 2 sources, got %d", len(summary.Sources))
		}

		var bySource = map[string]map[string]decimal.Decimal{}
		for _, src := range summary.Sources {
			bySource[src.SourceName] = map[string]decimal.Decimal{}
			for _, cat := range src.Categories {
				bySource[src.SourceName][cat.CategoryName] = cat.Total
			}
		}

		if got := bySource["Ekstre - ocak.pdf"]["Market"]; !got.Equal(decimal.RequireFromString("200.00")) {
			t.Errorf("expected statement Market total 200.00, got %s", got)
		}
		if got := bySource["Ekstre - ocak.pdf"]["Ulaşım"]; !got.Equal(decimal.RequireFromString("30.00")) {
			t.Errorf("expected statement Ulaşım total 30.00, got %s", got)
		}
		if got := bySource["Manuel Girişler Ocak 2024"]["Market"]; !got.Equal(decimal.RequireFromString("20.00")) {
			t.Errorf("expected manual Market total 20.00, got %s", got)
		}
	})

	t.Run("uncategorized_expenses_report_under_fallback_name", func(t *testing.T) {
		found := false
		for _, src := range summary.Sources {
			for _, cat := range src.Categories {
				if cat.CategoryName == models.FallbackCategoryNameTR && cat.Total.Equal(decimal.RequireFromString("5.00")) {
					found = true
				}
			}
		}
		if !found {
			t.Error("expected the uncategorized expense under the fallback category name")
		}
	})

	t.Run("category_totals_span_sources", func(t *testing.T) {
		var marketTotal decimal.Decimal
		for _, cat := range summary.CategoryTotals {
			if cat.CategoryName == "Market" {
				marketTotal = cat.Total
			}
		}
		if !marketTotal.Equal(decimal.RequireFromString("220.00")) {
			t.Errorf("expected cross-source Market total 220.00, got %s", marketTotal)
		}
	})

	t.Run("missing_period_is_not_found", func(t *testing.T) {
		_, err := service.GetPeriodExpenseSummary(user.ID, 2019, 1)
		testutil.AssertAppError(t, err, "PERIOD_NOT_FOUND")
	})
}
