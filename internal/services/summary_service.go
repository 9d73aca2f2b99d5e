package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finera/internal/errors"
	"finera/internal/models"
)

// summaryService aggregates transactions into period expense reports.
type summaryService struct {
	db      *gorm.DB
	periods PeriodServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB, periods PeriodServicer) SummaryServicer {
	return &summaryService{db: db, periods: periods}
}

// expenseRow is one (source, category) expense total from the grouped
// query. Uncategorized transactions report under the fallback name.
type expenseRow struct {
	SourceName   string          `gorm:"column:source_name"`
	CategoryName string          `gorm:"column:category_name"`
	Total        decimal.Decimal `gorm:"column:total"`
}

// GetPeriodExpenseSummary breaks down a period's expenses by source and
// category. Only negative amounts count; totals are reported positive.
func (s *summaryService) GetPeriodExpenseSummary(userID string, year, month int) (*PeriodSummaryResponse, error) {
	period, err := s.periods.GetUserPeriod(userID, year, month)
	if err != nil {
		return nil, err
	}

	var rows []expenseRow
	err = s.db.Model(&models.Transaction{}).
		Select("sources.source_name AS source_name, COALESCE(categories.category_name_tr, ?) AS category_name, SUM(-transactions.amount) AS total", models.FallbackCategoryNameTR).
		Joins("JOIN sources ON sources.id = transactions.source_id").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.period_id = ? AND transactions.amount < 0", userID, period.ID).
		Group("sources.source_name, categories.category_name_tr").
		Order("sources.source_name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	bySource := make(map[string][]CategorySummary)
	sourceOrder := make([]string, 0)
	categoryTotals := make(map[string]decimal.Decimal)
	grandTotal := decimal.Zero

	for _, row := range rows {
		if _, seen := bySource[row.SourceName]; !seen {
			sourceOrder = append(sourceOrder, row.SourceName)
		}
		bySource[row.SourceName] = append(bySource[row.SourceName], CategorySummary{
			CategoryName: row.CategoryName,
			Total:        row.Total,
		})
		categoryTotals[row.CategoryName] = categoryTotals[row.CategoryName].Add(row.Total)
		grandTotal = grandTotal.Add(row.Total)
	}

	sources := make([]SourceSummary, 0, len(sourceOrder))
	for _, name := range sourceOrder {
		categories := bySource[name]
		sort.Slice(categories, func(i, j int) bool {
			return categories[i].CategoryName < categories[j].CategoryName
		})
		sources = append(sources, SourceSummary{SourceName: name, Categories: categories})
	}

	totals := make([]CategorySummary, 0, len(categoryTotals))
	for name, total := range categoryTotals {
		totals = append(totals, CategorySummary{CategoryName: name, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].CategoryName < totals[j].CategoryName
	})

	return &PeriodSummaryResponse{
		Year:           year,
		Month:          month,
		PeriodName:     fmt.Sprintf("%d %s", year, MonthNameTR(time.Month(month))),
		Sources:        sources,
		CategoryTotals: totals,
		GrandTotal:     grandTotal,
	}, nil
}
