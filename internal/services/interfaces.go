package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finera/internal/ai"
	"finera/internal/models"
	"finera/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateEmail(userID, newEmail string) (*models.User, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
}

// CategoryServicer exposes the read-only category taxonomy.
type CategoryServicer interface {
	ListCategories() ([]models.Category, error)
	ListCategoriesByType(categoryType models.CategoryType) ([]models.Category, error)
	GetCategoryByID(id int) (*models.Category, error)
	CategoryNamesTR() ([]string, error)
	Matcher() (*CategoryMatcher, error)
}

// PeriodServicer resolves bookkeeping periods.
type PeriodServicer interface {
	Resolve(tx *gorm.DB, userID string, year, month int) (*models.Period, error)
	GetUserPeriod(userID string, year, month int) (*models.Period, error)
}

// SourceServicer resolves ingestion sources within a period.
type SourceServicer interface {
	ResolveStatementSource(tx *gorm.DB, period *models.Period, userID, sourceNamePrefix, filename string) (*models.Source, error)
	ResolveManualSource(tx *gorm.DB, period *models.Period, userID string) (*models.Source, error)
}

// StatementResult summarizes one processed statement upload.
type StatementResult struct {
	Message          string `json:"message"`
	SourceName       string `json:"source_name"`
	TransactionCount int    `json:"transaction_count"`
}

// StatementServicer runs the statement-ingestion pipeline.
type StatementServicer interface {
	ProcessStatement(ctx context.Context, userID, filename string, document []byte, sourceNamePrefix string, provider ai.Provider) (*StatementResult, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	AddManualTransaction(userID string, year, month int, categoryID int, description string, amount decimal.Decimal) (*models.Transaction, error)
	GetPeriodTransactions(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
}

// CategorySummary is one category's expense total, reported positive.
type CategorySummary struct {
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}

// SourceSummary groups category totals under one ingestion source.
type SourceSummary struct {
	SourceName string            `json:"source_name"`
	Categories []CategorySummary `json:"categories"`
}

// PeriodSummaryResponse is the expense breakdown for one period.
type PeriodSummaryResponse struct {
	Year           int               `json:"year"`
	Month          int               `json:"month"`
	PeriodName     string            `json:"period_name"`
	Sources        []SourceSummary   `json:"sources"`
	CategoryTotals []CategorySummary `json:"category_totals"`
	GrandTotal     decimal.Decimal   `json:"grand_total"`
}

// SummaryServicer aggregates transactions into period reports.
type SummaryServicer interface {
	GetPeriodExpenseSummary(userID string, year, month int) (*PeriodSummaryResponse, error)
}

// SavingsResponse carries structured recommendations plus a text summary.
type SavingsResponse struct {
	Summary         string              `json:"summary"`
	Recommendations []ai.Recommendation `json:"recommendations"`
}

// SavingsServicer produces AI-backed savings recommendations.
type SavingsServicer interface {
	GetRecommendations(ctx context.Context, provider ai.Provider, goal decimal.Decimal, spending []ai.CategorySpending) (*SavingsResponse, error)
}
