package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finera/internal/errors"
	"finera/internal/logger"
	"finera/internal/models"
	"finera/internal/pagination"
)

// transactionService handles manual transaction entry and reads.
type transactionService struct {
	db         *gorm.DB
	categories CategoryServicer
	periods    PeriodServicer
	sources    SourceServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categories CategoryServicer, periods PeriodServicer, sources SourceServicer) TransactionServicer {
	return &transactionService{
		db:         db,
		categories: categories,
		periods:    periods,
		sources:    sources,
	}
}

// AddManualTransaction records one user-entered movement. The caller
// supplies a positive magnitude only; direction comes from the category
// type, so expense categories negate the amount and income categories
// keep it positive. Unlike the extraction path, the user's sign is never
// trusted here.
func (s *transactionService) AddManualTransaction(userID string, year, month, categoryID int, description string, amount decimal.Decimal) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive magnitude")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	category, err := s.categories.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	signedAmount := amount
	if category.CategoryType == models.CategoryTypeExpense {
		signedAmount = amount.Neg()
	}

	var transaction *models.Transaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		period, err := s.periods.Resolve(tx, userID, year, month)
		if err != nil {
			return err
		}

		source, err := s.sources.ResolveManualSource(tx, period, userID)
		if err != nil {
			return err
		}

		transaction = &models.Transaction{
			SourceID:            source.ID,
			UserID:              userID,
			PeriodID:            period.ID,
			CategoryID:          &category.ID,
			TransactionDate:     time.Now().UTC(),
			DescriptionOriginal: description,
			Amount:              signedAmount,
			Currency:            models.DefaultCurrency,
			CategorizedByAI:     false,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("manual transaction recorded",
		"user_id", userID,
		"category_id", category.ID,
		"amount", signedAmount.String(),
	)
	return transaction, nil
}

// GetPeriodTransactions returns a page of the user's transactions for one
// period, newest first.
func (s *transactionService) GetPeriodTransactions(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	period, err := s.periods.GetUserPeriod(userID, year, month)
	if err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND period_id = ?", userID, period.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	err = query.
		Preload("Category").
		Order("transaction_date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	response := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &response, nil
}

// GetTransactionByID retrieves one transaction owned by the user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Preload("Category").
		First(&transaction, "id = ? AND user_id = ?", transactionID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}
