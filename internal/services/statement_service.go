package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"finera/internal/ai"
	"finera/internal/document"
	apperrors "finera/internal/errors"
	"finera/internal/logger"
	"finera/internal/models"
)

// extractedDateLayout is the date format the extraction prompt demands.
const extractedDateLayout = "2006-01-02"

// statementService orchestrates the statement-ingestion pipeline: text
// cleanup, structured extraction, period/source resolution, and
// transaction materialization.
type statementService struct {
	db         *gorm.DB
	extractor  document.TextExtractor
	providers  *ai.Registry
	categories CategoryServicer
	periods    PeriodServicer
	sources    SourceServicer
}

// NewStatementService creates a new StatementServicer.
func NewStatementService(db *gorm.DB, extractor document.TextExtractor, providers *ai.Registry, categories CategoryServicer, periods PeriodServicer, sources SourceServicer) StatementServicer {
	return &statementService{
		db:         db,
		extractor:  extractor,
		providers:  providers,
		categories: categories,
		periods:    periods,
		sources:    sources,
	}
}

// ProcessStatement runs one statement upload end to end. The provider
// call happens outside the database transaction; once it returns, its
// result is committed input and all persistence is a single unit of work.
func (s *statementService) ProcessStatement(ctx context.Context, userID, filename string, doc []byte, sourceNamePrefix string, provider ai.Provider) (*StatementResult, error) {
	log := logger.Get()
	log.Infow("starting statement processing", "user_id", userID, "filename", filename, "provider", provider)

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	rawText, err := s.extractor.ExtractText(ctx, filename, doc)
	if err != nil {
		log.Errorw("failed to extract text from document", "user_id", userID, "filename", filename, "error", err)
		return nil, err
	}

	statementText := document.Normalize(rawText)
	if statementText == "" {
		return nil, apperrors.ErrEmptyDocument
	}

	categoryNames, err := s.categories.CategoryNamesTR()
	if err != nil {
		return nil, err
	}

	extractor, err := s.providers.Extractor(provider)
	if err != nil {
		return nil, err
	}

	extracted, err := extractor.Extract(ctx, statementText, categoryNames)
	if err != nil {
		return nil, err
	}

	year, month := int(extracted.PeriodYear), int(extracted.PeriodMonth)
	if year < 1900 || month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrAIResponseInvalid,
			fmt.Sprintf("extracted period %d-%d is not a valid year and month", year, month))
	}

	matcher, err := s.categories.Matcher()
	if err != nil {
		return nil, err
	}

	var sourceName string
	var savedCount int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		period, err := s.periods.Resolve(tx, userID, year, month)
		if err != nil {
			return err
		}

		source, err := s.sources.ResolveStatementSource(tx, period, userID, sourceNamePrefix, filename)
		if err != nil {
			return err
		}
		sourceName = source.SourceName

		savedCount, err = materializeRows(tx, extracted.Transactions, matcher, source, period, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Infow("statement processed",
		"user_id", userID,
		"period_year", year,
		"period_month", month,
		"source_name", sourceName,
		"saved_count", savedCount,
	)

	return &StatementResult{
		Message:          "File processed successfully using " + string(provider),
		SourceName:       sourceName,
		TransactionCount: savedCount,
	}, nil
}

// materializeRows builds transactions from extracted rows and persists
// them in one bulk create. Rows missing a date, description, or amount
// are skipped individually rather than failing the batch. The row's own
// signed amount is trusted: the extractor encodes direction.
func materializeRows(tx *gorm.DB, rows []ai.ExtractedTransaction, matcher *CategoryMatcher, source *models.Source, period *models.Period, userID string) (int, error) {
	log := logger.Get()

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.Date == nil || row.Description == nil || row.Amount == nil {
			log.Warnw("skipping extracted row with missing data",
				"source_name", source.SourceName,
				"has_date", row.Date != nil,
				"has_description", row.Description != nil,
				"has_amount", row.Amount != nil,
			)
			continue
		}

		transactionDate, err := time.ParseInLocation(extractedDateLayout, *row.Date, time.UTC)
		if err != nil {
			log.Warnw("skipping extracted row with unparseable date",
				"source_name", source.SourceName,
				"date", *row.Date,
			)
			continue
		}

		var categoryID *int
		matched := matcher.Match(row.CategoryName)
		if matched != nil {
			id := matched.ID
			categoryID = &id
		} else if row.CategoryName != "" {
			// Unmatched names stay uncategorized, no default assignment.
			log.Warnw("suggested category not in taxonomy, leaving uncategorized",
				"category_name", row.CategoryName,
				"description", *row.Description,
			)
		}

		transactions = append(transactions, models.Transaction{
			SourceID:            source.ID,
			UserID:              userID,
			PeriodID:            period.ID,
			CategoryID:          categoryID,
			TransactionDate:     transactionDate,
			DescriptionOriginal: *row.Description,
			Amount:              *row.Amount,
			Currency:            models.DefaultCurrency,
			CategorizedByAI:     matched != nil,
		})
	}

	if len(transactions) == 0 {
		return 0, nil
	}
	if err := tx.Create(&transactions).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(transactions), nil
}
