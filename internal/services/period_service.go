package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finera/internal/errors"
	"finera/internal/logger"
	"finera/internal/models"
)

// periodService resolves (user, year, month) bookkeeping periods.
type periodService struct {
	db *gorm.DB
}

// NewPeriodService creates a new PeriodServicer.
func NewPeriodService(db *gorm.DB) PeriodServicer {
	return &periodService{db: db}
}

// Resolve finds or creates the period for (user, year, month) using the
// supplied transaction handle. Creation is an insert with conflict-do-
// nothing against the composite unique index, so two concurrent resolvers
// for the same key converge on a single row: the loser re-reads and uses
// the winner's period. Month range is validated upstream.
func (s *periodService) Resolve(tx *gorm.DB, userID string, year, month int) (*models.Period, error) {
	found, err := findPeriod(tx, userID, year, month)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("period not found, creating",
		"user_id", userID,
		"year", year,
		"month", month,
	)

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	period := &models.Period{
		UserID:      userID,
		PeriodYear:  year,
		PeriodMonth: month,
		StartDate:   startDate,
		EndDate:     startDate.AddDate(0, 1, -1),
	}

	result := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "period_year"},
			{Name: "period_month"},
		},
		DoNothing: true,
	}).Create(period)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	if result.RowsAffected == 0 {
		// Lost the race; the period now exists.
		found, err = findPeriod(tx, userID, year, month)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return found, nil
	}

	return period, nil
}

// GetUserPeriod retrieves an existing period without creating one.
func (s *periodService) GetUserPeriod(userID string, year, month int) (*models.Period, error) {
	period, err := findPeriod(s.db, userID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return period, nil
}

func findPeriod(tx *gorm.DB, userID string, year, month int) (*models.Period, error) {
	var period models.Period
	err := tx.Where("user_id = ? AND period_year = ? AND period_month = ?", userID, year, month).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}
