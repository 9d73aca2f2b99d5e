package models

import "time"

// Period represents one calendar month of bookkeeping for a user.
// At most one period exists per (user, year, month); the composite unique
// index backs the find-or-create upsert in the period resolver.
type Period struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_periods_user_year_month" json:"user_id"`
	PeriodYear  int       `gorm:"not null;uniqueIndex:idx_periods_user_year_month" json:"period_year"`
	PeriodMonth int       `gorm:"not null;uniqueIndex:idx_periods_user_year_month" json:"period_month"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`

	Sources      []Source      `gorm:"foreignKey:PeriodID" json:"sources,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:PeriodID" json:"transactions,omitempty"`
}
