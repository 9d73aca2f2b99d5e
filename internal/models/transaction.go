package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to ingested transactions.
const DefaultCurrency = "TRY"

// Transaction represents one financial movement. The amount sign encodes
// direction: negative for money leaving the user, positive for money
// arriving. CategoryID holds the confirmed category while
// AISuggestedCategoryID preserves what the extractor proposed.
type Transaction struct {
	Base
	SourceID              string          `gorm:"type:uuid;not null" json:"source_id"`
	UserID                string          `gorm:"type:uuid;not null" json:"user_id"`
	PeriodID              string          `gorm:"type:uuid;not null" json:"period_id"`
	CategoryID            *int            `json:"category_id,omitempty"`
	AISuggestedCategoryID *int            `gorm:"column:ai_suggested_category_id" json:"ai_suggested_category_id,omitempty"`
	CategorizedByAI       bool            `gorm:"column:categorized_by_ai;not null;default:false" json:"categorized_by_ai"`
	TransactionDate       time.Time       `gorm:"not null" json:"transaction_date"`
	DescriptionOriginal   string          `gorm:"type:text;not null" json:"description_original"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency              string          `gorm:"size:3;not null;default:TRY" json:"currency"`
	Notes                 string          `gorm:"type:text" json:"notes"`

	Source              Source    `gorm:"foreignKey:SourceID" json:"source,omitempty"`
	Period              Period    `gorm:"foreignKey:PeriodID" json:"period,omitempty"`
	Category            *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	AISuggestedCategory *Category `gorm:"foreignKey:AISuggestedCategoryID" json:"ai_suggested_category,omitempty"`
}
