package models

// User represents the user model in the database. Users own their
// bookkeeping periods, ingestion sources, and transactions.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Periods      []Period      `gorm:"foreignKey:UserID" json:"periods,omitempty"`
	Sources      []Source      `gorm:"foreignKey:UserID" json:"sources,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
