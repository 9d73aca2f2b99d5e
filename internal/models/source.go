package models

import "time"

// SourceType represents the kind of ingestion batch a source holds.
type SourceType string

const (
	SourceTypeStatement SourceType = "statement"
	SourceTypeManual    SourceType = "manual"
)

// Source represents one ingestion batch (an uploaded statement or a
// manual-entry bucket) within a period. Two uploads resolving to the same
// derived name and type attach to the same source row; the composite
// unique index backs that append semantic.
type Source struct {
	Base
	PeriodID        string     `gorm:"type:uuid;not null;uniqueIndex:idx_sources_period_name_type" json:"period_id"`
	UserID          string     `gorm:"type:uuid;not null" json:"user_id"`
	SourceType      SourceType `gorm:"not null;uniqueIndex:idx_sources_period_name_type" json:"source_type"`
	SourceName      string     `gorm:"size:150;not null;uniqueIndex:idx_sources_period_name_type" json:"source_name"`
	InstitutionName *string    `gorm:"size:100" json:"institution_name,omitempty"`
	UploadTimestamp *time.Time `json:"upload_timestamp,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:SourceID" json:"transactions,omitempty"`
}
