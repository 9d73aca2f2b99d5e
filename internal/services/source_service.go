package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finera/internal/errors"
	"finera/internal/logger"
	"finera/internal/models"
)

const (
	// manualSourcePrefix heads the derived name of manual-entry buckets,
	// so all manual entries in one month collapse into one source.
	manualSourcePrefix = "Manuel Girişler"

	// defaultStatementPrefix heads statement source names when the caller
	// supplies no prefix of their own.
	defaultStatementPrefix = "Ekstre"
)

// turkishMonths holds standalone Turkish month names for derived source
// names and period display names.
var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// MonthNameTR returns the Turkish name of a month.
func MonthNameTR(month time.Month) string {
	return turkishMonths[month-1]
}

// sourceService resolves ingestion sources within a period.
type sourceService struct {
	db *gorm.DB
}

// NewSourceService creates a new SourceServicer.
func NewSourceService(db *gorm.DB) SourceServicer {
	return &sourceService{db: db}
}

// ResolveStatementSource finds or creates the source for an uploaded
// statement. The name derives from the caller prefix (or "Ekstre") plus
// the original filename; distinct filenames give distinct sources while
// re-uploads of the same name append to the existing one.
func (s *sourceService) ResolveStatementSource(tx *gorm.DB, period *models.Period, userID, sourceNamePrefix, filename string) (*models.Source, error) {
	prefix := defaultStatementPrefix
	if sourceNamePrefix != "" {
		prefix = sourceNamePrefix
	}
	name := prefix + " - " + filename

	uploadedAt := time.Now().UTC()
	return s.resolve(tx, period, userID, models.SourceTypeStatement, name, &uploadedAt)
}

// ResolveManualSource finds or creates the single manual-entry bucket of
// a period, named "Manuel Girişler <month> <year>".
func (s *sourceService) ResolveManualSource(tx *gorm.DB, period *models.Period, userID string) (*models.Source, error) {
	name := fmt.Sprintf("%s %s %d", manualSourcePrefix, MonthNameTR(time.Month(period.PeriodMonth)), period.PeriodYear)
	return s.resolve(tx, period, userID, models.SourceTypeManual, name, nil)
}

// resolve looks up by (period, user, name, type) then inserts with
// conflict-do-nothing on the (period, name, type) unique index, re-reading
// when a concurrent request created the row first.
func (s *sourceService) resolve(tx *gorm.DB, period *models.Period, userID string, sourceType models.SourceType, name string, uploadedAt *time.Time) (*models.Source, error) {
	found, err := findSource(tx, period.ID, userID, sourceType, name)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("source not found, creating",
		"period_id", period.ID,
		"source_name", name,
		"source_type", sourceType,
	)

	source := &models.Source{
		PeriodID:        period.ID,
		UserID:          userID,
		SourceType:      sourceType,
		SourceName:      name,
		UploadTimestamp: uploadedAt,
	}

	result := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "period_id"},
			{Name: "source_name"},
			{Name: "source_type"},
		},
		DoNothing: true,
	}).Create(source)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	if result.RowsAffected == 0 {
		found, err = findSource(tx, period.ID, userID, sourceType, name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return found, nil
	}

	return source, nil
}

func findSource(tx *gorm.DB, periodID, userID string, sourceType models.SourceType, name string) (*models.Source, error) {
	var source models.Source
	err := tx.Where("period_id = ? AND user_id = ? AND source_name = ? AND source_type = ?",
		periodID, userID, name, sourceType).
		First(&source).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}
