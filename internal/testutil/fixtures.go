package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finera/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		FullName: "Test User",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a taxonomy entry with the given Turkish name and type.
func CreateTestCategory(t *testing.T, db *gorm.DB, nameTR string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	n := nextID()
	category := &models.Category{
		ID:             int(n),
		CategoryNameTR: nameTR,
		CategoryNameEN: fmt.Sprintf("%s (en %d)", nameTR, n),
		CategoryType:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// SeedStatementCategories creates the taxonomy entries the ingestion
// tests rely on and returns them keyed by Turkish name.
func SeedStatementCategories(t *testing.T, db *gorm.DB) map[string]*models.Category {
	t.Helper()

	seeded := map[string]*models.Category{}
	for name, categoryType := range map[string]models.CategoryType{
		"Market":                      models.CategoryTypeExpense,
		"Yeme İçme":                   models.CategoryTypeExpense,
		"Ulaşım":                      models.CategoryTypeExpense,
		"Maaş":                        models.CategoryTypeIncome,
		models.FallbackCategoryNameTR: models.CategoryTypeExpense,
	} {
		seeded[name] = CreateTestCategory(t, db, name, categoryType)
	}
	return seeded
}

// CreateTestPeriod creates a period with calendar month bounds.
func CreateTestPeriod(t *testing.T, db *gorm.DB, userID string, year, month int) *models.Period {
	t.Helper()

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	period := &models.Period{
		UserID:      userID,
		PeriodYear:  year,
		PeriodMonth: month,
		StartDate:   start,
		EndDate:     start.AddDate(0, 1, -1),
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}
	return period
}

// CreateTestSource creates an ingestion source in the given period.
func CreateTestSource(t *testing.T, db *gorm.DB, periodID, userID string, sourceType models.SourceType, name string) *models.Source {
	t.Helper()

	source := &models.Source{
		PeriodID:   periodID,
		UserID:     userID,
		SourceType: sourceType,
		SourceName: name,
	}
	if sourceType == models.SourceTypeStatement {
		now := time.Now().UTC()
		source.UploadTimestamp = &now
	}
	if err := db.Create(source).Error; err != nil {
		t.Fatalf("failed to create test source: %v", err)
	}
	return source
}
