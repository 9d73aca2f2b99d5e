package services

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	apperrors "finera/internal/errors"
	"finera/internal/models"
)

// categoryService exposes the seeded, read-only category taxonomy.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns the full taxonomy ordered by id.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ListCategoriesByType returns taxonomy entries of one type ordered by id.
func (s *categoryService) ListCategoriesByType(categoryType models.CategoryType) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("category_type = ?", categoryType).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a single taxonomy entry.
func (s *categoryService) GetCategoryByID(id int) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CategoryNamesTR returns the Turkish names forming the extraction
// vocabulary sent to AI providers.
func (s *categoryService) CategoryNamesTR() ([]string, error) {
	categories, err := s.ListCategories()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.CategoryNameTR)
	}
	return names, nil
}

// foldNameTR lowercases a category name with Turkish casing rules, so
// dotted and dotless I variants ("İ"/"i", "I"/"ı") compare equal.
func foldNameTR(name string) string {
	return cases.Lower(language.Turkish).String(strings.TrimSpace(name))
}

// CategoryMatcher maps provider-suggested category names to canonical
// taxonomy entries. Matching is a case-insensitive exact match on the
// Turkish name; anything else is a miss, never an error.
type CategoryMatcher struct {
	byFoldedName map[string]*models.Category
}

// Matcher loads the taxonomy once and builds a matcher for a batch.
func (s *categoryService) Matcher() (*CategoryMatcher, error) {
	categories, err := s.ListCategories()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*models.Category, len(categories))
	for i := range categories {
		byName[foldNameTR(categories[i].CategoryNameTR)] = &categories[i]
	}
	return &CategoryMatcher{byFoldedName: byName}, nil
}

// Match resolves a suggested name to a category, or nil when no taxonomy
// entry carries that name. No fuzzy or partial matching.
func (m *CategoryMatcher) Match(suggestedName string) *models.Category {
	if strings.TrimSpace(suggestedName) == "" {
		return nil
	}
	return m.byFoldedName[foldNameTR(suggestedName)]
}
