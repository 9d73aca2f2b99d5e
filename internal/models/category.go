package models

// CategoryType represents the type of category. A category is either an
// expense or an income bucket, never both.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// FallbackCategoryNameTR is the Turkish name of the catch-all taxonomy
// entry the AI extractor is told to use for ambiguous rows.
const FallbackCategoryNameTR = "Diğer / Belirsiz"

// Category is a canonical taxonomy entry with localized names. The
// taxonomy is seeded by migration and read-only to the ingestion
// pipeline, so there is no Base embed and no soft delete.
type Category struct {
	ID             int          `gorm:"primaryKey" json:"id"`
	CategoryNameTR string       `gorm:"column:category_name_tr;size:100;not null;uniqueIndex" json:"category_name_tr"`
	CategoryNameEN string       `gorm:"column:category_name_en;size:100;not null;uniqueIndex" json:"category_name_en"`
	CategoryType   CategoryType `gorm:"size:10;not null" json:"category_type"`
}
