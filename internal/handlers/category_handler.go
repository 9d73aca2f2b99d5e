package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finera/internal/errors"
	"finera/internal/models"
	"finera/internal/services"
)

// CategoryHandler serves the read-only category taxonomy.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns the category taxonomy
// @Summary     List categories
// @Description List the category taxonomy, optionally filtered by type
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Filter by category type" Enums(expense, income)
// @Success     200 {array} models.Category "Categories"
// @Failure     400 {object} ErrorResponse "Invalid type filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var query struct {
		Type string `form:"type" binding:"omitempty,category_type"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var categories []models.Category
	var err error
	if query.Type != "" {
		categories, err = h.categoryService.ListCategoriesByType(models.CategoryType(query.Type))
	} else {
		categories, err = h.categoryService.ListCategories()
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryByID returns one taxonomy entry
// @Summary     Get category
// @Description Get a single category by its identifier
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
