package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finera/internal/ai"
	apperrors "finera/internal/errors"
	"finera/internal/services"
)

// SummaryHandler serves period reports and savings recommendations.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	savingsService services.SavingsServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService services.SummaryServicer, savingsService services.SavingsServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, savingsService: savingsService}
}

// SavingsRequest represents the savings recommendation payload.
type SavingsRequest struct {
	Provider             string                `json:"provider" binding:"required,ai_provider"`
	DesiredSavingsAmount decimal.Decimal       `json:"desired_savings_amount" binding:"required"`
	CurrentSpending      []ai.CategorySpending `json:"current_spending" binding:"required,dive"`
}

// GetPeriodSummary returns a period's expense breakdown
// @Summary     Period expense summary
// @Description Break down one period's expenses by source and category; totals are reported positive
// @Tags        summaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year path int true "Period year"
// @Param       month path int true "Period month"
// @Success     200 {object} services.PeriodSummaryResponse "Expense summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Router      /periods/{year}/{month}/summary [get]
func (h *SummaryHandler) GetPeriodSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseIntParam(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := parseIntParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetPeriodExpenseSummary(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSavingsRecommendations returns AI savings recommendations
// @Summary     Savings recommendations
// @Description Ask the selected AI provider for spending reductions toward a savings goal
// @Tags        summaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SavingsRequest true "Savings goal and current spending"
// @Success     200 {object} services.SavingsResponse "Recommendations with summary"
// @Failure     400 {object} ErrorResponse "Invalid input or unconfigured provider"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "AI provider failure"
// @Router      /savings/recommendations [post]
func (h *SummaryHandler) GetSavingsRecommendations(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.DesiredSavingsAmount.Sign() <= 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "desired savings amount must be positive"))
		return
	}

	provider, err := ai.ParseProvider(req.Provider)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response, err := h.savingsService.GetRecommendations(c.Request.Context(), provider, req.DesiredSavingsAmount, req.CurrentSpending)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
