package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finera/internal/errors"
	"finera/internal/models"
	"finera/internal/pagination"
)

type mockTransactionService struct {
	addManualFn func(userID string, year, month, categoryID int, description string, amount decimal.Decimal) (*models.Transaction, error)
	getPeriodFn func(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getByIDFn   func(userID, transactionID string) (*models.Transaction, error)
}

func (m *mockTransactionService) AddManualTransaction(userID string, year, month, categoryID int, description string, amount decimal.Decimal) (*models.Transaction, error) {
	if m.addManualFn != nil {
		return m.addManualFn(userID, year, month, categoryID, description, amount)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetPeriodTransactions(userID string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.getPeriodFn != nil {
		return m.getPeriodFn(userID, year, month, page)
	}
	return &pagination.PageResponse[models.Transaction]{}, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions/manual", injectUserID(testUserID), handler.CreateManualTransaction)
	r.GET("/periods/:year/:month/transactions", injectUserID(testUserID), handler.GetPeriodTransactions)
	r.GET("/transactions/:id", injectUserID(testUserID), handler.GetTransactionByID)
	return r
}

func TestTransactionHandler_CreateManualTransaction(t *testing.T) {
	t.Run("returns 201 and forwards the magnitude", func(t *testing.T) {
		var gotAmount decimal.Decimal
		svc := &mockTransactionService{
			addManualFn: func(_ string, _, _, _ int, _ string, amount decimal.Decimal) (*models.Transaction, error) {
				gotAmount = amount
				return &models.Transaction{Amount: amount.Neg()}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions/manual",
			`{"year":2024,"month":1,"category_id":3,"description":"Pazar alışverişi","amount":"250.00"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotAmount.Equal(decimal.RequireFromString("250.00")) {
			t.Errorf("expected forwarded magnitude 250.00, got %s", gotAmount)
		}
	})

	t.Run("returns 400 on out of range month", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions/manual",
			`{"year":2024,"month":13,"category_id":3,"description":"x","amount":"10.00"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown category", func(t *testing.T) {
		svc := &mockTransactionService{
			addManualFn: func(_ string, _, _, _ int, _ string, _ decimal.Decimal) (*models.Transaction, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions/manual",
			`{"year":2024,"month":1,"category_id":999,"description":"x","amount":"10.00"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetPeriodTransactions(t *testing.T) {
	t.Run("returns 200 with a page", func(t *testing.T) {
		svc := &mockTransactionService{
			getPeriodFn: func(_ string, year, month int, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				if year != 2024 || month != 1 {
					t.Errorf("expected period 2024-1, got %d-%d", year, month)
				}
				response := pagination.NewPageResponse([]models.Transaction{{}}, page.Page, page.PageSize, 1)
				return &response, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/periods/2024/1/transactions?page=1&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(1) {
			t.Errorf("expected total_items 1, got %v", result["total_items"])
		}
	})

	t.Run("returns 400 on non_numeric_path", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/periods/abc/1/transactions", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when period does not exist", func(t *testing.T) {
		svc := &mockTransactionService{
			getPeriodFn: func(_ string, _, _ int, _ pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				return nil, apperrors.ErrPeriodNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/periods/2019/1/transactions", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PERIOD_NOT_FOUND")
	})
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	t.Run("returns 404 for another user's transaction", func(t *testing.T) {
		svc := &mockTransactionService{
			getByIDFn: func(_, _ string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/some-id", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
