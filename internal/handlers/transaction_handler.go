package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "familia/internal/errors"
	"familia/internal/middleware"
	"familia/internal/models"
	"familia/internal/pagination"
	"familia/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest is the form a transaction is entered or edited with.
type TransactionRequest struct {
	Description string                 `json:"description" binding:"required,max=500" example:"Mercado"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number" example:"152.30"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type" example:"expense"`
	Category    models.Category        `json:"category" binding:"required,category" example:"Alimentação"`
	Date        string                 `json:"date" binding:"required,iso_date" example:"2024-03-05"`
	IsFixed     bool                   `json:"isFixed"`
	User        models.Member          `json:"user" binding:"omitempty,family_member" example:"Casa"`
}

// CreateTransactionRequest adds the optional installment count to a new entry.
type CreateTransactionRequest struct {
	TransactionRequest
	Installments int `json:"installments" binding:"omitempty,min=2,max=120" example:"3"`
}

func (r TransactionRequest) draft() (models.Transaction, error) {
	if !r.Amount.IsPositive() {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return models.Transaction{
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
		Date:        models.Date(r.Date),
		IsFixed:     r.IsFixed,
		User:        r.User,
	}, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. With installments >= 2 an expense is split into monthly installments that are all saved together.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Success     201 {object} TransactionsResponse "Installments created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	draft, err := req.draft()
	if err != nil {
		respondWithError(c, err)
		return
	}

	if req.Installments > 0 {
		created, err := h.transactionService.CreateInstallments(c.Request.Context(), draft, req.Installments)
		if err != nil {
			respondWithError(c, err)
			return
		}

		ids := make([]string, len(created))
		for i, tx := range created {
			ids[i] = tx.ID
		}
		h.audit(c, models.AuditCreateInstallments, created[0].ID, map[string]any{
			"installments": req.Installments,
			"amount":       req.Amount.String(),
			"ids":          ids,
		})

		c.JSON(http.StatusCreated, TransactionsResponse{Transactions: created})
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, models.AuditCreateTransaction, transaction.ID, map[string]any{
		"type":   transaction.Type,
		"amount": transaction.Amount.String(),
		"date":   transaction.Date,
	})

	c.JSON(http.StatusCreated, TransactionResponse{Transaction: *transaction})
}

// listTransactionsQuery binds the list filters and page.
type listTransactionsQuery struct {
	pagination.PageRequest
	Month    string                 `form:"month" binding:"omitempty,year_month"`
	Member   models.Member          `form:"member" binding:"omitempty,member_filter"`
	Type     models.TransactionType `form:"type" binding:"omitempty,transaction_type"`
	Category models.Category        `form:"category" binding:"omitempty,category"`
	IsFixed  *bool                  `form:"is_fixed"`
}

func (q listTransactionsQuery) filter() services.TransactionFilter {
	f := services.TransactionFilter{Month: q.Month, IsFixed: q.IsFixed}
	if q.Member != "" {
		f.Member = &q.Member
	}
	if q.Type != "" {
		f.Type = &q.Type
	}
	if q.Category != "" {
		f.Category = &q.Category
	}
	return f
}

// ListTransactions handles listing the ledger
// @Summary     List transactions
// @Description Get a paginated list of transactions, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 200)"
// @Param       month     query string false "Month (YYYY-MM)"
// @Param       member    query string false "Family member, or Todos"
// @Param       type      query string false "income or expense"
// @Param       category  query string false "Category name"
// @Param       is_fixed  query bool   false "Only fixed (true) or variable (false) entries"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q listTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.transactionService.List(c.Request.Context(), q.filter(), q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID handles fetching one transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Transaction: *transaction})
}

// UpdateTransaction handles editing a transaction
// @Summary     Update a transaction
// @Description Replace every field of a transaction. Fields left out are reset to their defaults.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "New transaction details"
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	draft, err := req.draft()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.Update(c.Request.Context(), id, draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, models.AuditUpdateTransaction, transaction.ID, map[string]any{
		"type":     transaction.Type,
		"amount":   transaction.Amount.String(),
		"category": transaction.Category,
		"date":     transaction.Date,
	})

	c.JSON(http.StatusOK, TransactionResponse{Transaction: *transaction})
}

// DeleteTransaction handles removing a transaction
// @Summary     Delete a transaction
// @Description Permanently remove a transaction. The audit log keeps what was deleted.
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	existing, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, models.AuditDeleteTransaction, id, map[string]any{
		"description": existing.Description,
		"type":        existing.Type,
		"amount":      existing.Amount.String(),
		"category":    existing.Category,
		"date":        existing.Date,
		"user":        existing.User,
	})

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

func (h *TransactionHandler) audit(c *gin.Context, action, resourceID string, changes map[string]any) {
	h.auditService.Log(action, models.AuditResourceTransaction, resourceID, c.ClientIP(), middleware.RequestID(c), changes)
}
