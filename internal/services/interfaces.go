package services

import (
	"context"

	"familia/internal/finance"
	"familia/internal/models"
	"familia/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Month    string // YYYY-MM
	Member   *models.Member
	Type     *models.TransactionType
	Category *models.Category
	IsFixed  *bool
}

// TransactionServicer is the persistence boundary for the family ledger.
// Store failures come back as INTERNAL_ERROR AppErrors that wrap the driver
// error unchanged.
type TransactionServicer interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	List(ctx context.Context, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	Create(ctx context.Context, draft models.Transaction) (*models.Transaction, error)
	CreateInstallments(ctx context.Context, draft models.Transaction, count int) ([]models.Transaction, error)
	Update(ctx context.Context, id string, draft models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// ReportServicer builds the month dashboard.
type ReportServicer interface {
	MonthTransactions(ctx context.Context, filter finance.Filter) ([]models.Transaction, error)
	MonthlyReport(ctx context.Context, filter finance.Filter) (*finance.Stats, error)
}

// InsightServicer produces the written spending summary. It never fails;
// problems are reported through the returned text.
type InsightServicer interface {
	GenerateInsights(ctx context.Context, txs []models.Transaction, monthLabel string) string
}

// AuditServicer records ledger changes.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress, requestID string, changes map[string]any)
}
