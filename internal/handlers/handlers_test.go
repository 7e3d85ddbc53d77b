package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"familia/internal/finance"
	"familia/internal/models"
	"familia/internal/pagination"
	"familia/internal/services"
	"familia/internal/validator"
)

// --- mock services ---

type mockTransactionService struct {
	getAllFn             func(ctx context.Context) ([]models.Transaction, error)
	listFn               func(ctx context.Context, filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getByIDFn            func(ctx context.Context, id string) (*models.Transaction, error)
	createFn             func(ctx context.Context, draft models.Transaction) (*models.Transaction, error)
	createInstallmentsFn func(ctx context.Context, draft models.Transaction, count int) ([]models.Transaction, error)
	updateFn             func(ctx context.Context, id string, draft models.Transaction) (*models.Transaction, error)
	deleteFn             func(ctx context.Context, id string) error
}

func (m *mockTransactionService) GetAll(ctx context.Context) ([]models.Transaction, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) List(ctx context.Context, filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, page, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) Create(ctx context.Context, draft models.Transaction) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(ctx, draft)
	}
	return &draft, nil
}

func (m *mockTransactionService) CreateInstallments(ctx context.Context, draft models.Transaction, count int) ([]models.Transaction, error) {
	if m.createInstallmentsFn != nil {
		return m.createInstallmentsFn(ctx, draft, count)
	}
	return finance.Split(draft, count)
}

func (m *mockTransactionService) Update(ctx context.Context, id string, draft models.Transaction) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, draft)
	}
	draft.ID = id
	return &draft, nil
}

func (m *mockTransactionService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockReportService struct {
	monthTransactionsFn func(ctx context.Context, filter finance.Filter) ([]models.Transaction, error)
}

func (m *mockReportService) MonthTransactions(ctx context.Context, filter finance.Filter) ([]models.Transaction, error) {
	if m.monthTransactionsFn != nil {
		return m.monthTransactionsFn(ctx, filter)
	}
	return []models.Transaction{}, nil
}

func (m *mockReportService) MonthlyReport(ctx context.Context, filter finance.Filter) (*finance.Stats, error) {
	txs, err := m.MonthTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	stats := finance.Aggregate(txs)
	return &stats, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

type mockInsightService struct {
	generateFn func(ctx context.Context, txs []models.Transaction, monthLabel string) string
}

func (m *mockInsightService) GenerateInsights(ctx context.Context, txs []models.Transaction, monthLabel string) string {
	if m.generateFn != nil {
		return m.generateFn(ctx, txs, monthLabel)
	}
	return ""
}

type auditEntry struct {
	action     string
	resourceID string
	requestID  string
	changes    map[string]any
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(action, _, resourceID, _, requestID string, changes map[string]any) {
	m.entries = append(m.entries, auditEntry{action, resourceID, requestID, changes})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
