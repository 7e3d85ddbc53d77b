package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"familia/internal/logger"
	"familia/internal/server"
	"familia/internal/services"
	"familia/internal/testutil"
	"familia/internal/validator"
)

const apiKey = "chave-de-teste"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// fakeGenerator stands in for the hosted model.
type fakeGenerator struct {
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return "Vocês gastaram mais com moradia este mês.", nil
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T, generator *fakeGenerator) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	transactionService := services.NewTransactionService(db, nil)
	deps := server.Deps{
		Transactions:  transactionService,
		Reports:       services.NewReportService(transactionService),
		Audit:         services.NewAuditService(db),
		APIKey:        apiKey,
		RequireAPIKey: true,
	}
	if generator != nil {
		deps.Insights = services.NewInsightService(generator, nil, 0, nil)
	}

	return &testApp{DB: db, Router: server.NewRouter(deps)}
}

// request makes an authenticated HTTP request to the test router.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// requestWithoutKey makes an HTTP request that carries no API key.
func (app *testApp) requestWithoutKey(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createTransaction posts body and returns the created transaction.
func (app *testApp) createTransaction(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/transactions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["transaction"].(map[string]interface{})
}
