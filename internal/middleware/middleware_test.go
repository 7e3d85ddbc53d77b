package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "familia/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
		wantErrorCode string
	}{
		{
			name:          "valid_api_key",
			configuredKey: "chave-da-familia",
			requestKey:    "chave-da-familia",
			wantStatus:    http.StatusOK,
		},
		{
			name:          "invalid_api_key",
			configuredKey: "chave-da-familia",
			requestKey:    "outra-chave",
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "missing_api_key",
			configuredKey: "chave-da-familia",
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "key_not_configured",
			requestKey:    "anything",
			wantStatus:    http.StatusServiceUnavailable,
			wantErrorCode: "NOT_CONFIGURED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(APIKeyAuth(tt.configuredKey))
			r.GET("/test", okHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			if tt.requestKey != "" {
				req.Header.Set(APIKeyHeader, tt.requestKey)
			}
			rec := serve(r, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErrorCode != "" {
				assert.Equal(t, tt.wantErrorCode, errorCode(t, rec))
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("pq: connection refused")))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/not-found", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrTransactionNotFound)
	})

	t.Run("app_error_hides_cause", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/app", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	})

	t.Run("plain_error", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/plain", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	})

	t.Run("status_from_code", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/not-found", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "TRANSACTION_NOT_FOUND", errorCode(t, rec))
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	t.Run("generates_id", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		id := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps_caller_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := serve(r, req)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://familia.example"))
	r.GET("/test", okHandler)

	t.Run("preflight", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodOptions, "/test", http.NoBody))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://familia.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-API-Key")
	})

	t.Run("simple_request", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("wildcard_default", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(""))
		r.GET("/test", okHandler)
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst_then_429", func(t *testing.T) {
		limiter := NewRateLimiter(0.001, 2)
		r := gin.New()
		r.Use(limiter.Middleware())
		r.GET("/test", okHandler)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			req.RemoteAddr = "192.0.2.10:5000"
			codes = append(codes, serve(r, req).Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.RemoteAddr = "192.0.2.10:5000"
		rec := serve(r, req)
		assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("clients_are_independent", func(t *testing.T) {
		limiter := NewRateLimiter(0.001, 1)
		assert.True(t, limiter.Allow("192.0.2.1"))
		assert.False(t, limiter.Allow("192.0.2.1"))
		assert.True(t, limiter.Allow("192.0.2.2"))
	})

	t.Run("sweep_drops_idle_clients", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		limiter := NewRateLimiter(1, 1)
		limiter.now = func() time.Time { return now }

		limiter.Allow("192.0.2.1")
		now = now.Add(time.Minute)
		limiter.Allow("192.0.2.2")
		now = now.Add(150 * time.Second)

		limiter.Sweep()
		assert.Equal(t, 1, limiter.size())
	})
}
