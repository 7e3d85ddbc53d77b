// Package server assembles the HTTP routes of the Família API.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"familia/internal/handlers"
	"familia/internal/metrics"
	"familia/internal/middleware"
	"familia/internal/services"

	_ "familia/internal/docs" // Import swagger docs
)

// Deps is everything the router hands requests to.
type Deps struct {
	Transactions services.TransactionServicer
	Reports      services.ReportServicer
	Audit        services.AuditServicer
	// Insights is nil when no model key is configured.
	Insights services.InsightServicer

	Metrics  metrics.Recorder
	Gatherer prometheus.Gatherer

	// APIKey guards /api/v1 when RequireAPIKey is set.
	APIKey        string
	RequireAPIKey bool
	CORSOrigin    string

	// InsightLimiter throttles the insight route; nil disables throttling.
	InsightLimiter *middleware.RateLimiter

	// Health reports whether dependencies are reachable; nil means always ok.
	Health func(ctx context.Context) error
}

// NewRouter builds the Gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	if d.Metrics == nil {
		d.Metrics = metrics.Nop{}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics(d.Metrics))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(d.CORSOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if d.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/api/health", func(c *gin.Context) {
		if d.Health != nil {
			if err := d.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	transactionHandler := handlers.NewTransactionHandler(d.Transactions, d.Audit)
	reportHandler := handlers.NewReportHandler(d.Reports)
	insightHandler := handlers.NewInsightHandler(d.Reports, d.Insights)

	v1 := router.Group("/api/v1")
	if d.RequireAPIKey {
		v1.Use(middleware.APIKeyAuth(d.APIKey))
	}

	v1.GET("/reference", handlers.GetReference)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	reports := v1.Group("/reports")
	reports.GET("/monthly", reportHandler.GetMonthlyReport)
	reports.GET("/budget", reportHandler.GetBudgetSplit)

	insights := []gin.HandlerFunc{insightHandler.GetInsights}
	if d.InsightLimiter != nil {
		insights = append([]gin.HandlerFunc{d.InsightLimiter.Middleware()}, insights...)
	}
	v1.GET("/insights", insights...)

	return router
}
