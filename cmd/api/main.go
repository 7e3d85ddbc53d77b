package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"familia/internal/config"
	"familia/internal/database"
	"familia/internal/insight"
	"familia/internal/logger"
	"familia/internal/metrics"
	"familia/internal/middleware"
	"familia/internal/server"
	"familia/internal/services"
	"familia/internal/validator"
)

// @title           Família API
// @version         1.0
// @description     Household ledger for the family: incomes, expenses, installments, monthly reports and AI spending insights.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared family key.

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context) error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()
	recorder := metrics.NewPrometheus(prometheus.DefaultRegisterer)

	// Services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db, recorder)
	reportService := services.NewReportService(transactionService)
	auditService := services.NewAuditService(db)

	deps := server.Deps{
		Transactions:  transactionService,
		Reports:       reportService,
		Audit:         auditService,
		Metrics:       recorder,
		Gatherer:      prometheus.DefaultGatherer,
		APIKey:        appConfig.FamilyAPIKey,
		RequireAPIKey: appConfig.APIKeyRequired(),
		CORSOrigin:    appConfig.CORSOrigin,
		Health:        dbManager.Ping,
	}
	if !appConfig.APIKeyRequired() {
		log.Warn("FAMILY_API_KEY is not set; /api/v1 is open")
	}

	if appConfig.InsightsEnabled() {
		cache, err := services.NewInsightCache()
		if err != nil {
			return fmt.Errorf("failed to create insight cache: %w", err)
		}
		defer cache.Close()

		generator := insight.NewOpenAIGenerator(insight.OpenAIConfig{
			APIKey:  appConfig.GeminiAPIKey,
			BaseURL: appConfig.GeminiBaseURL,
			Model:   appConfig.GeminiModel,
			Timeout: appConfig.InsightTimeout,
		})
		deps.Insights = services.NewInsightService(generator, cache, appConfig.InsightCacheTTL, recorder)
		deps.InsightLimiter = middleware.NewRateLimiter(appConfig.InsightRatePerSec, appConfig.InsightBurst)
	} else {
		log.Warn("GEMINI_API_KEY is not set; insights are disabled")
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting Família backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if deps.InsightLimiter != nil {
		g.Go(func() error {
			deps.InsightLimiter.Run(time.Minute, gctx.Done())
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
