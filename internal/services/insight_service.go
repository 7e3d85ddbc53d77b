package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"familia/internal/insight"
	"familia/internal/logger"
	"familia/internal/metrics"
	"familia/internal/models"
)

// insightService wraps a Generator with the fixed fallback replies and a
// short-lived cache of successful answers.
type insightService struct {
	generator insight.Generator
	cache     *ristretto.Cache[string, string]
	ttl       time.Duration
	metrics   metrics.Recorder
}

// InsightCache is the cache insight answers are kept in.
type InsightCache = ristretto.Cache[string, string]

// NewInsightCache creates a cache sized for a few hundred monthly summaries.
func NewInsightCache() (*InsightCache, error) {
	return ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 10_000,
		MaxCost:     8 << 20,
		BufferItems: 64,
	})
}

// NewInsightService creates a new InsightServicer. cache may be nil to
// disable caching.
func NewInsightService(generator insight.Generator, cache *InsightCache, ttl time.Duration, recorder metrics.Recorder) InsightServicer {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &insightService{generator: generator, cache: cache, ttl: ttl, metrics: recorder}
}

// GenerateInsights asks the model for a summary of txs. It always returns
// text: a fixed message when there is nothing to analyse, when the model
// answers with nothing, or when the call fails.
func (s *insightService) GenerateInsights(ctx context.Context, txs []models.Transaction, monthLabel string) string {
	if len(txs) == 0 {
		s.metrics.InsightRequest(metrics.OutcomeNoData)
		return insight.NoTransactionsMessage
	}

	prompt := insight.BuildPrompt(txs, monthLabel)
	key := promptKey(prompt)
	if s.cache != nil {
		if text, ok := s.cache.Get(key); ok {
			s.metrics.InsightRequest(metrics.OutcomeCacheHit)
			return text
		}
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Named("insight").Warnw("insight generation failed",
			"month", monthLabel,
			"transactions", len(txs),
			"error", err,
		)
		s.metrics.InsightRequest(metrics.OutcomeError)
		return insight.UnavailableMessage
	}
	if strings.TrimSpace(text) == "" {
		s.metrics.InsightRequest(metrics.OutcomeEmpty)
		return insight.EmptyResponseMessage
	}

	if s.cache != nil {
		s.cache.SetWithTTL(key, text, int64(len(text)), s.ttl)
		s.cache.Wait()
	}
	s.metrics.InsightRequest(metrics.OutcomeOK)
	return text
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
