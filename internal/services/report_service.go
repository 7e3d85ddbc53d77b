package services

import (
	"context"

	apperrors "familia/internal/errors"
	"familia/internal/finance"
	"familia/internal/models"
)

// reportService builds dashboards from the full ledger.
type reportService struct {
	transactions TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactions TransactionServicer) ReportServicer {
	return &reportService{transactions: transactions}
}

// MonthTransactions loads the ledger and keeps the filter's month and
// member. A month is required so daily buckets never mix months.
func (s *reportService) MonthTransactions(ctx context.Context, filter finance.Filter) ([]models.Transaction, error) {
	if !finance.ValidMonth(filter.Month) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	if filter.Member != "" && filter.Member != models.MemberAll && !filter.Member.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown family member: "+string(filter.Member))
	}

	all, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(all), nil
}

// MonthlyReport aggregates the filtered month.
func (s *reportService) MonthlyReport(ctx context.Context, filter finance.Filter) (*finance.Stats, error) {
	txs, err := s.MonthTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	stats := finance.Aggregate(txs)
	return &stats, nil
}
