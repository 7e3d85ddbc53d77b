package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "familia/internal/errors"
	"familia/internal/finance"
	"familia/internal/metrics"
	"familia/internal/models"
	"familia/internal/pagination"
)

// ledgerColumns are the columns an edit overwrites. Zero values are written too.
var ledgerColumns = []string{"description", "amount", "type", "category", "date", "is_fixed", "family_member", "updated_at"}

// transactionService handles the family ledger on top of gorm.
type transactionService struct {
	db      *gorm.DB
	metrics metrics.Recorder
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, recorder metrics.Recorder) TransactionServicer {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &transactionService{db: db, metrics: recorder}
}

// GetAll returns every transaction, newest date first.
func (s *transactionService) GetAll(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// List retrieves a paginated, filtered page of transactions, newest first.
func (s *transactionService) List(ctx context.Context, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	var totalItems int64
	if err := s.filtered(ctx, filter).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.filtered(ctx, filter).
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page, totalItems)
	return &result, nil
}

func (s *transactionService) filtered(ctx context.Context, f TransactionFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if f.Month != "" {
		if start, err := time.Parse("2006-01", f.Month); err == nil {
			q = q.Where("date >= ? AND date < ?", models.DateOf(start), models.DateOf(start.AddDate(0, 1, 0)))
		}
	}
	if f.Member != nil && *f.Member != models.MemberAll {
		q = q.Where("family_member = ?", *f.Member)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.IsFixed != nil {
		q = q.Where("is_fixed = ?", *f.IsFixed)
	}
	return q
}

// GetByID retrieves a single transaction.
func (s *transactionService) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Create validates and stores a single transaction, returning it with its
// assigned id.
func (s *transactionService) Create(ctx context.Context, draft models.Transaction) (*models.Transaction, error) {
	draft.Base = models.Base{}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&draft).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.metrics.TransactionsCreated(metrics.KindSingle, 1)
	return &draft, nil
}

// CreateInstallments splits draft into count monthly installments and
// stores them all in one database transaction. Either every installment is
// saved or none is.
func (s *transactionService) CreateInstallments(ctx context.Context, draft models.Transaction, count int) ([]models.Transaction, error) {
	draft.Normalize()
	installments, err := finance.Split(draft, count)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&installments).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.metrics.TransactionsCreated(metrics.KindInstallment, len(installments))
	return installments, nil
}

// Update replaces every field of the transaction except its id.
func (s *transactionService) Update(ctx context.Context, id string, draft models.Transaction) (*models.Transaction, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft.Base = existing.Base
	if err := s.db.WithContext(ctx).
		Model(existing).
		Select(ledgerColumns).
		Updates(&draft).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetByID(ctx, id)
}

// Delete permanently removes a transaction.
func (s *transactionService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
