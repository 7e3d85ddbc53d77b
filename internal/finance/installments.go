package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "familia/internal/errors"
	"familia/internal/models"
)

// MaxInstallments bounds how many records a single purchase may expand to.
const MaxInstallments = 120

// Split expands an expense into count monthly installments.
//
// Each installment carries base.Amount / count, with no cent adjustment, so
// the parts may not add back to the exact total. Installment i is dated i
// calendar months after base.Date (see AddMonths for the end-of-month rule)
// and its description gains an " (i/count)" suffix, which must still fit
// within models.MaxDescriptionLength. Category, member and
// the fixed flag are copied. The drafts have no id.
func Split(base models.Transaction, count int) ([]models.Transaction, error) {
	if count < 2 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "installment count must be at least 2")
	}
	if count > MaxInstallments {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("installment count must be at most %d", MaxInstallments))
	}
	if base.Type != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "only expenses can be split into installments")
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	start, err := base.Date.Time()
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	share := base.Amount.Div(decimal.NewFromInt(int64(count)))
	drafts := make([]models.Transaction, 0, count)
	for i := range count {
		draft := base
		draft.Base = models.Base{}
		draft.Amount = share
		draft.Date = models.DateOf(AddMonths(start, i))
		draft.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, count)
		// The suffix counts toward the description limit.
		if err := draft.Validate(); err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// AddMonths moves t forward by n calendar months, keeping the day of month.
// When the target month is shorter the day is clamped to its last day, so
// Jan 31 + 1 month is Feb 28 (or 29), never a date in March.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
