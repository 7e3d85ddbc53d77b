package finance

import (
	"regexp"

	"familia/internal/models"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth reports whether s is a YYYY-MM month.
func ValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// Filter narrows a transaction list to what the dashboard is showing.
type Filter struct {
	// Month is a YYYY-MM prefix; empty keeps every month.
	Month string
	// Member is a family member, or "Todos"/empty for the whole family.
	Member models.Member
}

// Matches reports whether tx passes the filter.
func (f Filter) Matches(tx models.Transaction) bool {
	if f.Month != "" && tx.Date.Month() != f.Month {
		return false
	}
	if f.Member != "" && f.Member != models.MemberAll && tx.User.OrDefault() != f.Member {
		return false
	}
	return true
}

// Apply returns the transactions that match, in their original order.
func (f Filter) Apply(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// MonthlyReport filters txs and aggregates the result.
func MonthlyReport(txs []models.Transaction, f Filter) Stats {
	return Aggregate(f.Apply(txs))
}
