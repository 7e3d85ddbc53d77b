// Package finance holds the household's bookkeeping rules: monthly
// aggregation of transactions and splitting a purchase into installments.
// Everything here is pure computation over in-memory slices.
package finance

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"familia/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Stats is the dashboard view of a list of transactions.
type Stats struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	ByCategory   []CategoryTotal `json:"byCategory"`
	ByMember     []MemberTotal   `json:"byMember"`
	Daily        []DailyTotal    `json:"daily"`
	Budget       BudgetSplit     `json:"budget"`
}

// CategoryTotal is the expense sum of one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MemberTotal is the expense sum of one family member.
type MemberTotal struct {
	Member models.Member   `json:"member"`
	Total  decimal.Decimal `json:"total"`
}

// DailyTotal accumulates one day-of-month bucket.
type DailyTotal struct {
	Day     int                  `json:"day"`
	Income  decimal.Decimal      `json:"income"`
	Expense decimal.Decimal      `json:"expense"`
	Details []models.Transaction `json:"details"`
}

// BudgetSplit partitions expenses into fixed and variable spending.
type BudgetSplit struct {
	Fixed            decimal.Decimal      `json:"fixed"`
	Variable         decimal.Decimal      `json:"variable"`
	FixedPercent     decimal.Decimal      `json:"fixedPercent"`
	VariablePercent  decimal.Decimal      `json:"variablePercent"`
	FixedExpenses    []models.Transaction `json:"fixedExpenses"`
	VariableExpenses []models.Transaction `json:"variableExpenses"`
}

// Aggregate computes totals and breakdowns for txs.
//
// The daily breakdown groups by day of month only, so txs must already be
// narrowed to a single month (see Filter) or days from different months
// share a bucket. Records whose day cannot be read are left out of the daily
// breakdown but still count everywhere else.
func Aggregate(txs []models.Transaction) Stats {
	stats := Stats{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Daily:        []DailyTotal{},
	}

	byCategory := map[models.Category]decimal.Decimal{}
	byMember := map[models.Member]decimal.Decimal{}
	daily := map[int]*DailyTotal{}

	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		case models.TransactionTypeExpense:
			stats.TotalExpense = stats.TotalExpense.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
			member := tx.User.OrDefault()
			byMember[member] = byMember[member].Add(tx.Amount)
		}

		day, ok := DayOfMonth(tx.Date)
		if !ok {
			continue
		}
		bucket, exists := daily[day]
		if !exists {
			bucket = &DailyTotal{Day: day, Income: decimal.Zero, Expense: decimal.Zero}
			daily[day] = bucket
		}
		if tx.Type == models.TransactionTypeIncome {
			bucket.Income = bucket.Income.Add(tx.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
		bucket.Details = append(bucket.Details, tx)
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)

	stats.ByCategory = make([]CategoryTotal, 0, len(byCategory))
	for _, c := range rankDesc(byCategory) {
		stats.ByCategory = append(stats.ByCategory, CategoryTotal{Category: c, Total: byCategory[c]})
	}
	stats.ByMember = make([]MemberTotal, 0, len(byMember))
	for _, m := range rankDesc(byMember) {
		stats.ByMember = append(stats.ByMember, MemberTotal{Member: m, Total: byMember[m]})
	}

	for _, bucket := range daily {
		stats.Daily = append(stats.Daily, *bucket)
	}
	slices.SortFunc(stats.Daily, func(a, b DailyTotal) int { return cmp.Compare(a.Day, b.Day) })

	stats.Budget = SplitFixedVariable(txs)
	return stats
}

// SplitFixedVariable partitions the expenses in txs by IsFixed. Both
// percentages are zero when there are no expenses; otherwise they add up to
// exactly 100.
func SplitFixedVariable(txs []models.Transaction) BudgetSplit {
	split := BudgetSplit{
		Fixed:            decimal.Zero,
		Variable:         decimal.Zero,
		FixedPercent:     decimal.Zero,
		VariablePercent:  decimal.Zero,
		FixedExpenses:    []models.Transaction{},
		VariableExpenses: []models.Transaction{},
	}

	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		if tx.IsFixed {
			split.Fixed = split.Fixed.Add(tx.Amount)
			split.FixedExpenses = append(split.FixedExpenses, tx)
		} else {
			split.Variable = split.Variable.Add(tx.Amount)
			split.VariableExpenses = append(split.VariableExpenses, tx)
		}
	}

	total := split.Fixed.Add(split.Variable)
	if total.IsZero() {
		return split
	}
	split.FixedPercent = split.Fixed.Mul(hundred).Div(total)
	split.VariablePercent = hundred.Sub(split.FixedPercent)
	return split
}

// DayOfMonth reads the day component of a YYYY-MM-DD string: the leading
// digits of the third dash-separated field. Trailing junk such as a time
// suffix is ignored.
func DayOfMonth(date models.Date) (int, bool) {
	parts := strings.Split(string(date), "-")
	if len(parts) < 3 {
		return 0, false
	}
	field := strings.TrimLeft(parts[2], " \t")
	end := 0
	for end < len(field) && field[end] >= '0' && field[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	day, err := strconv.Atoi(field[:end])
	if err != nil {
		return 0, false
	}
	return day, true
}

// rankDesc orders keys by their sum, largest first, breaking ties by name.
func rankDesc[K ~string](sums map[K]decimal.Decimal) []K {
	keys := make([]K, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		if c := sums[b].Cmp(sums[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return keys
}
