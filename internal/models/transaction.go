package models

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	apperrors "familia/internal/errors"
)

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionTypes lists every valid type.
var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Label returns the Portuguese label shown to the family.
func (t TransactionType) Label() string {
	if t == TransactionTypeIncome {
		return "Receita"
	}
	return "Despesa"
}

// Category is one of the fixed spending/earning categories.
type Category string

const (
	CategoryAlimentacao   Category = "Alimentação"
	CategoryMoradia       Category = "Moradia"
	CategoryTransporte    Category = "Transporte"
	CategoryLazer         Category = "Lazer"
	CategorySaude         Category = "Saúde"
	CategoryEducacao      Category = "Educação"
	CategorySalario       Category = "Salário"
	CategoryInvestimentos Category = "Investimentos"
	CategoryOutros        Category = "Outros"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAlimentacao, CategoryMoradia, CategoryTransporte, CategoryLazer, CategorySaude,
	CategoryEducacao, CategorySalario, CategoryInvestimentos, CategoryOutros,
}

// IsValid reports whether c is one of Categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Member is the family member a transaction belongs to.
type Member string

const (
	MemberLiz  Member = "Liz"
	MemberPai  Member = "Pai"
	MemberMae  Member = "Mãe"
	MemberCasa Member = "Casa"

	// MemberAll is the filter value that selects every member.
	MemberAll Member = "Todos"
)

// DefaultMember is used when a transaction names no member.
const DefaultMember = MemberCasa

// Members lists every family member.
var Members = []Member{MemberLiz, MemberPai, MemberMae, MemberCasa}

// IsValid reports whether m is one of Members.
func (m Member) IsValid() bool {
	for _, known := range Members {
		if m == known {
			return true
		}
	}
	return false
}

// OrDefault returns m, or DefaultMember when m is empty.
func (m Member) OrDefault() Member {
	if m == "" {
		return DefaultMember
	}
	return m
}

// MaxDescriptionLength bounds Transaction.Description in characters.
const MaxDescriptionLength = 500

// Transaction is a single income or expense entry. Amount is always
// positive; Type carries the direction.
type Transaction struct {
	Base
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Type        TransactionType `gorm:"type:text;not null" json:"type"`
	Category    Category        `gorm:"type:text;not null" json:"category"`
	Date        Date            `gorm:"type:date;not null;index" json:"date"`
	IsFixed     bool            `gorm:"column:is_fixed;not null" json:"isFixed"`
	User        Member          `gorm:"column:family_member;type:text;not null" json:"user"`
}

// Normalize fills defaults that the form leaves out.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.User = t.User.OrDefault()
}

// Validate checks every field constraint and returns an INVALID_INPUT
// AppError describing the first violation.
func (t *Transaction) Validate() error {
	switch {
	case strings.TrimSpace(t.Description) == "":
		return invalid("description is required")
	case utf8.RuneCountInString(t.Description) > MaxDescriptionLength:
		return invalid("description must be at most 500 characters")
	case !t.Amount.IsPositive():
		return invalid("amount must be greater than zero")
	case !t.Type.IsValid():
		return invalid("type must be income or expense")
	case !t.Category.IsValid():
		return invalid("unknown category: " + string(t.Category))
	case !t.Date.Valid():
		return invalid("date must be a valid YYYY-MM-DD date")
	case t.User != "" && !t.User.IsValid():
		return invalid("unknown family member: " + string(t.User))
	}
	return nil
}

func invalid(msg string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
}
