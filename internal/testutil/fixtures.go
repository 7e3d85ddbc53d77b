package testutil

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"familia/internal/models"
)

// NewTransaction builds an unsaved expense with a realistic description.
// Adjust the returned value before saving when a test needs specific fields.
func NewTransaction(date string, amount string) models.Transaction {
	return models.Transaction{
		Description: gofakeit.ProductName(),
		Amount:      decimal.RequireFromString(amount),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryOutros,
		Date:        models.Date(date),
		User:        models.MemberCasa,
	}
}

// CreateTestTransaction stores tx directly, bypassing validation.
func CreateTestTransaction(t *testing.T, db *gorm.DB, tx models.Transaction) *models.Transaction {
	t.Helper()

	if err := db.Create(&tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return &tx
}

// CreateTestExpense stores an expense on date for amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, date, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, NewTransaction(date, amount))
}

// CreateTestIncome stores a salary entry on date for amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, date, amount string) *models.Transaction {
	t.Helper()

	tx := NewTransaction(date, amount)
	tx.Type = models.TransactionTypeIncome
	tx.Category = models.CategorySalario
	return CreateTestTransaction(t, db, tx)
}
