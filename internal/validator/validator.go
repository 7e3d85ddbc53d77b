// Package validator registers the ledger's field rules with Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"familia/internal/finance"
	"familia/internal/models"
)

var rules = map[string]validator.Func{
	"transaction_type": validateTransactionType,
	"category":         validateCategory,
	"family_member":    validateFamilyMember,
	"member_filter":    validateMemberFilter,
	"iso_date":         validateISODate,
	"year_month":       validateYearMonth,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom rules to v.
func RegisterOn(v *validator.Validate) {
	for tag, fn := range rules {
		_ = v.RegisterValidation(tag, fn)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

// A missing member is allowed and later defaults to Casa.
func validateFamilyMember(fl validator.FieldLevel) bool {
	m := models.Member(fl.Field().String())
	return m == "" || m.IsValid()
}

func validateMemberFilter(fl validator.FieldLevel) bool {
	m := models.Member(fl.Field().String())
	return m == models.MemberAll || m.IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	return models.Date(fl.Field().String()).Valid()
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return finance.ValidMonth(fl.Field().String())
}
