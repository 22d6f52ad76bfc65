package bankaccountdelivery

import (
	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ValidAccountType validates whether the bank account type is supported.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	if accountType, ok := fl.Field().Interface().(string); ok {
		return accountType == domain.AccountTypeChecking || accountType == domain.AccountTypeSavings
	}
	return false
}
