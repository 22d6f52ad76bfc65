// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

// Constants for all supported bank account types.
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// ErrBankAccountNotFound indicates that the bank account is not found.
var ErrBankAccountNotFound = errors.New("bank account not found")

// ValidationError reports the first invalid field of a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// BankAccount holds a linked payout destination for the restaurant.
//
// Account and routing numbers are masked before they reach this type;
// the full numbers are never stored.
type BankAccount struct {
	ID            string    `json:"id"`
	BankName      string    `json:"bank_name"`
	AccountType   string    `json:"account_type"`
	AccountNumber string    `json:"account_number"`
	RoutingNumber string    `json:"routing_number"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateBankAccountParams holds data needed for bank account creation.
// AccountNumber and RoutingNumber must already be masked.
type CreateBankAccountParams struct {
	BankName      string
	AccountType   string
	AccountNumber string
	RoutingNumber string
	MakeDefault   bool
}
