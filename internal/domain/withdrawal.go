package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance indicates that the requested amount exceeds the available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrBelowMinimumWithdrawal indicates that the requested amount is below the minimum withdrawal.
	ErrBelowMinimumWithdrawal = errors.New("amount below minimum withdrawal")
	// ErrWithdrawalNotFound indicates that the withdrawal request is not found.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
)

// WithdrawalStatus is the settlement state of a withdrawal request.
type WithdrawalStatus string

// Constants for all withdrawal request statuses.
const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalFailed     WithdrawalStatus = "failed"
	WithdrawalCancelled  WithdrawalStatus = "cancelled"
)

// CanTransitionTo reports whether a request may move from s to next.
//
// The graph is pending -> processing -> completed, with failed reachable
// from pending and processing, and cancelled reachable from pending only.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	switch s {
	case WithdrawalPending:
		return next == WithdrawalProcessing || next == WithdrawalFailed || next == WithdrawalCancelled
	case WithdrawalProcessing:
		return next == WithdrawalCompleted || next == WithdrawalFailed
	default:
		return false
	}
}

// InvalidTransitionError indicates a status update that the transition graph forbids.
type InvalidTransitionError struct {
	From WithdrawalStatus
	To   WithdrawalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid withdrawal status transition from %s to %s", e.From, e.To)
}

// WithdrawalBalance holds the restaurant's payout balance figures.
//
// The amounts mutate only through withdrawal submission; settlement
// events are applied by an external collaborator.
type WithdrawalBalance struct {
	AvailableAmount   decimal.Decimal `json:"available_amount"`
	FrozenAmount      decimal.Decimal `json:"frozen_amount"`
	ProcessingAmount  decimal.Decimal `json:"processing_amount"`
	TotalWithdrawn    decimal.Decimal `json:"total_withdrawn"`
	MinimumWithdrawal decimal.Decimal `json:"minimum_withdrawal"`
	WithdrawalFeeRate decimal.Decimal `json:"withdrawal_fee_rate"`
}

// WithdrawalRequest holds a single payout request.
//
// Fee, ActualAmount and BankAccountInfo are frozen at submission time and
// survive later fee-rate changes or deletion of the referenced account.
type WithdrawalRequest struct {
	ID              string           `json:"id"`
	Amount          decimal.Decimal  `json:"amount"`
	Fee             decimal.Decimal  `json:"fee"`
	ActualAmount    decimal.Decimal  `json:"actual_amount"`
	BankAccountID   string           `json:"bank_account_id"`
	BankAccountInfo string           `json:"bank_account_info"`
	Status          WithdrawalStatus `json:"status"`
	FailReason      string           `json:"fail_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	ProcessedAt     *time.Time       `json:"processed_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}

// CreateWithdrawalParams holds data needed for withdrawal request creation.
type CreateWithdrawalParams struct {
	Amount          decimal.Decimal
	Fee             decimal.Decimal
	ActualAmount    decimal.Decimal
	BankAccountID   string
	BankAccountInfo string
}

// UpdateWithdrawalStatusParams is the input data for the settlement status hook.
type UpdateWithdrawalStatusParams struct {
	ID         string
	Status     WithdrawalStatus
	FailReason string
	Timestamp  time.Time
}
