// Package withdrawalrepo manages repository layer of withdrawals.
package withdrawalrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoMem facilitates withdrawal repository layer logic in memory.
//
// It owns the payout balance and the withdrawal request list. The balance
// mutates only through Create; settlement status updates touch the request
// records alone. Every mutation runs under an exclusive lock.
type RepoMem struct {
	mu       sync.RWMutex
	balance  domain.WithdrawalBalance
	requests []domain.WithdrawalRequest // newest first
	seq      int64
}

// NewRepoMem returns withdrawal RepoMem with the given opening balance and
// optional historical requests, newest first. The opening balance must
// already account for the seeded requests; they do not mutate it.
func NewRepoMem(balance domain.WithdrawalBalance, requests ...domain.WithdrawalRequest) *RepoMem {
	return &RepoMem{
		balance:  balance,
		requests: requests,
		seq:      int64(len(requests)),
	}
}

// Balance returns the current payout balance.
func (r *RepoMem) Balance(ctx context.Context) (domain.WithdrawalBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.balance, nil
}

// Create validates the amount against the current balance and applies the
// request as one unit: the record is prepended, the available amount is
// reduced and the processing amount increased, or nothing changes at all.
//
// The insufficient-balance check runs before the minimum check so a request
// failing both reports insufficient balance.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateWithdrawalParams) (domain.WithdrawalRequest, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	var req domain.WithdrawalRequest

	if arg.Amount.LessThanOrEqual(decimal.Zero) {
		return req, domain.ErrInvalidAmount
	}

	if arg.Amount.GreaterThan(r.balance.AvailableAmount) {
		l.Info().Str("amount", arg.Amount.String()).Err(domain.ErrInsufficientBalance).Send()
		return req, domain.ErrInsufficientBalance
	}

	if arg.Amount.LessThan(r.balance.MinimumWithdrawal) {
		l.Info().Str("amount", arg.Amount.String()).Err(domain.ErrBelowMinimumWithdrawal).Send()
		return req, domain.ErrBelowMinimumWithdrawal
	}

	// The sequence is monotonic rather than len(requests)+1 so ids stay
	// unique even if requests are ever pruned.
	r.seq++
	now := time.Now().UTC()

	req = domain.WithdrawalRequest{
		ID:              fmt.Sprintf("WD-%s-%03d", now.Format("20060102"), r.seq),
		Amount:          arg.Amount,
		Fee:             arg.Fee,
		ActualAmount:    arg.ActualAmount,
		BankAccountID:   arg.BankAccountID,
		BankAccountInfo: arg.BankAccountInfo,
		Status:          domain.WithdrawalPending,
		CreatedAt:       now,
	}

	r.requests = append([]domain.WithdrawalRequest{req}, r.requests...)

	r.balance.AvailableAmount = r.balance.AvailableAmount.Sub(arg.Amount)
	r.balance.ProcessingAmount = r.balance.ProcessingAmount.Add(arg.Amount)

	return req, nil
}

// List returns all withdrawal requests, newest first.
func (r *RepoMem) List(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]domain.WithdrawalRequest, len(r.requests))
	copy(requests, r.requests)

	return requests, nil
}

// UpdateStatus advances a withdrawal request along the settlement graph
// and returns the updated request.
func (r *RepoMem) UpdateStatus(ctx context.Context, arg domain.UpdateWithdrawalStatusParams) (domain.WithdrawalRequest, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	var req domain.WithdrawalRequest

	target := -1

	for i := range r.requests {
		if r.requests[i].ID == arg.ID {
			target = i
			break
		}
	}

	if target == -1 {
		l.Info().Str("withdrawal_id", arg.ID).Err(domain.ErrWithdrawalNotFound).Send()
		return req, domain.ErrWithdrawalNotFound
	}

	current := r.requests[target].Status
	if !current.CanTransitionTo(arg.Status) {
		err := &domain.InvalidTransitionError{From: current, To: arg.Status}
		l.Info().Str("withdrawal_id", arg.ID).Err(err).Send()

		return req, err
	}

	ts := arg.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	switch arg.Status {
	case domain.WithdrawalProcessing:
		r.requests[target].ProcessedAt = &ts
	case domain.WithdrawalCompleted:
		r.requests[target].CompletedAt = &ts
	case domain.WithdrawalFailed:
		r.requests[target].FailReason = arg.FailReason
		if r.requests[target].ProcessedAt == nil {
			r.requests[target].ProcessedAt = &ts
		}
	}

	r.requests[target].Status = arg.Status

	return r.requests[target], nil
}
