// Package bankaccountrepo manages repository layer of bank accounts.
package bankaccountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RepoMem facilitates bank account repository layer logic in memory.
//
// The registry guarantees that a non-empty account list has exactly one
// default account and an empty list has none. Every mutation runs under
// an exclusive lock, so no intermediate state with zero or multiple
// defaults is observable.
type RepoMem struct {
	mu       sync.RWMutex
	accounts []domain.BankAccount
}

// NewRepoMem returns bank account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{}
}

// Create creates the bank account and then returns it.
//
// The created account becomes the single default when arg.MakeDefault is
// set or the registry was empty before insertion; any previous default is
// cleared within the same critical section.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateBankAccountParams) (domain.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	makeDefault := arg.MakeDefault || len(r.accounts) == 0
	if makeDefault {
		for i := range r.accounts {
			r.accounts[i].IsDefault = false
		}
	}

	a := domain.BankAccount{
		ID:            uuid.NewString(),
		BankName:      arg.BankName,
		AccountType:   arg.AccountType,
		AccountNumber: arg.AccountNumber,
		RoutingNumber: arg.RoutingNumber,
		IsDefault:     makeDefault,
		CreatedAt:     time.Now().UTC(),
	}

	r.accounts = append(r.accounts, a)

	return a, nil
}

// Get returns the bank account with the given id.
func (r *RepoMem) Get(ctx context.Context, id string) (domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}

	zerolog.Ctx(ctx).Info().Str("bank_account_id", id).Err(domain.ErrBankAccountNotFound).Send()

	return domain.BankAccount{}, domain.ErrBankAccountNotFound
}

// List returns all bank accounts in insertion order.
func (r *RepoMem) List(ctx context.Context) ([]domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.BankAccount, len(r.accounts))
	copy(accounts, r.accounts)

	return accounts, nil
}

// Delete removes the bank account with the given id.
//
// Deleting an unknown id is a no-op. Deleting the default account leaves
// the registry without a default; no re-election is performed.
func (r *RepoMem) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}

	return nil
}

// SetDefault marks the bank account with the given id as the single default.
func (r *RepoMem) SetDefault(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := -1

	for i, a := range r.accounts {
		if a.ID == id {
			target = i
			break
		}
	}

	if target == -1 {
		zerolog.Ctx(ctx).Info().Str("bank_account_id", id).Err(domain.ErrBankAccountNotFound).Send()
		return domain.ErrBankAccountNotFound
	}

	for i := range r.accounts {
		r.accounts[i].IsDefault = i == target
	}

	return nil
}
