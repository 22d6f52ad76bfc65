// Package orderrepo manages repository layer of orders.
package orderrepo

import (
	"context"
	"sync"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
)

// RepoMem facilitates order repository layer logic in memory.
type RepoMem struct {
	mu     sync.RWMutex
	orders []domain.Order // newest first
}

// NewRepoMem returns order RepoMem seeded with the given orders, newest first.
func NewRepoMem(orders []domain.Order) *RepoMem {
	return &RepoMem{orders: orders}
}

// Get returns the order with the given id.
func (r *RepoMem) Get(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}

	zerolog.Ctx(ctx).Info().Str("order_id", id).Err(domain.ErrOrderNotFound).Send()

	return domain.Order{}, domain.ErrOrderNotFound
}

// List returns orders filtered by status with limit and offset applied.
// An empty status matches all orders.
func (r *RepoMem) List(ctx context.Context, arg domain.ListOrdersParams) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]domain.Order, 0, len(r.orders))

	for _, o := range r.orders {
		if arg.Status == "" || o.Status == arg.Status {
			filtered = append(filtered, o)
		}
	}

	if arg.Offset >= int32(len(filtered)) {
		return []domain.Order{}, nil
	}

	end := arg.Offset + arg.Limit
	if end > int32(len(filtered)) {
		end = int32(len(filtered))
	}

	return filtered[arg.Offset:end], nil
}

// Cancel marks a pending order as cancelled with the given reason and
// returns the updated order.
func (r *RepoMem) Cancel(ctx context.Context, id, reason string) (domain.Order, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}

		if r.orders[i].Status != domain.OrderPending {
			l.Info().Str("order_id", id).Err(domain.ErrOrderNotCancellable).Send()
			return domain.Order{}, domain.ErrOrderNotCancellable
		}

		r.orders[i].Status = domain.OrderCancelled
		r.orders[i].CancelReason = reason

		return r.orders[i], nil
	}

	l.Info().Str("order_id", id).Err(domain.ErrOrderNotFound).Send()

	return domain.Order{}, domain.ErrOrderNotFound
}
