// Package financerepo manages repository layer of the finance overview.
package financerepo

import (
	"context"
	"sync"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
)

// RepoMem facilitates finance repository layer logic in memory.
type RepoMem struct {
	mu       sync.RWMutex
	stats    map[domain.StatsPeriod]domain.FinanceStats
	payments []domain.PaymentRecord
	daily    []domain.DailyStat
}

// NewRepoMem returns finance RepoMem holding the given aggregates.
func NewRepoMem(stats map[domain.StatsPeriod]domain.FinanceStats, payments []domain.PaymentRecord, daily []domain.DailyStat) *RepoMem {
	return &RepoMem{
		stats:    stats,
		payments: payments,
		daily:    daily,
	}
}

// Stats returns the revenue stats for the given period.
func (r *RepoMem) Stats(ctx context.Context, period domain.StatsPeriod) (domain.FinanceStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.stats[period]
	if !ok {
		zerolog.Ctx(ctx).Info().Str("period", string(period)).Err(domain.ErrUnknownStatsPeriod).Send()
		return domain.FinanceStats{}, domain.ErrUnknownStatsPeriod
	}

	return stats, nil
}

// Payments returns the settlement payment history, newest first.
func (r *RepoMem) Payments(ctx context.Context) ([]domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]domain.PaymentRecord, len(r.payments))
	copy(payments, r.payments)

	return payments, nil
}

// DailyStats returns the per-day revenue trend, oldest first.
func (r *RepoMem) DailyStats(ctx context.Context) ([]domain.DailyStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	daily := make([]domain.DailyStat, len(r.daily))
	copy(daily, r.daily)

	return daily, nil
}
