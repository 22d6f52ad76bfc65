// Package financeservice manages business logic layer of the finance overview.
package financeservice

import (
	"context"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

// Repo provides data access layer interface needed by finance service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package financeservice
type Repo interface {
	Stats(ctx context.Context, period domain.StatsPeriod) (domain.FinanceStats, error)
	Payments(ctx context.Context) ([]domain.PaymentRecord, error)
	DailyStats(ctx context.Context) ([]domain.DailyStat, error)
}

// Service facilitates finance service layer logic.
type Service struct {
	repo Repo
}

// New returns finance service struct to manage finance business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Stats returns the revenue stats for the given period.
func (s *Service) Stats(ctx context.Context, period domain.StatsPeriod) (domain.FinanceStats, error) {
	return s.repo.Stats(ctx, period)
}

// Payments returns the settlement payment history, newest first.
func (s *Service) Payments(ctx context.Context) ([]domain.PaymentRecord, error) {
	return s.repo.Payments(ctx)
}

// DailyStats returns the per-day revenue trend, oldest first.
func (s *Service) DailyStats(ctx context.Context) ([]domain.DailyStat, error) {
	return s.repo.DailyStats(ctx)
}
