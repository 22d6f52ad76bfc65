// Package orderservice manages business logic layer of orders.
package orderservice

import (
	"context"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

// Repo provides data access layer interface needed by order service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package orderservice
type Repo interface {
	Get(ctx context.Context, id string) (domain.Order, error)
	List(ctx context.Context, arg domain.ListOrdersParams) ([]domain.Order, error)
	Cancel(ctx context.Context, id, reason string) (domain.Order, error)
}

// Service facilitates order service layer logic.
type Service struct {
	repo Repo
}

// New returns order service struct to manage order business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// List returns a page of orders, optionally filtered by status.
func (s *Service) List(ctx context.Context, status domain.OrderStatus, pageSize, pageID int32) ([]domain.Order, error) {
	arg := domain.ListOrdersParams{
		Status: status,
		Limit:  pageSize,
		Offset: (pageID - 1) * pageSize,
	}

	return s.repo.List(ctx, arg)
}

// Cancel cancels a pending order with the given reason.
func (s *Service) Cancel(ctx context.Context, id, reason string) (domain.Order, error) {
	return s.repo.Cancel(ctx, id, reason)
}
