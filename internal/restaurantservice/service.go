// Package restaurantservice manages business logic layer of the restaurant profile.
package restaurantservice

import (
	"context"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by restaurant service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package restaurantservice
type Repo interface {
	Get(ctx context.Context) (domain.Restaurant, error)
	UpdateDeliveryRadius(ctx context.Context, radius float64) (domain.Restaurant, error)
}

// Service facilitates restaurant service layer logic.
type Service struct {
	repo Repo
}

// New returns restaurant service struct to manage restaurant business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Get returns the restaurant profile.
func (s *Service) Get(ctx context.Context) (domain.Restaurant, error) {
	return s.repo.Get(ctx)
}

// UpdateDeliveryRadius sets the self-delivery radius. The radius must be
// positive and within the courier network cap.
func (s *Service) UpdateDeliveryRadius(ctx context.Context, radius float64) (domain.Restaurant, error) {
	if radius <= 0 || radius > domain.CourierMaxRadiusMiles {
		zerolog.Ctx(ctx).Info().Float64("radius", radius).Err(domain.ErrInvalidDeliveryRadius).Send()
		return domain.Restaurant{}, domain.ErrInvalidDeliveryRadius
	}

	return s.repo.UpdateDeliveryRadius(ctx, radius)
}
