// Package restaurantrepo manages repository layer of the restaurant profile.
package restaurantrepo

import (
	"context"
	"sync"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

// RepoMem facilitates restaurant repository layer logic in memory.
type RepoMem struct {
	mu      sync.RWMutex
	profile domain.Restaurant
}

// NewRepoMem returns restaurant RepoMem holding the given profile.
func NewRepoMem(profile domain.Restaurant) *RepoMem {
	return &RepoMem{profile: profile}
}

// Get returns the restaurant profile.
func (r *RepoMem) Get(ctx context.Context) (domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.profile, nil
}

// UpdateDeliveryRadius sets the self-delivery radius and returns the
// updated profile.
func (r *RepoMem) UpdateDeliveryRadius(ctx context.Context, radius float64) (domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile.DeliverySettings.SelfDeliveryRadius = radius

	return r.profile, nil
}
