// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
)

// RepoMem facilitates user repository layer logic in memory.
type RepoMem struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewRepoMem returns user RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{}
}

// Create creates the user and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == arg.Username {
			l.Info().Str("username", arg.Username).Err(domain.ErrUsernameAlreadyExists).Send()
			return domain.User{}, domain.ErrUsernameAlreadyExists
		}

		if u.Email == arg.Email {
			l.Info().Str("email", arg.Email).Err(domain.ErrEmailALreadyExists).Send()
			return domain.User{}, domain.ErrEmailALreadyExists
		}
	}

	u := domain.User{
		Username:       arg.Username,
		HashedPassword: arg.HashedPassword,
		FullName:       arg.FullName,
		Email:          arg.Email,
		CreatedAt:      time.Now().UTC(),
	}

	r.users = append(r.users, u)

	return u, nil
}

// Get returns the user with the given username.
func (r *RepoMem) Get(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}

	zerolog.Ctx(ctx).Info().Str("username", username).Err(domain.ErrUserNotFound).Send()

	return domain.User{}, domain.ErrUserNotFound
}
