package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-petr/merchant-payouts/pkg/randompkg"
)

func TestCreateAndGet(t *testing.T) {
	r := NewRepoMem()

	arg := domain.CreateSessionParams{
		ID:           uuid.New(),
		Username:     randompkg.Owner(),
		RefreshToken: randompkg.String(32),
		UserAgent:    "test-agent",
		ClientIP:     "127.0.0.1",
		ExpiresAt:    time.Now().Add(time.Hour).UTC(),
	}

	want, err := r.Create(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, arg.ID, want.ID)
	require.False(t, want.CreatedAt.IsZero())

	got, err := r.Get(context.Background(), arg.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = r.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
