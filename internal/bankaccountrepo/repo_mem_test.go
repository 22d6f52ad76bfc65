package bankaccountrepo

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

func createAccount(t *testing.T, r *RepoMem, bankName string, makeDefault bool) domain.BankAccount {
	t.Helper()

	account, err := r.Create(context.Background(), domain.CreateBankAccountParams{
		BankName:      bankName,
		AccountType:   domain.AccountTypeChecking,
		AccountNumber: "****6789",
		RoutingNumber: "****4321",
		MakeDefault:   makeDefault,
	})
	require.NoError(t, err)

	return account
}

func defaults(t *testing.T, r *RepoMem) []string {
	t.Helper()

	accounts, err := r.List(context.Background())
	require.NoError(t, err)

	var ids []string

	for _, a := range accounts {
		if a.IsDefault {
			ids = append(ids, a.ID)
		}
	}

	return ids
}

func TestCreate(t *testing.T) {
	r := NewRepoMem()

	first := createAccount(t, r, "Chase", false)
	require.True(t, first.IsDefault, "first account must become the default")

	second := createAccount(t, r, "Wells Fargo", false)
	require.False(t, second.IsDefault)
	require.Equal(t, []string{first.ID}, defaults(t, r))

	third := createAccount(t, r, "Bank of America", true)
	require.True(t, third.IsDefault)
	require.Equal(t, []string{third.ID}, defaults(t, r))
}

func TestGet(t *testing.T) {
	r := NewRepoMem()
	want := createAccount(t, r, "Chase", false)

	got, err := r.Get(context.Background(), want.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}

	_, err = r.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrBankAccountNotFound)
}

func TestList(t *testing.T) {
	r := NewRepoMem()

	first := createAccount(t, r, "Chase", false)
	second := createAccount(t, r, "Wells Fargo", true)
	third := createAccount(t, r, "Bank of America", false)

	got, err := r.List(context.Background())
	require.NoError(t, err)

	want := []domain.BankAccount{first, second, third}
	want[0].IsDefault = false
	want[1].IsDefault = true

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("insertion order mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	r := NewRepoMem()

	first := createAccount(t, r, "Chase", false)
	second := createAccount(t, r, "Wells Fargo", false)

	require.NoError(t, r.Delete(context.Background(), "missing"), "unknown id must be a no-op")

	accounts, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	// Removing the default leaves the registry without one.
	require.NoError(t, r.Delete(context.Background(), first.ID))
	require.Empty(t, defaults(t, r))

	accounts, err = r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, second.ID, accounts[0].ID)
}

func TestSetDefault(t *testing.T) {
	r := NewRepoMem()

	first := createAccount(t, r, "Chase", false)
	second := createAccount(t, r, "Wells Fargo", false)

	require.ErrorIs(t, r.SetDefault(context.Background(), "missing"), domain.ErrBankAccountNotFound)
	require.Equal(t, []string{first.ID}, defaults(t, r), "failed switch must not disturb the current default")

	require.NoError(t, r.SetDefault(context.Background(), second.ID))
	require.Equal(t, []string{second.ID}, defaults(t, r))

	require.NoError(t, r.SetDefault(context.Background(), second.ID))
	require.Equal(t, []string{second.ID}, defaults(t, r))
}
