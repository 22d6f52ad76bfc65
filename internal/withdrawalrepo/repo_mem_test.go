package withdrawalrepo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

func testBalance() domain.WithdrawalBalance {
	return domain.WithdrawalBalance{
		AvailableAmount:   decimal.NewFromFloat(2600.71),
		FrozenAmount:      decimal.NewFromFloat(458.90),
		ProcessingAmount:  decimal.NewFromFloat(500.00),
		TotalWithdrawn:    decimal.NewFromFloat(15678.45),
		MinimumWithdrawal: decimal.NewFromInt(50),
		WithdrawalFeeRate: decimal.NewFromFloat(0.01),
	}
}

func createParams(amount string) domain.CreateWithdrawalParams {
	a := decimal.RequireFromString(amount)
	fee := a.Mul(decimal.NewFromFloat(0.01)).Round(2)

	return domain.CreateWithdrawalParams{
		Amount:          a,
		Fee:             fee,
		ActualAmount:    a.Sub(fee),
		BankAccountID:   "ba1",
		BankAccountInfo: "Chase ****6789",
	}
}

func requireDecimalEqual(t *testing.T, want, got decimal.Decimal) {
	t.Helper()

	if !want.Equal(got) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCreate(t *testing.T) {
	r := NewRepoMem(testBalance())

	req, err := r.Create(context.Background(), createParams("100"))
	require.NoError(t, err)

	wantPrefix := "WD-" + time.Now().UTC().Format("20060102") + "-"
	require.True(t, strings.HasPrefix(req.ID, wantPrefix), "id %q must start with %q", req.ID, wantPrefix)
	require.True(t, strings.HasSuffix(req.ID, "-001"))

	require.Equal(t, domain.WithdrawalPending, req.Status)
	require.Equal(t, "Chase ****6789", req.BankAccountInfo)
	requireDecimalEqual(t, decimal.NewFromInt(100), req.Amount)
	requireDecimalEqual(t, decimal.NewFromInt(1), req.Fee)
	requireDecimalEqual(t, decimal.NewFromInt(99), req.ActualAmount)
	require.False(t, req.CreatedAt.IsZero())
	require.Nil(t, req.ProcessedAt)
	require.Nil(t, req.CompletedAt)

	balance, err := r.Balance(context.Background())
	require.NoError(t, err)
	requireDecimalEqual(t, decimal.NewFromFloat(2500.71), balance.AvailableAmount)
	requireDecimalEqual(t, decimal.NewFromFloat(600.00), balance.ProcessingAmount)
	requireDecimalEqual(t, decimal.NewFromFloat(458.90), balance.FrozenAmount)
	requireDecimalEqual(t, decimal.NewFromFloat(15678.45), balance.TotalWithdrawn)
}

func TestCreateRejections(t *testing.T) {
	testCases := []struct {
		name    string
		balance domain.WithdrawalBalance
		amount  string
		wantErr error
	}{
		{
			name:    "ZeroAmount",
			balance: testBalance(),
			amount:  "0",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			balance: testBalance(),
			amount:  "-100",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "ExceedsAvailable",
			balance: testBalance(),
			amount:  "9999",
			wantErr: domain.ErrInsufficientBalance,
		},
		{
			name:    "BelowMinimum",
			balance: testBalance(),
			amount:  "30",
			wantErr: domain.ErrBelowMinimumWithdrawal,
		},
		{
			name: "ExceedsAvailableAndBelowMinimum",
			balance: domain.WithdrawalBalance{
				AvailableAmount:   decimal.NewFromInt(20),
				MinimumWithdrawal: decimal.NewFromInt(50),
			},
			amount:  "30",
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			r := NewRepoMem(tc.balance)

			_, err := r.Create(context.Background(), createParams(tc.amount))
			require.ErrorIs(t, err, tc.wantErr)

			// A rejected request must leave no trace.
			balance, err := r.Balance(context.Background())
			require.NoError(t, err)
			requireDecimalEqual(t, tc.balance.AvailableAmount, balance.AvailableAmount)
			requireDecimalEqual(t, tc.balance.ProcessingAmount, balance.ProcessingAmount)

			requests, err := r.List(context.Background())
			require.NoError(t, err)
			require.Empty(t, requests)
		})
	}
}

func TestNewRepoMemSeeded(t *testing.T) {
	seeded := []domain.WithdrawalRequest{
		{ID: "WD-20241226-001", Amount: decimal.NewFromInt(500), Status: domain.WithdrawalProcessing},
		{ID: "WD-20241220-001", Amount: decimal.NewFromInt(2000), Status: domain.WithdrawalCompleted},
	}

	r := NewRepoMem(testBalance(), seeded...)

	// Seeded history is served as given and leaves the opening balance alone.
	requests, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	require.Equal(t, "WD-20241226-001", requests[0].ID)

	balance, err := r.Balance(context.Background())
	require.NoError(t, err)
	requireDecimalEqual(t, decimal.NewFromFloat(2600.71), balance.AvailableAmount)
	requireDecimalEqual(t, decimal.NewFromFloat(500.00), balance.ProcessingAmount)

	// New ids continue after the seeded records.
	req, err := r.Create(context.Background(), createParams("100"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(req.ID, "-003"), "id %q", req.ID)
}

func TestListNewestFirst(t *testing.T) {
	r := NewRepoMem(testBalance())

	first, err := r.Create(context.Background(), createParams("60"))
	require.NoError(t, err)

	second, err := r.Create(context.Background(), createParams("100"))
	require.NoError(t, err)

	requests, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	require.Equal(t, second.ID, requests[0].ID)
	require.Equal(t, first.ID, requests[1].ID)
	require.True(t, strings.HasSuffix(second.ID, "-002"))
}

func TestUpdateStatus(t *testing.T) {
	ts := time.Date(2024, 12, 26, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		path       []domain.WithdrawalStatus
		status     domain.WithdrawalStatus
		failReason string
		wantErr    bool
		wantFrom   domain.WithdrawalStatus
		check      func(t *testing.T, req domain.WithdrawalRequest)
	}{
		{
			name:   "PendingToProcessing",
			status: domain.WithdrawalProcessing,
			check: func(t *testing.T, req domain.WithdrawalRequest) {
				require.NotNil(t, req.ProcessedAt)
				require.Equal(t, ts, *req.ProcessedAt)
			},
		},
		{
			name:   "ProcessingToCompleted",
			path:   []domain.WithdrawalStatus{domain.WithdrawalProcessing},
			status: domain.WithdrawalCompleted,
			check: func(t *testing.T, req domain.WithdrawalRequest) {
				require.NotNil(t, req.CompletedAt)
				require.Equal(t, ts, *req.CompletedAt)
			},
		},
		{
			name:       "PendingToFailed",
			status:     domain.WithdrawalFailed,
			failReason: "bank account rejected the deposit",
			check: func(t *testing.T, req domain.WithdrawalRequest) {
				require.Equal(t, "bank account rejected the deposit", req.FailReason)
				require.NotNil(t, req.ProcessedAt)
			},
		},
		{
			name:   "ProcessingToFailed",
			path:   []domain.WithdrawalStatus{domain.WithdrawalProcessing},
			status: domain.WithdrawalFailed,
		},
		{
			name:   "PendingToCancelled",
			status: domain.WithdrawalCancelled,
		},
		{
			name:     "PendingToCompleted",
			status:   domain.WithdrawalCompleted,
			wantErr:  true,
			wantFrom: domain.WithdrawalPending,
		},
		{
			name:     "ProcessingToCancelled",
			path:     []domain.WithdrawalStatus{domain.WithdrawalProcessing},
			status:   domain.WithdrawalCancelled,
			wantErr:  true,
			wantFrom: domain.WithdrawalProcessing,
		},
		{
			name:     "CompletedToFailed",
			path:     []domain.WithdrawalStatus{domain.WithdrawalProcessing, domain.WithdrawalCompleted},
			status:   domain.WithdrawalFailed,
			wantErr:  true,
			wantFrom: domain.WithdrawalCompleted,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			r := NewRepoMem(testBalance())

			created, err := r.Create(context.Background(), createParams("100"))
			require.NoError(t, err)

			for _, status := range tc.path {
				_, err := r.UpdateStatus(context.Background(), domain.UpdateWithdrawalStatusParams{
					ID:     created.ID,
					Status: status,
				})
				require.NoError(t, err)
			}

			req, err := r.UpdateStatus(context.Background(), domain.UpdateWithdrawalStatusParams{
				ID:         created.ID,
				Status:     tc.status,
				FailReason: tc.failReason,
				Timestamp:  ts,
			})

			if tc.wantErr {
				var te *domain.InvalidTransitionError
				require.ErrorAs(t, err, &te)
				require.Equal(t, tc.wantFrom, te.From)
				require.Equal(t, tc.status, te.To)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.status, req.Status)

			if tc.check != nil {
				tc.check(t, req)
			}

			// Settlement updates never touch the balance.
			balance, err := r.Balance(context.Background())
			require.NoError(t, err)
			requireDecimalEqual(t, decimal.NewFromFloat(2500.71), balance.AvailableAmount)
			requireDecimalEqual(t, decimal.NewFromFloat(600.00), balance.ProcessingAmount)
		})
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	r := NewRepoMem(testBalance())

	_, err := r.UpdateStatus(context.Background(), domain.UpdateWithdrawalStatusParams{
		ID:     "WD-20241226-999",
		Status: domain.WithdrawalProcessing,
	})
	require.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
}
