package orderservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

func TestList(t *testing.T) {
	testCases := []struct {
		name     string
		status   domain.OrderStatus
		pageSize int32
		pageID   int32
		wantArg  domain.ListOrdersParams
	}{
		{
			name:     "FirstPage",
			pageSize: 20,
			pageID:   1,
			wantArg:  domain.ListOrdersParams{Limit: 20, Offset: 0},
		},
		{
			name:     "ThirdPage",
			status:   domain.OrderPending,
			pageSize: 10,
			pageID:   3,
			wantArg:  domain.ListOrdersParams{Status: domain.OrderPending, Limit: 10, Offset: 20},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			repo.EXPECT().
				List(gomock.Any(), gomock.Eq(tc.wantArg)).
				Times(1).
				Return([]domain.Order{{ID: "ORD-20241226-001"}}, nil)

			service := New(repo)

			orders, err := service.List(context.Background(), tc.status, tc.pageSize, tc.pageID)
			require.NoError(t, err)
			require.Len(t, orders, 1)
		})
	}
}

func TestCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		Cancel(gomock.Any(), gomock.Eq("ORD-20241226-001"), gomock.Eq("customer request")).
		Times(1).
		Return(domain.Order{ID: "ORD-20241226-001", Status: domain.OrderCancelled}, nil)

	service := New(repo)

	order, err := service.Cancel(context.Background(), "ORD-20241226-001", "customer request")
	require.NoError(t, err)
	require.Equal(t, domain.OrderCancelled, order.Status)
}
