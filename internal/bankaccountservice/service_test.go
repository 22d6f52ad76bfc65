package bankaccountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/merchant-payouts/internal/domain"
)

func TestAdd(t *testing.T) {
	testAccount := domain.BankAccount{
		ID:            "ba1",
		BankName:      "Chase",
		AccountType:   domain.AccountTypeChecking,
		AccountNumber: "****3210",
		RoutingNumber: "****6789",
		IsDefault:     true,
	}

	type input struct {
		bankName      string
		accountType   string
		accountNumber string
		routingNumber string
		makeDefault   bool
	}

	testCases := []struct {
		name       string
		input      input
		buildStubs func(repo *MockRepo)
		wantField  string
		wantErr    error
	}{
		{
			name: "OK",
			input: input{
				bankName:      "Chase",
				accountType:   domain.AccountTypeChecking,
				accountNumber: "9876543210",
				routingNumber: "123456789",
				makeDefault:   true,
			},
			buildStubs: func(repo *MockRepo) {
				arg := domain.CreateBankAccountParams{
					BankName:      "Chase",
					AccountType:   domain.AccountTypeChecking,
					AccountNumber: "****3210",
					RoutingNumber: "****6789",
					MakeDefault:   true,
				}

				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(testAccount, nil)
			},
		},
		{
			name: "TrimsAndMasks",
			input: input{
				bankName:      "  Chase  ",
				accountType:   domain.AccountTypeChecking,
				accountNumber: " 9876543210 ",
				routingNumber: "123-456-789",
				makeDefault:   true,
			},
			buildStubs: func(repo *MockRepo) {
				arg := domain.CreateBankAccountParams{
					BankName:      "Chase",
					AccountType:   domain.AccountTypeChecking,
					AccountNumber: "****3210",
					RoutingNumber: "****6789",
					MakeDefault:   true,
				}

				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(testAccount, nil)
			},
		},
		{
			name: "EmptyBankName",
			input: input{
				bankName:      "   ",
				accountType:   domain.AccountTypeChecking,
				accountNumber: "9876543210",
				routingNumber: "123456789",
			},
			wantField: "bank_name",
		},
		{
			name: "UnknownAccountType",
			input: input{
				bankName:      "Chase",
				accountType:   "credit",
				accountNumber: "9876543210",
				routingNumber: "123456789",
			},
			wantField: "account_type",
		},
		{
			name: "ShortAccountNumber",
			input: input{
				bankName:      "Chase",
				accountType:   domain.AccountTypeSavings,
				accountNumber: "123",
				routingNumber: "123456789",
			},
			wantField: "account_number",
		},
		{
			name: "ShortRoutingNumber",
			input: input{
				bankName:      "Chase",
				accountType:   domain.AccountTypeChecking,
				accountNumber: "9876543210",
				routingNumber: "12345",
			},
			wantField: "routing_number",
		},
		{
			name: "RoutingNumberWithLetters",
			input: input{
				bankName:      "Chase",
				accountType:   domain.AccountTypeChecking,
				accountNumber: "9876543210",
				routingNumber: "12345678a",
			},
			wantField: "routing_number",
		},
		{
			name: "RepoError",
			input: input{
				bankName:      "Chase",
				accountType:   domain.AccountTypeChecking,
				accountNumber: "9876543210",
				routingNumber: "123456789",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BankAccount{}, errors.New("repo failure"))
			},
			wantErr: errors.New("repo failure"),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			if tc.buildStubs != nil {
				tc.buildStubs(repo)
			} else {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			}

			service := New(repo)

			got, err := service.Add(context.Background(),
				tc.input.bankName,
				tc.input.accountType,
				tc.input.accountNumber,
				tc.input.routingNumber,
				tc.input.makeDefault,
			)

			if tc.wantField != "" {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, tc.wantField, ve.Field)
				require.Empty(t, got)

				return
			}

			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, testAccount, got)
		})
	}
}

func TestMask(t *testing.T) {
	require.Equal(t, "****6789", mask("123456789"))
	require.Equal(t, "****3210", mask("9876543210"))
	require.Equal(t, "****1234", mask("1234"))
}
