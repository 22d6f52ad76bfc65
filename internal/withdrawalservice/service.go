// Package withdrawalservice manages business logic layer of withdrawals.
package withdrawalservice

import (
	"context"
	"time"

	"github.com/go-petr/merchant-payouts/internal/bankaccountdelivery"
	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by withdrawal service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package withdrawalservice
type Repo interface {
	Balance(ctx context.Context) (domain.WithdrawalBalance, error)
	Create(ctx context.Context, arg domain.CreateWithdrawalParams) (domain.WithdrawalRequest, error)
	List(ctx context.Context) ([]domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, arg domain.UpdateWithdrawalStatusParams) (domain.WithdrawalRequest, error)
}

// Service facilitates withdrawal service layer logic.
type Service struct {
	repo           Repo
	accountService bankaccountdelivery.Service
}

// New returns withdrawal service struct to manage withdrawal business logic.
func New(wr Repo, as bankaccountdelivery.Service) *Service {
	return &Service{
		repo:           wr,
		accountService: as,
	}
}

// ValidateAmount checks a requested amount against the given balance.
//
// A non-positive amount is treated as not yet entered and passes. The
// insufficient-balance check runs before the minimum check so an amount
// failing both reports insufficient balance.
func ValidateAmount(amount decimal.Decimal, balance domain.WithdrawalBalance) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	if amount.GreaterThan(balance.AvailableAmount) {
		return domain.ErrInsufficientBalance
	}

	if amount.LessThan(balance.MinimumWithdrawal) {
		return domain.ErrBelowMinimumWithdrawal
	}

	return nil
}

// Balance returns the current payout balance.
func (s *Service) Balance(ctx context.Context) (domain.WithdrawalBalance, error) {
	return s.repo.Balance(ctx)
}

// Submit validates the withdrawal request and creates it.
//
// The fee and the actual amount are computed from the current fee rate and
// frozen on the request, and the bank account display info is snapshotted,
// so later rate changes or account deletion do not alter the record.
func (s *Service) Submit(ctx context.Context, amount, bankAccountID string) (domain.WithdrawalRequest, error) {
	l := zerolog.Ctx(ctx)

	var req domain.WithdrawalRequest

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return req, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return req, domain.ErrInvalidAmount
	}

	balance, err := s.repo.Balance(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return req, err
	}

	if err := ValidateAmount(amountDecimal, balance); err != nil {
		l.Info().Err(err).Send()
		return req, err
	}

	account, err := s.accountService.Get(ctx, bankAccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return req, err
	}

	fee := amountDecimal.Mul(balance.WithdrawalFeeRate).Round(2)

	arg := domain.CreateWithdrawalParams{
		Amount:          amountDecimal,
		Fee:             fee,
		ActualAmount:    amountDecimal.Sub(fee),
		BankAccountID:   account.ID,
		BankAccountInfo: account.BankName + " " + account.AccountNumber,
	}

	return s.repo.Create(ctx, arg)
}

// WithdrawAll returns the full available amount rounded to 2 decimal places
// for pre-filling a submission. It performs no mutation.
func (s *Service) WithdrawAll(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.repo.Balance(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return balance.AvailableAmount.Round(2), nil
}

// List returns all withdrawal requests, newest first.
func (s *Service) List(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	return s.repo.List(ctx)
}

// ApplyStatusUpdate advances a withdrawal request along the settlement
// graph on behalf of the external settlement collaborator.
func (s *Service) ApplyStatusUpdate(ctx context.Context, id string, status domain.WithdrawalStatus, failReason string, timestamp time.Time) (domain.WithdrawalRequest, error) {
	arg := domain.UpdateWithdrawalStatusParams{
		ID:         id,
		Status:     status,
		FailReason: failReason,
		Timestamp:  timestamp,
	}

	return s.repo.UpdateStatus(ctx, arg)
}
