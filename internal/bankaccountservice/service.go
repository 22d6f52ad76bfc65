// Package bankaccountservice manages business logic layer of bank accounts.
package bankaccountservice

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by bank account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bankaccountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateBankAccountParams) (domain.BankAccount, error)
	Get(ctx context.Context, id string) (domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) error
}

// Service facilitates bank account service layer logic.
type Service struct {
	repo Repo
}

// New returns bank account service struct to manage bank account business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

var nonDigits = regexp.MustCompile(`\D`)

// mask keeps the last 4 characters only; the full number never reaches storage.
func mask(s string) string {
	return "****" + s[len(s)-4:]
}

// Add validates the raw account data, masks the account and routing numbers
// and creates the bank account. Validation failures leave the registry untouched.
func (s *Service) Add(ctx context.Context, bankName, accountType, accountNumber, routingNumber string, makeDefault bool) (domain.BankAccount, error) {
	l := zerolog.Ctx(ctx)

	var account domain.BankAccount

	bankName = strings.TrimSpace(bankName)
	if bankName == "" {
		err := &domain.ValidationError{Field: "bank_name", Reason: "must not be empty"}
		l.Info().Err(err).Send()

		return account, err
	}

	if accountType != domain.AccountTypeChecking && accountType != domain.AccountTypeSavings {
		err := &domain.ValidationError{Field: "account_type", Reason: "must be either checking or savings"}
		l.Info().Err(err).Send()

		return account, err
	}

	accountNumber = strings.TrimSpace(accountNumber)
	if len(accountNumber) < 4 {
		err := &domain.ValidationError{Field: "account_number", Reason: "must be at least 4 characters"}
		l.Info().Err(err).Send()

		return account, err
	}

	routingDigits := nonDigits.ReplaceAllString(routingNumber, "")
	if len(routingDigits) != 9 {
		err := &domain.ValidationError{Field: "routing_number", Reason: "must be exactly 9 digits"}
		l.Info().Err(err).Send()

		return account, err
	}

	arg := domain.CreateBankAccountParams{
		BankName:      bankName,
		AccountType:   accountType,
		AccountNumber: mask(accountNumber),
		RoutingNumber: mask(routingDigits),
		MakeDefault:   makeDefault,
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the bank account with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.BankAccount, error) {
	return s.repo.Get(ctx, id)
}

// List returns all bank accounts in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.BankAccount, error) {
	return s.repo.List(ctx)
}

// Delete removes the bank account with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SetDefault marks the bank account with the given id as the single default.
func (s *Service) SetDefault(ctx context.Context, id string) error {
	return s.repo.SetDefault(ctx, id)
}
