// Package bankaccountdelivery manages delivery layer of bank accounts.
package bankaccountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-petr/merchant-payouts/pkg/errorspkg"
	"github.com/go-petr/merchant-payouts/pkg/web"
)

// Service provides service layer interface needed by bank account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankaccountdelivery
type Service interface {
	Add(ctx context.Context, bankName, accountType, accountNumber, routingNumber string, makeDefault bool) (domain.BankAccount, error)
	Get(ctx context.Context, id string) (domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) error
}

// Handler facilitates bank account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bank account handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type createRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountType   string `json:"account_type" binding:"required,accounttype"`
	AccountNumber string `json:"account_number" binding:"required"`
	RoutingNumber string `json:"routing_number" binding:"required"`
	IsDefault     bool   `json:"is_default"`
}

// Create handles http request to link a bank account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	account, err := h.service.Add(ctx, req.BankName, req.AccountType, req.AccountNumber, req.RoutingNumber, req.IsDefault)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			BankAccount domain.BankAccount `json:"bank_account"`
		}{
			BankAccount: account,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// List handles http request to list linked bank accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accounts, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			BankAccounts []domain.BankAccount `json:"bank_accounts"`
		}{
			BankAccounts: accounts,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Delete handles http request to unlink a bank account.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusNoContent, nil)
}

// SetDefault handles http request to mark a bank account as the default.
func (h *Handler) SetDefault(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if err := h.service.SetDefault(ctx, req.ID); err != nil {
		switch err {
		case domain.ErrBankAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusNoContent, nil)
}
