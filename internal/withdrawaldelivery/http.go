// Package withdrawaldelivery manages delivery layer of withdrawals.
package withdrawaldelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-petr/merchant-payouts/pkg/errorspkg"
	"github.com/go-petr/merchant-payouts/pkg/web"
)

// Service provides service layer interface needed by withdrawal delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package withdrawaldelivery
type Service interface {
	Balance(ctx context.Context) (domain.WithdrawalBalance, error)
	Submit(ctx context.Context, amount, bankAccountID string) (domain.WithdrawalRequest, error)
	WithdrawAll(ctx context.Context) (decimal.Decimal, error)
	List(ctx context.Context) ([]domain.WithdrawalRequest, error)
	ApplyStatusUpdate(ctx context.Context, id string, status domain.WithdrawalStatus, failReason string, timestamp time.Time) (domain.WithdrawalRequest, error)
}

// Handler facilitates withdrawal delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns withdrawal handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Balance handles http request to get the payout balance.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	balance, err := h.service.Balance(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Balance domain.WithdrawalBalance `json:"balance"`
		}{
			Balance: balance,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type createRequest struct {
	Amount        string `json:"amount" binding:"required"`
	BankAccountID string `json:"bank_account_id" binding:"required"`
}

// Create handles http request to submit a withdrawal.
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

	request, err := h.service.Submit(ctx, req.Amount, req.BankAccountID)
	if err != nil {
		switch err {
		case
			domain.ErrInvalidAmount,
			domain.ErrInsufficientBalance,
			domain.ErrBelowMinimumWithdrawal:

			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrBankAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Withdrawal domain.WithdrawalRequest `json:"withdrawal"`
		}{
			Withdrawal: request,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// Prefill handles http request to pre-fill a submission with the full
// available amount.
func (h *Handler) Prefill(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	amount, err := h.service.WithdrawAll(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Amount decimal.Decimal `json:"amount"`
		}{
			Amount: amount,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// List handles http request to list withdrawal requests, newest first.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	requests, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Withdrawals []domain.WithdrawalRequest `json:"withdrawals"`
		}{
			Withdrawals: requests,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type updateStatusURI struct {
	ID string `uri:"id" binding:"required"`
}

type updateStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof=processing completed failed cancelled"`
	FailReason string `json:"fail_reason"`
}

// UpdateStatus handles the settlement hook that advances a withdrawal
// request along the status graph.
func (h *Handler) UpdateStatus(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri updateStatusURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req updateStatusRequest
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

	request, err := h.service.ApplyStatusUpdate(ctx, uri.ID, domain.WithdrawalStatus(req.Status), req.FailReason, time.Now().UTC())
	if err != nil {
		var te *domain.InvalidTransitionError
		if errors.As(err, &te) {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		switch err {
		case domain.ErrWithdrawalNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Withdrawal domain.WithdrawalRequest `json:"withdrawal"`
		}{
			Withdrawal: request,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
