// Package financedelivery manages delivery layer of the finance overview.
package financedelivery

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

// Service provides service layer interface needed by finance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package financedelivery
type Service interface {
	Stats(ctx context.Context, period domain.StatsPeriod) (domain.FinanceStats, error)
	Payments(ctx context.Context) ([]domain.PaymentRecord, error)
	DailyStats(ctx context.Context) ([]domain.DailyStat, error)
}

// Handler facilitates finance delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns finance handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type statsRequest struct {
	Period string `form:"period" binding:"required,oneof=today week month"`
}

// Stats handles http request to get revenue stats for a period.
func (h *Handler) Stats(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req statsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	stats, err := h.service.Stats(ctx, domain.StatsPeriod(req.Period))
	if err != nil {
		switch err {
		case domain.ErrUnknownStatsPeriod:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Stats domain.FinanceStats `json:"stats"`
		}{
			Stats: stats,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// Payments handles http request to list the settlement payment history.
func (h *Handler) Payments(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payments, err := h.service.Payments(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Payments []domain.PaymentRecord `json:"payments"`
		}{
			Payments: payments,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// DailyStats handles http request to get the per-day revenue trend.
func (h *Handler) DailyStats(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	daily, err := h.service.DailyStats(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Daily []domain.DailyStat `json:"daily"`
		}{
			Daily: daily,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
