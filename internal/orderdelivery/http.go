// Package orderdelivery manages delivery layer of orders.
package orderdelivery

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

// Service provides service layer interface needed by order delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package orderdelivery
type Service interface {
	Get(ctx context.Context, id string) (domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus, pageSize, pageID int32) ([]domain.Order, error)
	Cancel(ctx context.Context, id, reason string) (domain.Order, error)
}

// Handler facilitates order delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns order handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type listRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=1,max=100"`
}

// List handles http request to list orders.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
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

	orders, err := h.service.List(ctx, domain.OrderStatus(req.Status), req.PageSize, req.PageID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Orders []domain.Order `json:"orders"`
		}{
			Orders: orders,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to get a single order.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	order, err := h.service.Get(ctx, req.ID)
	if err != nil {
		switch err {
		case domain.ErrOrderNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Order domain.Order `json:"order"`
		}{
			Order: order,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type cancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Cancel handles http request to cancel a pending order.
func (h *Handler) Cancel(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req cancelRequest
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

	order, err := h.service.Cancel(ctx, uri.ID, req.Reason)
	if err != nil {
		switch err {
		case domain.ErrOrderNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrOrderNotCancellable:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Order domain.Order `json:"order"`
		}{
			Order: order,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
