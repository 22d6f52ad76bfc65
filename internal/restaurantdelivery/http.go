// Package restaurantdelivery manages delivery layer of the restaurant profile.
package restaurantdelivery

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

// Service provides service layer interface needed by restaurant delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package restaurantdelivery
type Service interface {
	Get(ctx context.Context) (domain.Restaurant, error)
	UpdateDeliveryRadius(ctx context.Context, radius float64) (domain.Restaurant, error)
}

// Handler facilitates restaurant delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns restaurant handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Get handles http request to get the restaurant profile.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	profile, err := h.service.Get(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Restaurant domain.Restaurant `json:"restaurant"`
		}{
			Restaurant: profile,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type updateRadiusRequest struct {
	Radius float64 `json:"radius" binding:"required"`
}

// UpdateDeliveryRadius handles http request to change the self-delivery radius.
func (h *Handler) UpdateDeliveryRadius(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateRadiusRequest
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

	profile, err := h.service.UpdateDeliveryRadius(ctx, req.Radius)
	if err != nil {
		switch err {
		case domain.ErrInvalidDeliveryRadius:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Restaurant domain.Restaurant `json:"restaurant"`
		}{
			Restaurant: profile,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
