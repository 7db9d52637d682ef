package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/palmrow/storefront-backend/internal/apperror"
	"github.com/palmrow/storefront-backend/internal/handlers"
	"github.com/palmrow/storefront-backend/internal/promotion"
	"go.uber.org/zap"
)

type Service interface {
	GetPromotions(ctx context.Context) ([]promotion.Promotion, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/promotions", apperror.Middleware(h.promotionsHandler))
}

// @Tags		promotions
// @Success	200	{array}		promotion.Promotion
// @Failure	500	{string}	string
// @Router		/promotions [get]
func (h *handler) promotionsHandler(w http.ResponseWriter, r *http.Request) error {
	promotions, err := h.service.GetPromotions(r.Context())
	if err != nil {
		return err
	}

	if promotions == nil {
		promotions = make([]promotion.Promotion, 0)
	}

	render.JSON(w, r, promotions)

	return nil
}
