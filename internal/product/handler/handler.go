package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/palmrow/storefront-backend/internal/apperror"
	"github.com/palmrow/storefront-backend/internal/handlers"
	"github.com/palmrow/storefront-backend/internal/product"
	"go.uber.org/zap"
)

type Service interface {
	GetCatalog(ctx context.Context) ([]product.Product, error)
	GetCatalogByType(ctx context.Context, productType string) ([]product.Product, error)
	GetProduct(ctx context.Context, id string) (*product.Product, error)
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
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Get("/", apperror.Middleware(h.catalogHandler))
		productRouter.Get("/{location}", apperror.Middleware(h.productHandler))
	})
}

// @Tags		catalog
// @Param		type	query		string	false	"filter by exact product type"
// @Success	200		{array}		product.Product
// @Failure	500		{string}	string
// @Router		/products [get]
func (h *handler) catalogHandler(w http.ResponseWriter, r *http.Request) error {
	productType := r.URL.Query().Get("type")

	var (
		catalog []product.Product
		err     error
	)

	if productType != "" {
		catalog, err = h.service.GetCatalogByType(r.Context(), productType)
	} else {
		catalog, err = h.service.GetCatalog(r.Context())
	}

	if err != nil {
		return err
	}

	if catalog == nil {
		catalog = make([]product.Product, 0)
	}

	render.JSON(w, r, catalog)

	return nil
}

// @Tags		catalog
// @Param		location	path		string	true	"product directory name, matched case-insensitively"
// @Success	200			{object}	product.Product
// @Failure	404,500		{string}	string
// @Router		/products/{location} [get]
func (h *handler) productHandler(w http.ResponseWriter, r *http.Request) error {
	location := strings.ToLower(chi.URLParam(r, "location"))

	p, err := h.service.GetProduct(r.Context(), location)
	if err != nil {
		return err
	}

	render.JSON(w, r, p)

	return nil
}
