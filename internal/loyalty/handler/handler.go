package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/palmrow/storefront-backend/internal/apperror"
	"github.com/palmrow/storefront-backend/internal/handlers"
	"github.com/palmrow/storefront-backend/internal/loyalty"
	"go.uber.org/zap"
)

const maxFormMemory = 1 << 20

var validate = validator.New()

type Service interface {
	RegisterSignup(ctx context.Context, signup loyalty.Signup) error
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
	router.Post("/loyalty", apperror.Middleware(h.loyaltyHandler))
}

type SignupRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
	Phone string `validate:"required"`
}

// @Tags		forms
// @Accept		mpfd
// @Param		name	formData	string	true	"customer name"
// @Param		email	formData	string	true	"customer email"
// @Param		phone	formData	string	true	"customer phone"
// @Success	200		{string}	string	"thank you for joining our team!"
// @Failure	400,500	{string}	string
// @Router		/loyalty [post]
func (h *handler) loyaltyHandler(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	dto := SignupRequest{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Phone: r.FormValue("phone"),
	}

	// Validation must short-circuit: nothing may be persisted on a bad request.
	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.RegisterSignup(r.Context(), loyalty.Signup{
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}); err != nil {
		return err
	}

	render.PlainText(w, r, "thank you for joining our team!")

	return nil
}
