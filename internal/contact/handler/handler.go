package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/palmrow/storefront-backend/internal/apperror"
	"github.com/palmrow/storefront-backend/internal/contact"
	"github.com/palmrow/storefront-backend/internal/handlers"
	"go.uber.org/zap"
)

const maxFormMemory = 1 << 20

var validate = validator.New()

type Service interface {
	SubmitMessage(ctx context.Context, msg contact.Message) error
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
	router.Post("/contact", apperror.Middleware(h.contactHandler))
}

type MessageRequest struct {
	Email string `validate:"required"`
	Msg   string `validate:"required"`
}

// @Tags		forms
// @Accept		mpfd
// @Param		email	formData	string	true	"sender email"
// @Param		msg		formData	string	true	"message body"
// @Success	200		{string}	string	"thank you for your message!"
// @Failure	400,500	{string}	string
// @Router		/contact [post]
func (h *handler) contactHandler(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	dto := MessageRequest{
		Email: r.FormValue("email"),
		Msg:   r.FormValue("msg"),
	}

	// Validation must short-circuit: nothing may be appended on a bad request.
	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.SubmitMessage(r.Context(), contact.Message{
		Email: dto.Email,
		Msg:   dto.Msg,
	}); err != nil {
		return err
	}

	render.PlainText(w, r, "thank you for your message!")

	return nil
}
