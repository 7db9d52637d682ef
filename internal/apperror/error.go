package apperror

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ServerErrMessage is the only message infrastructure failures are allowed
// to surface to clients; the original cause stays in the logs.
const ServerErrMessage = "the server is not working. Please try again later!"

var ErrDecodeBody = NewAppError("failed to decode request body")

type AppError struct {
	Message  string
	notFound bool
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Message:  message,
		notFound: true,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) IsNotFound() bool {
	return e.notFound
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}
