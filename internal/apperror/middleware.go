package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

// Middleware adapts error-returning handlers to http.HandlerFunc. Error
// bodies are plain text containing only the message: AppError values map to
// 400 (404 for not-found), everything else to 500 with ServerErrMessage.
func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.IsNotFound() {
				w.WriteHeader(http.StatusNotFound)
			} else {
				w.WriteHeader(http.StatusBadRequest)
			}

			w.Write([]byte(appErr.Error()))

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(ServerErrMessage))
	}
}
