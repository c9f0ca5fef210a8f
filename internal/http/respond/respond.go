// Package respond writes JSON responses and is the single place where typed
// application errors become HTTP status codes and payloads.
package respond

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hongminglow/shopfront/internal/apperr"
)

// JSON writes a success response with the given payload as-is.
func JSON(w http.ResponseWriter, status int, payload any) {
	write(w, status, payload)
}

// Error writes an error response in the standard {message} shape.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"message": message})
}

// Err translates a typed application error into its status code and payload.
// Unknown errors become an opaque 500; the cause is logged, never sent.
func Err(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Printf("unhandled error: %v", err)
		Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		if len(appErr.Fields) > 0 {
			write(w, http.StatusBadRequest, map[string]any{"errors": appErr.Fields})
			return
		}
		Error(w, http.StatusBadRequest, appErr.Message)
	case apperr.KindConflict:
		Error(w, http.StatusBadRequest, appErr.Message)
	case apperr.KindAuth:
		Error(w, http.StatusUnauthorized, appErr.Message)
	case apperr.KindNotFound:
		Error(w, http.StatusNotFound, appErr.Message)
	default:
		log.Printf("internal error: %v", appErr)
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
