package utils

import (
	"net/http"

	"github.com/goccy/go-json"

	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/logger"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteError writes an error body with the code derived from status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Error: message, Code: codeForStatus(status)})
}

// WriteAppError classifies err and writes the matching status and body.
// Internal failures are logged with the request logger and reported generically.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.Internal {
		logger.WithContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Internal error")
	}
	WriteJSON(w, kind.Status(), ErrorBody{
		Error: apperror.PublicMessage(err),
		Code:  kind.String(),
	})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return apperror.Unauthorized.String()
	case http.StatusBadRequest:
		return apperror.InvalidInput.String()
	case http.StatusNotFound:
		return apperror.NotFound.String()
	case http.StatusConflict:
		return apperror.Conflict.String()
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	case http.StatusServiceUnavailable:
		return "UNAVAILABLE"
	default:
		return apperror.Internal.String()
	}
}
