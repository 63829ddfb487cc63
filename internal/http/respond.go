package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"shelf/internal/domain"
	"shelf/internal/repository"
	"shelf/internal/service/auth"
)

// writeJSON writes JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError sends an error message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service failures onto status classes. Internal detail
// never reaches the response body; unexpected errors are logged and collapse
// to a generic server error.
func (r *Router) writeServiceError(w http.ResponseWriter, req *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "validation failed",
			"field": vErr.Field,
			"issue": vErr.Message,
		})
	case errors.Is(err, auth.ErrTaken):
		writeError(w, http.StatusConflict, "email or username already registered")
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		r.logger.Error("request failed", "error", err, "path", req.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
