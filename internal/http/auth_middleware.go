package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type authContextKey string

const contextKeyIdentity authContextKey = "shelf-identity"

type contextSetter interface {
	SetContext(context.Context)
}

// requireAuth gates a handler behind a valid bearer token. It parses the token
// and attaches the verified user ID to the request context; it never touches
// the user store. Rejections short-circuit before any handler logic runs.
func (r *Router) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		raw, err := bearerToken(req.Header.Get("Authorization"))
		if err != nil {
			r.logger.Warn("authorization header invalid", "error", err, "path", req.URL.Path)
			r.recordAuthRejection("missing_credential")
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := r.tokens.Parse(raw)
		if err != nil {
			r.logger.Warn("token validation failed", "error", err, "path", req.URL.Path)
			r.recordAuthRejection("token_invalid")
			writeError(w, http.StatusUnauthorized, "authentication failed")
			return
		}
		ctx := context.WithValue(req.Context(), contextKeyIdentity, claims.UserID)
		if setter, ok := w.(contextSetter); ok {
			setter.SetContext(ctx)
		}
		next(w, req.WithContext(ctx))
	}
}

// identityFromContext extracts the verified user ID placed by requireAuth.
func identityFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKeyIdentity).(uuid.UUID)
	return id, ok
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
