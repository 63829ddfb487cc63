package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"shelf/internal/token"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"missing", "", "", true},
		{"blank", "   ", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"no token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"extra parts", "Bearer abc def", "", true},
		{"ok", "Bearer abc123", "abc123", false},
		{"case insensitive scheme", "bearer abc123", "abc123", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func middlewareRouter(tokens *token.Manager) *Router {
	return &Router{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokens: tokens,
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	tokens := token.NewManager("middleware-secret", time.Hour)
	r := middlewareRouter(tokens)
	userID := uuid.New()

	signed, err := tokens.Issue(userID, "a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	var seen uuid.UUID
	var called bool
	handler := r.requireAuth(func(w http.ResponseWriter, req *http.Request) {
		called = true
		seen, _ = identityFromContext(req.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Fatal("expected handler to run")
	}
	if seen != userID {
		t.Fatalf("expected identity %s, got %s", userID, seen)
	}
}

func TestRequireAuthRejections(t *testing.T) {
	tokens := token.NewManager("middleware-secret", time.Hour)
	expired := token.NewManager("middleware-secret", -time.Minute)
	other := token.NewManager("other-secret", time.Hour)
	r := middlewareRouter(tokens)

	expiredToken, err := expired.Issue(uuid.New(), "")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	misSigned, err := other.Issue(uuid.New(), "")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signature", "Bearer " + misSigned},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := r.requireAuth(func(w http.ResponseWriter, req *http.Request) {
				t.Fatal("handler must not run")
			})
			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
