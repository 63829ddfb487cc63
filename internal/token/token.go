package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Parse failure classes. Handlers collapse all three into one unauthorized
// response; the distinction exists for logging.
var (
	ErrSignatureInvalid = errors.New("token: signature invalid")
	ErrExpired          = errors.New("token: expired")
	ErrMalformed        = errors.New("token: malformed")
)

// Claims defines the JWT payload.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

// Manager issues and parses signed bearer tokens. The secret and TTL are fixed
// at construction; Manager reads no ambient state.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager returns a Manager signing with the given symmetric secret.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token asserting userID for the configured TTL.
func (m *Manager) Issue(userID uuid.UUID, email string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "shelf",
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the signature and expiry against the Manager's clock and
// returns the claims. The signature is checked before any claim is trusted.
func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}),
		jwtlib.WithTimeFunc(func() time.Time { return m.now() }),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, ErrSignatureInvalid
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrMalformed
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
