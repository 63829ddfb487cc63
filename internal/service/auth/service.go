package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"shelf/internal/crypto"
	"shelf/internal/domain"
	"shelf/internal/repository"
	"shelf/internal/token"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// that responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("auth: invalid email or password")

// ErrTaken indicates the email or username is already registered.
var ErrTaken = errors.New("auth: email or username already registered")

const (
	usernameMinLength = 3
	usernameMaxLength = 32
)

// Service handles signup, login and identity lookups.
type Service struct {
	users  repository.UserRepository
	hasher crypto.Hasher
	tokens *token.Manager
	logger *slog.Logger
}

// New constructs a Service.
func New(users repository.UserRepository, hasher crypto.Hasher, tokens *token.Manager, logger *slog.Logger) Service {
	return Service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// SignupInput carries raw signup fields.
type SignupInput struct {
	Email    string
	Username string
	Password string
}

// Signup registers a new user and issues a token. The database uniqueness
// constraint is the authoritative guard against concurrent signups with the
// same email; the pre-check only produces a friendlier error.
func (s Service) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if err := validateSignup(in); err != nil {
		return nil, "", err
	}

	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrSecretTooShort) {
			return nil, "", domain.Invalid("password", fmt.Sprintf("must be at least %d characters", crypto.MinSecretLength))
		}
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, "", ErrTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, signed, nil
}

// Login verifies credentials and issues a fresh token. The failure shape is
// identical whether the email is unknown or the password is wrong.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("look up user: %w", err)
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, signed, nil
}

// GetUser loads the user behind a verified identity.
func (s Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetUserByID(ctx, id)
}

func validateSignup(in SignupInput) error {
	if in.Email == "" {
		return domain.Invalid("email", "is required")
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return domain.Invalid("email", "is not a valid address")
	}
	if len(in.Username) < usernameMinLength || len(in.Username) > usernameMaxLength {
		return domain.Invalid("username", fmt.Sprintf("must be between %d and %d characters", usernameMinLength, usernameMaxLength))
	}
	if len(in.Password) < crypto.MinSecretLength {
		return domain.Invalid("password", fmt.Sprintf("must be at least %d characters", crypto.MinSecretLength))
	}
	return nil
}
