package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
