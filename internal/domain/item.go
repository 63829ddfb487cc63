package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a user-owned resource. OwnerID is stamped at creation and never changes.
type Item struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemPatch carries partial updates; nil fields keep the stored value.
type ItemPatch struct {
	Title       *string
	Description *string
	Status      *string
}
