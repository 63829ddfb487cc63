package repository

import (
	"context"

	"github.com/google/uuid"

	"shelf/internal/domain"
)

// UserRepository persists users. The backing store must enforce uniqueness on
// email and username; CreateUser returns ErrConflict when either is taken.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ItemRepository persists items. Every read and mutation is owner-scoped: an
// item under a different owner behaves exactly like a missing one.
type ItemRepository interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id, ownerID uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id, ownerID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error)
	DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error
}
