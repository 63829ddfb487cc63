package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"shelf/internal/domain"
	"shelf/internal/repository"
)

const (
	titleMaxLength  = 255
	statusMaxLength = 32

	// StatusDefault is stamped on items created without an explicit status.
	StatusDefault = "active"
)

// Service implements owner-scoped item operations. Every method takes the
// verified owner identity explicitly; ownership never comes from request input.
type Service struct {
	items  repository.ItemRepository
	logger *slog.Logger
}

// New constructs a Service.
func New(items repository.ItemRepository, logger *slog.Logger) Service {
	return Service{items: items, logger: logger}
}

// CreateInput carries fields accepted at creation. Owner and status are not
// part of it; the owner comes from the verified identity.
type CreateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateInput carries optional fields for partial updates.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Create stores a new item owned by ownerID.
func (s Service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*domain.Item, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}

	item := &domain.Item{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      StatusDefault,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.logger.Info("item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

// List returns all items owned by ownerID.
func (s Service) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error) {
	return s.items.ListItems(ctx, ownerID)
}

// Get fetches one item; items under other owners surface as not found.
func (s Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Item, error) {
	return s.items.GetItem(ctx, id, ownerID)
}

// Update applies a partial update to an owned item.
func (s Service) Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateInput) (*domain.Item, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		if err := validateTitle(trimmed); err != nil {
			return nil, err
		}
		in.Title = &trimmed
	}
	if in.Status != nil {
		trimmed := strings.TrimSpace(*in.Status)
		if trimmed == "" || len(trimmed) > statusMaxLength {
			return nil, domain.Invalid("status", fmt.Sprintf("must be between 1 and %d characters", statusMaxLength))
		}
		in.Status = &trimmed
	}

	patch := domain.ItemPatch{Title: in.Title, Description: in.Description, Status: in.Status}
	return s.items.UpdateItem(ctx, id, ownerID, patch)
}

// Delete removes an owned item.
func (s Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.items.DeleteItem(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info("item deleted", "item_id", id, "owner_id", ownerID)
	return nil
}

func validateTitle(title string) error {
	if title == "" || len(title) > titleMaxLength {
		return domain.Invalid("title", fmt.Sprintf("must be between 1 and %d characters", titleMaxLength))
	}
	return nil
}
