package item

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"log/slog"

	"github.com/google/uuid"

	"shelf/internal/domain"
	"shelf/internal/repository"
)

type stubItemRepository struct {
	created    []*domain.Item
	lastID     uuid.UUID
	lastOwner  uuid.UUID
	lastPatch  domain.ItemPatch
	getResp    *domain.Item
	getErr     error
	updateErr  error
	deleteErr  error
	listResp   []domain.Item
	listCalled bool
}

func (s *stubItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	s.created = append(s.created, item)
	return nil
}

func (s *stubItemRepository) GetItem(ctx context.Context, id, ownerID uuid.UUID) (*domain.Item, error) {
	s.lastID, s.lastOwner = id, ownerID
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResp, nil
}

func (s *stubItemRepository) ListItems(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error) {
	s.listCalled = true
	s.lastOwner = ownerID
	return s.listResp, nil
}

func (s *stubItemRepository) UpdateItem(ctx context.Context, id, ownerID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error) {
	s.lastID, s.lastOwner, s.lastPatch = id, ownerID, patch
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &domain.Item{ID: id, OwnerID: ownerID}, nil
}

func (s *stubItemRepository) DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error {
	s.lastID, s.lastOwner = id, ownerID
	return s.deleteErr
}

func testService(repo repository.ItemRepository) Service {
	return New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateStampsOwnerAndDefaults(t *testing.T) {
	repo := &stubItemRepository{}
	svc := testService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateInput{Title: "  groceries  "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.OwnerID != owner {
		t.Fatalf("expected owner %s, got %s", owner, created.OwnerID)
	}
	if created.Title != "groceries" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Status != StatusDefault {
		t.Fatalf("expected default status, got %q", created.Status)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted item, got %d", len(repo.created))
	}
}

func TestCreateValidatesTitle(t *testing.T) {
	repo := &stubItemRepository{}
	svc := testService(repo)

	cases := map[string]string{
		"empty":    "",
		"blank":    "   ",
		"too long": strings.Repeat("x", titleMaxLength+1),
	}
	for name, title := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), uuid.New(), CreateInput{Title: title})
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != "title" {
				t.Fatalf("expected title field, got %q", vErr.Field)
			}
		})
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no persisted items, got %d", len(repo.created))
	}
}

func TestGetPassesOwnerScope(t *testing.T) {
	repo := &stubItemRepository{getErr: repository.ErrNotFound}
	svc := testService(repo)
	owner, id := uuid.New(), uuid.New()

	if _, err := svc.Get(context.Background(), owner, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.lastID != id || repo.lastOwner != owner {
		t.Fatalf("expected owner-scoped lookup, got id=%s owner=%s", repo.lastID, repo.lastOwner)
	}
}

func TestUpdateTrimsAndValidates(t *testing.T) {
	repo := &stubItemRepository{}
	svc := testService(repo)
	owner, id := uuid.New(), uuid.New()

	title := "  new title  "
	status := " done "
	if _, err := svc.Update(context.Background(), owner, id, UpdateInput{Title: &title, Status: &status}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.lastID != id || repo.lastOwner != owner {
		t.Fatalf("expected owner-scoped update, got id=%s owner=%s", repo.lastID, repo.lastOwner)
	}
	if repo.lastPatch.Title == nil || *repo.lastPatch.Title != "new title" {
		t.Fatalf("expected trimmed title patch, got %v", repo.lastPatch.Title)
	}
	if repo.lastPatch.Status == nil || *repo.lastPatch.Status != "done" {
		t.Fatalf("expected trimmed status patch, got %v", repo.lastPatch.Status)
	}
	if repo.lastPatch.Description != nil {
		t.Fatal("expected nil description patch")
	}

	empty := ""
	_, err := svc.Update(context.Background(), owner, id, UpdateInput{Status: &empty})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "status" {
		t.Fatalf("expected status ValidationError, got %v", err)
	}
}

func TestUpdateNotFoundPassthrough(t *testing.T) {
	repo := &stubItemRepository{updateErr: repository.ErrNotFound}
	svc := testService(repo)

	if _, err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateInput{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePassesOwnerScope(t *testing.T) {
	repo := &stubItemRepository{deleteErr: repository.ErrNotFound}
	svc := testService(repo)
	owner, id := uuid.New(), uuid.New()

	if err := svc.Delete(context.Background(), owner, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.lastID != id || repo.lastOwner != owner {
		t.Fatalf("expected owner-scoped delete, got id=%s owner=%s", repo.lastID, repo.lastOwner)
	}
}

func TestListScopesToOwner(t *testing.T) {
	owner := uuid.New()
	repo := &stubItemRepository{listResp: []domain.Item{{OwnerID: owner}}}
	svc := testService(repo)

	items, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !repo.listCalled || repo.lastOwner != owner {
		t.Fatal("expected owner-scoped list call")
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
}
