package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelf/internal/domain"
	"shelf/internal/repository"
)

// Repository implements persistence interfaces on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// New constructs a Repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var (
	_ repository.UserRepository = (*Repository)(nil)
	_ repository.ItemRepository = (*Repository)(nil)
)

// CreateUser inserts a user. Email and username collisions map to ErrConflict.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

// GetUserByEmail fetches a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

// GetUserByID retrieves a user by identifier.
func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `SELECT id, email, username, password_hash, created_at FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateItem inserts an item and backfills database-generated timestamps.
func (r *Repository) CreateItem(ctx context.Context, item *domain.Item) error {
	const query = `INSERT INTO items (id, owner_id, title, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`
	row := r.pool.QueryRow(ctx, query, item.ID, item.OwnerID, item.Title, item.Description, item.Status)
	return row.Scan(&item.CreatedAt, &item.UpdatedAt)
}

// GetItem fetches one item scoped to its owner.
func (r *Repository) GetItem(ctx context.Context, id, ownerID uuid.UUID) (*domain.Item, error) {
	const query = `SELECT id, owner_id, title, description, status, created_at, updated_at
		FROM items WHERE id = $1 AND owner_id = $2`
	return scanItem(r.pool.QueryRow(ctx, query, id, ownerID))
}

// ListItems returns the owner's items, newest first.
func (r *Repository) ListItems(ctx context.Context, ownerID uuid.UUID) ([]domain.Item, error) {
	const query = `SELECT id, owner_id, title, description, status, created_at, updated_at
		FROM items WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateItem applies a partial update scoped to the owner; nil patch fields
// keep the stored values.
func (r *Repository) UpdateItem(ctx context.Context, id, ownerID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error) {
	const query = `UPDATE items
		SET title = COALESCE($3, title),
			description = COALESCE($4, description),
			status = COALESCE($5, status),
			updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, status, created_at, updated_at`
	return scanItem(r.pool.QueryRow(ctx, query, id, ownerID, patch.Title, patch.Description, patch.Status))
}

// DeleteItem removes an item scoped to the owner.
func (r *Repository) DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM items WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	if err := row.Scan(&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}
