// Package postgres persists favorites in PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/serendip/internal/favorites/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// FavoriteRepository implements domain.Repository using PostgreSQL.
type FavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository creates a new PostgreSQL favorite repository.
func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Save inserts a favorite.
func (r *FavoriteRepository) Save(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, category, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		string(favorite.Category),
		favorite.Title,
		favorite.Description,
		favorite.CreatedAt,
		favorite.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrFavoriteExists
	}
	return err
}

// Delete removes a favorite by id.
func (r *FavoriteRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// ListByUser returns the user's favorites, newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	query := `
		SELECT id, user_id, category, title, description, created_at, updated_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*domain.Favorite
	for rows.Next() {
		var (
			favorite domain.Favorite
			category string
		)
		if err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&category,
			&favorite.Title,
			&favorite.Description,
			&favorite.CreatedAt,
			&favorite.UpdatedAt,
		); err != nil {
			return nil, err
		}
		favorite.Category = suggestionsDomain.Category(category)
		favorites = append(favorites, &favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return favorites, nil
}
