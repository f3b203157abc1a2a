// Package sqlite persists favorites in the local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/serendip/internal/favorites/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// FavoriteRepository implements domain.Repository using SQLite.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new SQLite favorite repository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Save inserts a favorite.
func (r *FavoriteRepository) Save(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, category, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		favorite.ID.String(),
		favorite.UserID,
		string(favorite.Category),
		favorite.Title,
		favorite.Description,
		favorite.CreatedAt.Format(time.RFC3339),
		favorite.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrFavoriteExists
	}
	return err
}

// Delete removes a favorite by id.
func (r *FavoriteRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND id = ?`,
		userID, id.String(),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// ListByUser returns the user's favorites, newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	query := `
		SELECT id, user_id, category, title, description, created_at, updated_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*domain.Favorite
	for rows.Next() {
		var (
			idStr, uid, category, title, description string
			createdAt, updatedAt                     string
		)
		if err := rows.Scan(&idStr, &uid, &category, &title, &description, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid favorite id %q: %w", idStr, err)
		}
		created, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at: %w", err)
		}
		updated, err := time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid updated_at: %w", err)
		}

		favorites = append(favorites, &domain.Favorite{
			ID:          id,
			UserID:      uid,
			Category:    suggestionsDomain.Category(category),
			Title:       title,
			Description: description,
			CreatedAt:   created,
			UpdatedAt:   updated,
		})
	}
	return favorites, rows.Err()
}
