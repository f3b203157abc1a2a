// Package domain holds saved activities the user wants to come back to.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

var (
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrEmptyTitle       = errors.New("favorite title cannot be empty")
)

// Favorite is a saved activity. Favorites are identified to the user by
// category plus title, which is also the uniqueness rule.
type Favorite struct {
	ID          uuid.UUID
	UserID      string
	Category    suggestionsDomain.Category
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFavorite creates a favorite from a suggestion's content.
func NewFavorite(userID string, category suggestionsDomain.Category, title, description string) (*Favorite, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	now := time.Now().UTC()
	return &Favorite{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Repository persists favorites.
type Repository interface {
	// Save inserts a favorite, ErrFavoriteExists when the user already has
	// one with the same category and title.
	Save(ctx context.Context, favorite *Favorite) error
	// Delete removes a favorite by id, ErrFavoriteNotFound when absent.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	// ListByUser returns the user's favorites, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)
}
