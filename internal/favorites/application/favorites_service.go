// Package application exposes the favorites use cases.
package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/serendip/internal/favorites/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// FavoritesService adds, removes, and lists saved activities.
type FavoritesService struct {
	repo domain.Repository
}

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(repo domain.Repository) *FavoritesService {
	return &FavoritesService{repo: repo}
}

// Add saves an activity as a favorite.
func (s *FavoritesService) Add(ctx context.Context, userID, category, title, description string) (*domain.Favorite, error) {
	c, err := suggestionsDomain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	favorite, err := domain.NewFavorite(userID, c, title, description)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove deletes a favorite by id.
func (s *FavoritesService) Remove(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// List returns the user's favorites, newest first.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}
