package domain

import (
	"context"
	"errors"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

// Repository persists preference models keyed by user.
type Repository interface {
	// FindByUserID loads the user's model, ErrPreferencesNotFound when
	// none has been saved yet.
	FindByUserID(ctx context.Context, userID string) (*PreferenceModel, error)
	// Save inserts or updates the model.
	Save(ctx context.Context, model *PreferenceModel) error
}
