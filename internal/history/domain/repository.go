package domain

import (
	"context"
	"time"

	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// Repository persists the acceptance log.
type Repository interface {
	// Save appends an entry.
	Save(ctx context.Context, entry *Entry) error
	// ListRecent returns the newest entries first, at most limit of them.
	ListRecent(ctx context.Context, userID string, limit int) ([]*Entry, error)
	// ListByMonth returns the entries accepted in the given calendar
	// month, newest first.
	ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]*Entry, error)
	// CountByCategory returns how many entries were accepted per category
	// since the given time.
	CountByCategory(ctx context.Context, userID string, since time.Time) (map[suggestionsDomain.Category]int, error)
}
