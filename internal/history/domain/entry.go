// Package domain records which suggestions the user actually accepted.
// Entries are append-only; the preference model learns from them but the
// log itself is never rewritten.
package domain

import (
	"time"

	"github.com/google/uuid"

	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// Entry is one accepted suggestion.
type Entry struct {
	ID              uuid.UUID
	UserID          string
	Category        suggestionsDomain.Category
	Title           string
	Description     string
	SlotStart       time.Time
	SlotEnd         time.Time
	DurationMinutes int
	WeatherContext  string
	AcceptedAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewEntry records the acceptance of a suggestion.
func NewEntry(userID string, s suggestionsDomain.Suggestion, acceptedAt time.Time) *Entry {
	now := time.Now().UTC()
	return &Entry{
		ID:              uuid.New(),
		UserID:          userID,
		Category:        s.Category,
		Title:           s.Title,
		Description:     s.Description,
		SlotStart:       s.Slot.Start(),
		SlotEnd:         s.Slot.End(),
		DurationMinutes: s.DurationMinutes,
		WeatherContext:  s.WeatherContext,
		AcceptedAt:      acceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
