package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/serendip/internal/shared/domain"
)

// SuggestionAccepted fires when the user commits to a suggested activity.
type SuggestionAccepted struct {
	sharedDomain.BaseEvent
	SuggestionID string    `json:"suggestion_id"`
	UserID       string    `json:"user_id"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	SlotStart    time.Time `json:"slot_start"`
	SlotEnd      time.Time `json:"slot_end"`
}

// NewSuggestionAccepted builds the acceptance event for a suggestion.
func NewSuggestionAccepted(s Suggestion, userID string) *SuggestionAccepted {
	return &SuggestionAccepted{
		BaseEvent:    sharedDomain.NewBaseEvent(s.ID, "suggestions.suggestion.accepted"),
		SuggestionID: s.ID.String(),
		UserID:       userID,
		Category:     string(s.Category),
		Title:        s.Title,
		SlotStart:    s.Slot.Start(),
		SlotEnd:      s.Slot.End(),
	}
}
