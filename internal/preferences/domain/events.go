package domain

import (
	"github.com/google/uuid"

	sharedDomain "github.com/felixgeelhaar/serendip/internal/shared/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// SelectionRecorded fires every time a category selection is counted.
type SelectionRecorded struct {
	sharedDomain.BaseEvent
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func NewSelectionRecorded(modelID uuid.UUID, userID string, c suggestionsDomain.Category, count int) *SelectionRecorded {
	return &SelectionRecorded{
		BaseEvent: sharedDomain.NewBaseEvent(modelID, "preferences.selection.recorded"),
		UserID:    userID,
		Category:  string(c),
		Count:     count,
	}
}

// LearningReset fires when the selection history is wiped.
type LearningReset struct {
	sharedDomain.BaseEvent
	UserID string `json:"user_id"`
}

func NewLearningReset(modelID uuid.UUID, userID string) *LearningReset {
	return &LearningReset{
		BaseEvent: sharedDomain.NewBaseEvent(modelID, "preferences.learning.reset"),
		UserID:    userID,
	}
}
