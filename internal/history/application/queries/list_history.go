// Package queries holds the read-side handlers for the history context.
package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/serendip/internal/history/domain"
)

// DefaultListLimit bounds ListHistory when the caller supplies none.
const DefaultListLimit = 20

// HistoryEntryDTO is the read model for one accepted suggestion.
type HistoryEntryDTO struct {
	ID              string
	Category        string
	Title           string
	Description     string
	SlotStart       time.Time
	SlotEnd         time.Time
	DurationMinutes int
	WeatherContext  string
	AcceptedAt      time.Time
}

// ListHistoryQuery fetches recent acceptance history.
type ListHistoryQuery struct {
	UserID string
	Limit  int
}

// ListHistoryHandler handles the ListHistoryQuery.
type ListHistoryHandler struct {
	repo domain.Repository
}

// NewListHistoryHandler creates a new ListHistoryHandler.
func NewListHistoryHandler(repo domain.Repository) *ListHistoryHandler {
	return &ListHistoryHandler{repo: repo}
}

// Handle executes the ListHistoryQuery, newest entries first.
func (h *ListHistoryHandler) Handle(ctx context.Context, query ListHistoryQuery) ([]HistoryEntryDTO, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	entries, err := h.repo.ListRecent(ctx, query.UserID, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, toDTO(entry))
	}
	return dtos, nil
}

func toDTO(entry *domain.Entry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:              entry.ID.String(),
		Category:        string(entry.Category),
		Title:           entry.Title,
		Description:     entry.Description,
		SlotStart:       entry.SlotStart,
		SlotEnd:         entry.SlotEnd,
		DurationMinutes: entry.DurationMinutes,
		WeatherContext:  entry.WeatherContext,
		AcceptedAt:      entry.AcceptedAt,
	}
}
