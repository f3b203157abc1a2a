// Package commands holds the write-side handlers for the suggestions
// context.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	historyDomain "github.com/felixgeelhaar/serendip/internal/history/domain"
	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
	"github.com/felixgeelhaar/serendip/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// AcceptSuggestionCommand commits the user to a suggested activity. It
// carries the full suggestion because generation is stateless and nothing
// persists a suggestion before it is accepted.
type AcceptSuggestionCommand struct {
	UserID         string
	SuggestionID   string
	Category       string
	Title          string
	Description    string
	SlotStart      time.Time
	SlotEnd        time.Time
	WeatherContext string
}

// AcceptSuggestionHandler handles the AcceptSuggestionCommand.
type AcceptSuggestionHandler struct {
	preferencesRepo preferencesDomain.Repository
	historyRepo     historyDomain.Repository
	publisher       eventbus.Publisher
}

// NewAcceptSuggestionHandler creates a new AcceptSuggestionHandler.
func NewAcceptSuggestionHandler(
	preferencesRepo preferencesDomain.Repository,
	historyRepo historyDomain.Repository,
	publisher eventbus.Publisher,
) *AcceptSuggestionHandler {
	return &AcceptSuggestionHandler{
		preferencesRepo: preferencesRepo,
		historyRepo:     historyRepo,
		publisher:       publisher,
	}
}

// Handle executes the AcceptSuggestionCommand: the selection feeds the
// preference model, the suggestion is appended to history, and the
// acceptance event goes out on the bus.
func (h *AcceptSuggestionHandler) Handle(ctx context.Context, cmd AcceptSuggestionCommand) error {
	suggestion, err := rehydrateSuggestion(cmd)
	if err != nil {
		return err
	}

	model, err := h.loadOrCreateModel(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	model.RecordSelection(suggestion.Category)
	if err := h.preferencesRepo.Save(ctx, model); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	entry := historyDomain.NewEntry(cmd.UserID, suggestion, time.Now().UTC())
	if err := h.historyRepo.Save(ctx, entry); err != nil {
		return fmt.Errorf("save history entry: %w", err)
	}

	events := model.DomainEvents()
	events = append(events, domain.NewSuggestionAccepted(suggestion, cmd.UserID))
	if err := eventbus.PublishEvents(ctx, h.publisher, events...); err != nil {
		return err
	}
	model.ClearDomainEvents()
	return nil
}

func (h *AcceptSuggestionHandler) loadOrCreateModel(ctx context.Context, userID string) (*preferencesDomain.PreferenceModel, error) {
	model, err := h.preferencesRepo.FindByUserID(ctx, userID)
	if err == nil {
		return model, nil
	}
	if errors.Is(err, preferencesDomain.ErrPreferencesNotFound) {
		return preferencesDomain.NewPreferenceModel(userID)
	}
	return nil, err
}

func rehydrateSuggestion(cmd AcceptSuggestionCommand) (domain.Suggestion, error) {
	category, err := domain.ParseCategory(cmd.Category)
	if err != nil {
		return domain.Suggestion{}, err
	}
	slot, err := schedulingDomain.RehydrateFreeSlot(cmd.SlotStart, cmd.SlotEnd)
	if err != nil {
		return domain.Suggestion{}, err
	}

	id := uuid.New()
	if parsed, err := uuid.Parse(cmd.SuggestionID); err == nil {
		id = parsed
	}
	return domain.Suggestion{
		ID:              id,
		Category:        category,
		Title:           cmd.Title,
		Description:     cmd.Description,
		DurationMinutes: slot.DurationMinutes(),
		Slot:            slot,
		WeatherContext:  cmd.WeatherContext,
	}, nil
}
