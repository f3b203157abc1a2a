// Package queries holds the read-side handlers for the preferences context.
package queries

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
)

// PreferencesDTO is the read model for a user's preferences.
type PreferencesDTO struct {
	UserID             string
	Categories         []string
	SelectionCounts    map[string]int
	LearnedWeights     map[string]float64
	MinimumFreeMinutes int
	WorkdayStartHour   int
	WorkdayEndHour     int
	RestDayStartHour   int
	RestDayEndHour     int
}

// GetPreferencesQuery fetches the preferences for a user.
type GetPreferencesQuery struct {
	UserID string
}

// GetPreferencesHandler handles the GetPreferencesQuery.
type GetPreferencesHandler struct {
	repo domain.Repository
}

// NewGetPreferencesHandler creates a new GetPreferencesHandler.
func NewGetPreferencesHandler(repo domain.Repository) *GetPreferencesHandler {
	return &GetPreferencesHandler{repo: repo}
}

// Handle executes the GetPreferencesQuery. A user with nothing saved gets
// the default model rather than an error.
func (h *GetPreferencesHandler) Handle(ctx context.Context, query GetPreferencesQuery) (*PreferencesDTO, error) {
	model, err := h.repo.FindByUserID(ctx, query.UserID)
	if errors.Is(err, domain.ErrPreferencesNotFound) {
		model, err = domain.NewPreferenceModel(query.UserID)
	}
	if err != nil {
		return nil, err
	}
	return toDTO(model), nil
}

func toDTO(model *domain.PreferenceModel) *PreferencesDTO {
	categories := model.Categories()
	dto := &PreferencesDTO{
		UserID:             model.UserID(),
		Categories:         make([]string, 0, len(categories)),
		SelectionCounts:    make(map[string]int, len(categories)),
		LearnedWeights:     make(map[string]float64, len(categories)),
		MinimumFreeMinutes: model.MinimumFreeMinutes(),
		WorkdayStartHour:   model.WorkdayHours().StartHour(),
		WorkdayEndHour:     model.WorkdayHours().EndHour(),
		RestDayStartHour:   model.RestDayHours().StartHour(),
		RestDayEndHour:     model.RestDayHours().EndHour(),
	}
	weights := model.LearnedWeights()
	for _, c := range categories {
		dto.Categories = append(dto.Categories, string(c))
		dto.SelectionCounts[string(c)] = model.SelectionCount(c)
		dto.LearnedWeights[string(c)] = weights[c]
	}
	return dto
}
