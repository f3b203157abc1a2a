package queries

import (
	"context"
	"log/slog"
	"time"

	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	"github.com/felixgeelhaar/serendip/internal/suggestions/application/services"
	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
	"github.com/felixgeelhaar/serendip/internal/weather"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

// ListAlternativesQuery produces one suggestion per remaining category,
// skipping the category the user just turned down.
type ListAlternativesQuery struct {
	UserID    string
	SlotStart time.Time
	SlotEnd   time.Time
	Location  string
	Excluding string
}

// ListAlternativesHandler handles the ListAlternativesQuery.
type ListAlternativesHandler struct {
	engine          *services.SuggestionEngine
	preferencesRepo preferencesDomain.Repository
	weatherProvider weather.Provider
	logger          *slog.Logger
}

// NewListAlternativesHandler creates a new ListAlternativesHandler.
func NewListAlternativesHandler(
	engine *services.SuggestionEngine,
	preferencesRepo preferencesDomain.Repository,
	weatherProvider weather.Provider,
	logger *slog.Logger,
) *ListAlternativesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListAlternativesHandler{
		engine:          engine,
		preferencesRepo: preferencesRepo,
		weatherProvider: weatherProvider,
		logger:          logger,
	}
}

// Handle executes the ListAlternativesQuery. An unknown Excluding value
// excludes nothing.
func (h *ListAlternativesHandler) Handle(ctx context.Context, query ListAlternativesQuery) ([]*SuggestionDTO, error) {
	slot, err := schedulingDomain.RehydrateFreeSlot(query.SlotStart, query.SlotEnd)
	if err != nil {
		return nil, err
	}

	model, err := loadModel(ctx, h.preferencesRepo, query.UserID)
	if err != nil {
		return nil, err
	}

	var excluding domain.Category
	if parsed, err := domain.ParseCategory(query.Excluding); err == nil {
		excluding = parsed
	}

	reading := h.currentWeather(ctx, query.Location)
	alternatives := h.engine.GenerateAlternatives(slot, reading, model.Categories(), excluding)

	dtos := make([]*SuggestionDTO, 0, len(alternatives))
	for _, s := range alternatives {
		dtos = append(dtos, ToDTO(s))
	}
	return dtos, nil
}

func (h *ListAlternativesHandler) currentWeather(ctx context.Context, location string) *domain.WeatherReading {
	reading, err := h.weatherProvider.Current(ctx, location)
	if err != nil {
		return nil
	}
	return reading
}
