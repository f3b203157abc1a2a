// Package queries holds the read-side handlers for the suggestions
// context.
package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	"github.com/felixgeelhaar/serendip/internal/suggestions/application/services"
	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
	"github.com/felixgeelhaar/serendip/internal/weather"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

// SuggestionDTO is the read model for a generated suggestion.
type SuggestionDTO struct {
	ID              string
	Category        string
	CategoryDisplay string
	Title           string
	Description     string
	DurationMinutes int
	SlotStart       time.Time
	SlotEnd         time.Time
	WeatherContext  string
}

// GenerateSuggestionQuery produces one suggestion for a free slot.
type GenerateSuggestionQuery struct {
	UserID    string
	SlotStart time.Time
	SlotEnd   time.Time
	Location  string
}

// GenerateSuggestionHandler handles the GenerateSuggestionQuery.
type GenerateSuggestionHandler struct {
	engine          *services.SuggestionEngine
	preferencesRepo preferencesDomain.Repository
	weatherProvider weather.Provider
	logger          *slog.Logger
}

// NewGenerateSuggestionHandler creates a new GenerateSuggestionHandler.
func NewGenerateSuggestionHandler(
	engine *services.SuggestionEngine,
	preferencesRepo preferencesDomain.Repository,
	weatherProvider weather.Provider,
	logger *slog.Logger,
) *GenerateSuggestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateSuggestionHandler{
		engine:          engine,
		preferencesRepo: preferencesRepo,
		weatherProvider: weatherProvider,
		logger:          logger,
	}
}

// Handle executes the GenerateSuggestionQuery. Weather trouble degrades to
// a weather-free suggestion rather than failing the query.
func (h *GenerateSuggestionHandler) Handle(ctx context.Context, query GenerateSuggestionQuery) (*SuggestionDTO, error) {
	slot, err := schedulingDomain.RehydrateFreeSlot(query.SlotStart, query.SlotEnd)
	if err != nil {
		return nil, err
	}

	model, err := loadModel(ctx, h.preferencesRepo, query.UserID)
	if err != nil {
		return nil, err
	}

	reading := h.currentWeather(ctx, query.Location)
	suggestion := h.engine.Generate(slot, reading, model.Categories(), model.LearnedWeights())
	return ToDTO(suggestion), nil
}

func (h *GenerateSuggestionHandler) currentWeather(ctx context.Context, location string) *domain.WeatherReading {
	reading, err := h.weatherProvider.Current(ctx, location)
	if err != nil {
		if !errors.Is(err, weather.ErrUnavailable) {
			h.logger.Warn("weather lookup failed, suggesting without it", "error", err)
		}
		return nil
	}
	return reading
}

// ToDTO converts a domain suggestion into its read model.
func ToDTO(s domain.Suggestion) *SuggestionDTO {
	return &SuggestionDTO{
		ID:              s.ID.String(),
		Category:        string(s.Category),
		CategoryDisplay: s.Category.DisplayName(),
		Title:           s.Title,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		SlotStart:       s.Slot.Start(),
		SlotEnd:         s.Slot.End(),
		WeatherContext:  s.WeatherContext,
	}
}

func loadModel(ctx context.Context, repo preferencesDomain.Repository, userID string) (*preferencesDomain.PreferenceModel, error) {
	model, err := repo.FindByUserID(ctx, userID)
	if errors.Is(err, preferencesDomain.ErrPreferencesNotFound) {
		return preferencesDomain.NewPreferenceModel(userID)
	}
	if err != nil {
		return nil, err
	}
	return model, nil
}
