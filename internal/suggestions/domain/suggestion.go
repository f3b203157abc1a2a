package domain

import (
	"fmt"

	"github.com/google/uuid"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

// Suggestion is a concrete activity proposal bound to a free slot.
type Suggestion struct {
	ID              uuid.UUID
	Category        Category
	Title           string
	Description     string
	DurationMinutes int
	Slot            schedulingDomain.FreeSlot
	WeatherContext  string
}

// NewSuggestion assembles a suggestion from a template and the slot it is
// proposed for. The duration is the slot's, not the template minimum.
func NewSuggestion(tmpl Template, slot schedulingDomain.FreeSlot, weather *WeatherReading) Suggestion {
	return Suggestion{
		ID:              uuid.New(),
		Category:        tmpl.Category,
		Title:           tmpl.Title,
		Description:     tmpl.Description,
		DurationMinutes: slot.DurationMinutes(),
		Slot:            slot,
		WeatherContext:  WeatherContextText(weather, tmpl.Category),
	}
}

// WeatherContextText renders a short human note about how the current
// weather suits the category. Empty when no reading is available.
func WeatherContextText(weather *WeatherReading, c Category) string {
	if weather == nil {
		return ""
	}
	profile := ProfileFor(c)
	temp := weather.TemperatureCelsius
	switch {
	case weather.OutdoorFriendly && profile.Outdoor:
		return fmt.Sprintf("Fine weather at %.0f°C — a good window to be outside.", temp)
	case !weather.OutdoorFriendly && profile.Indoor:
		return fmt.Sprintf("Poor weather outside (%.0f°C) — a good excuse to stay in.", temp)
	case !weather.OutdoorFriendly && profile.Outdoor:
		return fmt.Sprintf("Weather is rough at %.0f°C — consider an indoor alternative.", temp)
	default:
		return fmt.Sprintf("Currently %.0f°C.", temp)
	}
}
