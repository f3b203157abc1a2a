// Package commands holds the write-side handlers for the preferences
// context.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

var ErrNoCategoriesEnabled = errors.New("at least one category must stay enabled")

// UpdatePreferencesCommand carries the settings to change. Nil fields are
// left untouched.
type UpdatePreferencesCommand struct {
	UserID             string
	Categories         []string
	MinimumFreeMinutes *int
	WorkdayStartHour   *int
	WorkdayEndHour     *int
	RestDayStartHour   *int
	RestDayEndHour     *int
}

// UpdatePreferencesHandler handles the UpdatePreferencesCommand.
type UpdatePreferencesHandler struct {
	repo domain.Repository
}

// NewUpdatePreferencesHandler creates a new UpdatePreferencesHandler.
func NewUpdatePreferencesHandler(repo domain.Repository) *UpdatePreferencesHandler {
	return &UpdatePreferencesHandler{repo: repo}
}

// Handle executes the UpdatePreferencesCommand. A missing model is created
// with defaults first, so the first settings change also provisions the
// user.
func (h *UpdatePreferencesHandler) Handle(ctx context.Context, cmd UpdatePreferencesCommand) error {
	model, err := LoadOrCreate(ctx, h.repo, cmd.UserID)
	if err != nil {
		return err
	}

	if cmd.Categories != nil {
		if len(cmd.Categories) == 0 {
			return ErrNoCategoriesEnabled
		}
		categories := make([]suggestionsDomain.Category, 0, len(cmd.Categories))
		for _, raw := range cmd.Categories {
			c, err := suggestionsDomain.ParseCategory(raw)
			if err != nil {
				return fmt.Errorf("category %q: %w", raw, err)
			}
			categories = append(categories, c)
		}
		model.SetCategories(categories)
	}

	if cmd.MinimumFreeMinutes != nil {
		if err := model.SetMinimumFreeMinutes(*cmd.MinimumFreeMinutes); err != nil {
			return err
		}
	}

	if cmd.WorkdayStartHour != nil || cmd.WorkdayEndHour != nil || cmd.RestDayStartHour != nil || cmd.RestDayEndHour != nil {
		workday, err := mergeHours(model.WorkdayHours(), cmd.WorkdayStartHour, cmd.WorkdayEndHour)
		if err != nil {
			return fmt.Errorf("workday hours: %w", err)
		}
		restDay, err := mergeHours(model.RestDayHours(), cmd.RestDayStartHour, cmd.RestDayEndHour)
		if err != nil {
			return fmt.Errorf("rest-day hours: %w", err)
		}
		model.SetActiveHours(workday, restDay)
	}

	return h.repo.Save(ctx, model)
}

func mergeHours(current schedulingDomain.ActiveHoursConfig, start, end *int) (schedulingDomain.ActiveHoursConfig, error) {
	startHour := current.StartHour()
	endHour := current.EndHour()
	if start != nil {
		startHour = *start
	}
	if end != nil {
		endHour = *end
	}
	return schedulingDomain.NewActiveHoursConfig(startHour, endHour)
}

// LoadOrCreate fetches the user's preference model, creating a default one
// when the user has none yet.
func LoadOrCreate(ctx context.Context, repo domain.Repository, userID string) (*domain.PreferenceModel, error) {
	model, err := repo.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrPreferencesNotFound) {
		return domain.NewPreferenceModel(userID)
	}
	if err != nil {
		return nil, err
	}
	return model, nil
}
