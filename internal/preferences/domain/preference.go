// Package domain models a user's suggestion preferences: the enabled
// categories, the learned selection history, and the scheduling settings
// that shape free-slot discovery.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
	sharedDomain "github.com/felixgeelhaar/serendip/internal/shared/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

var (
	ErrEmptyUserID            = errors.New("user id cannot be empty")
	ErrInvalidMinimumFreeTime = errors.New("minimum free time must be positive")
)

// MinimumLearnedWeight is the floor every enabled category's learned weight
// is guaranteed, so no category ever starves out of the rotation. With many
// categories the floor switches to 1/(3n).
const MinimumLearnedWeight = 0.05

// DefaultMinimumFreeMinutes is the slot length threshold applied when the
// user has not configured one.
const DefaultMinimumFreeMinutes = 30

// PreferenceModel is the per-user preference aggregate. It owns the enabled
// category list, the per-category selection counts the learned weights are
// derived from, and the user's scheduling settings.
type PreferenceModel struct {
	sharedDomain.BaseAggregateRoot
	userID             string
	categories         []suggestionsDomain.Category
	selectionCounts    map[suggestionsDomain.Category]int
	minimumFreeMinutes int
	workdayHours       schedulingDomain.ActiveHoursConfig
	restDayHours       schedulingDomain.ActiveHoursConfig
}

// NewPreferenceModel creates a preference model with every category
// enabled, no selection history, and default scheduling settings.
func NewPreferenceModel(userID string) (*PreferenceModel, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return &PreferenceModel{
		BaseAggregateRoot:  sharedDomain.NewBaseAggregateRoot(),
		userID:             userID,
		categories:         suggestionsDomain.AllCategories(),
		selectionCounts:    make(map[suggestionsDomain.Category]int),
		minimumFreeMinutes: DefaultMinimumFreeMinutes,
		workdayHours:       schedulingDomain.DefaultWorkdayHours(),
		restDayHours:       schedulingDomain.DefaultRestDayHours(),
	}, nil
}

// RehydratePreferenceModel recreates the aggregate from persisted state.
func RehydratePreferenceModel(
	id uuid.UUID,
	userID string,
	categories []suggestionsDomain.Category,
	selectionCounts map[suggestionsDomain.Category]int,
	minimumFreeMinutes int,
	workdayHours, restDayHours schedulingDomain.ActiveHoursConfig,
	createdAt, updatedAt time.Time,
) *PreferenceModel {
	if selectionCounts == nil {
		selectionCounts = make(map[suggestionsDomain.Category]int)
	}
	return &PreferenceModel{
		BaseAggregateRoot:  sharedDomain.RehydrateBaseAggregateRoot(sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt)),
		userID:             userID,
		categories:         categories,
		selectionCounts:    selectionCounts,
		minimumFreeMinutes: minimumFreeMinutes,
		workdayHours:       workdayHours,
		restDayHours:       restDayHours,
	}
}

func (m *PreferenceModel) UserID() string { return m.userID }

// Categories returns the enabled categories in their configured order.
func (m *PreferenceModel) Categories() []suggestionsDomain.Category {
	out := make([]suggestionsDomain.Category, len(m.categories))
	copy(out, m.categories)
	return out
}

// SelectionCount returns how often the category has been chosen.
func (m *PreferenceModel) SelectionCount(c suggestionsDomain.Category) int {
	return m.selectionCounts[c]
}

// TotalSelections returns the selection count summed over the currently
// enabled categories. History for disabled categories does not count.
func (m *PreferenceModel) TotalSelections() int {
	total := 0
	for _, c := range m.categories {
		total += m.selectionCounts[c]
	}
	return total
}

func (m *PreferenceModel) MinimumFreeMinutes() int { return m.minimumFreeMinutes }

func (m *PreferenceModel) WorkdayHours() schedulingDomain.ActiveHoursConfig { return m.workdayHours }
func (m *PreferenceModel) RestDayHours() schedulingDomain.ActiveHoursConfig { return m.restDayHours }

// ActiveHoursPolicy returns the policy the slot finder applies for this
// user.
func (m *PreferenceModel) ActiveHoursPolicy() schedulingDomain.ActiveHoursPolicy {
	return schedulingDomain.NewActiveHoursPolicy(m.workdayHours, m.restDayHours)
}

// LearnedWeights derives the per-category sampling weights from the
// selection history. Every enabled category gets at least the floor weight;
// the remainder is split proportionally to selection counts. With no
// history the distribution is uniform. With few categories the floor rises
// to 1/(3n); the weights are intentionally not renormalized when the floors
// alone exceed one.
func (m *PreferenceModel) LearnedWeights() map[suggestionsDomain.Category]float64 {
	n := len(m.categories)
	weights := make(map[suggestionsDomain.Category]float64, n)
	if n == 0 {
		return weights
	}

	uniform := 1.0 / float64(n)
	total := m.TotalSelections()
	if total == 0 {
		for _, c := range m.categories {
			weights[c] = uniform
		}
		return weights
	}

	minimum := MinimumLearnedWeight
	if floor := 1.0 / (3.0 * float64(n)); floor > minimum {
		minimum = floor
	}
	distributable := 1.0 - minimum*float64(n)
	if distributable < 0 {
		distributable = 0
	}
	for _, c := range m.categories {
		share := float64(m.selectionCounts[c]) / float64(total)
		weights[c] = minimum + share*distributable
	}
	return weights
}

// RecordSelection increments the selection count for a category. Counting
// is unconditional so history survives a category being disabled and
// re-enabled later.
func (m *PreferenceModel) RecordSelection(c suggestionsDomain.Category) {
	m.selectionCounts[c]++
	m.Touch()
	m.AddDomainEvent(NewSelectionRecorded(m.ID(), m.userID, c, m.selectionCounts[c]))
}

// ResetLearning discards all selection history.
func (m *PreferenceModel) ResetLearning() {
	m.selectionCounts = make(map[suggestionsDomain.Category]int)
	m.Touch()
	m.AddDomainEvent(NewLearningReset(m.ID(), m.userID))
}

// SetCategories replaces the enabled category list. Selection history is
// preserved for every category, including ones being disabled.
func (m *PreferenceModel) SetCategories(categories []suggestionsDomain.Category) {
	m.categories = make([]suggestionsDomain.Category, len(categories))
	copy(m.categories, categories)
	m.Touch()
}

// SetMinimumFreeMinutes updates the slot length threshold.
func (m *PreferenceModel) SetMinimumFreeMinutes(minutes int) error {
	if minutes <= 0 {
		return ErrInvalidMinimumFreeTime
	}
	m.minimumFreeMinutes = minutes
	m.Touch()
	return nil
}

// SetActiveHours updates the workday and rest-day windows.
func (m *PreferenceModel) SetActiveHours(workday, restDay schedulingDomain.ActiveHoursConfig) {
	m.workdayHours = workday
	m.restDayHours = restDay
	m.Touch()
}
