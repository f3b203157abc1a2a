// Package services contains the suggestion engine: the weighting and
// sampling logic that turns a free slot plus context into a concrete
// activity proposal.
package services

import (
	"math/rand"
	"time"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// ShortSlotMinutes is the threshold below which a slot counts as short and
// the category's short-slot multiplier applies.
const ShortSlotMinutes = 30

// SuggestionEngine computes category weights for a slot and samples a
// suggestion from them. Weight computation is pure; only Sample and
// template selection consume randomness.
type SuggestionEngine struct {
	rng *rand.Rand
}

// NewSuggestionEngine creates an engine with its own time-seeded source.
func NewSuggestionEngine() *SuggestionEngine {
	return NewSeededSuggestionEngine(time.Now().UnixNano())
}

// NewSeededSuggestionEngine creates an engine with a fixed seed. Callers
// that need reproducible draws (tests, replay) use this constructor.
func NewSeededSuggestionEngine(seed int64) *SuggestionEngine {
	return &SuggestionEngine{rng: rand.New(rand.NewSource(seed))}
}

// ComputeWeights returns the final sampling weight for each category.
// The learned weight is the base; weather, time of day, and slot length
// each multiply on top. Categories missing from learned weigh zero.
func (e *SuggestionEngine) ComputeWeights(
	categories []domain.Category,
	learned map[domain.Category]float64,
	slot schedulingDomain.FreeSlot,
	weather *domain.WeatherReading,
) map[domain.Category]float64 {
	weights := make(map[domain.Category]float64, len(categories))
	for _, c := range categories {
		weights[c] = e.weightFor(c, learned[c], slot, weather)
	}
	return weights
}

func (e *SuggestionEngine) weightFor(
	c domain.Category,
	base float64,
	slot schedulingDomain.FreeSlot,
	weather *domain.WeatherReading,
) float64 {
	profile := domain.ProfileFor(c)
	weight := base

	if weather != nil {
		if weather.OutdoorFriendly {
			weight *= profile.OutdoorFriendlyMultiplier
		} else {
			weight *= profile.OutdoorUnfriendlyMultiplier
		}
		// Between the comfortable and extreme bands no temperature
		// adjustment applies at all.
		if weather.IsComfortableTemp() {
			weight *= profile.ComfortableTempMultiplier
		} else if weather.IsExtremeTemp() {
			weight *= profile.ExtremeTempMultiplier
		}
	}

	// Preferred and penalty ranges are checked independently; an hour
	// matching both takes both multipliers.
	hour := slot.StartHour()
	for _, r := range profile.PreferredHours {
		if r.Contains(hour) {
			weight *= profile.PreferredHourMultiplier
			break
		}
	}
	for _, r := range profile.PenaltyHours {
		if r.Contains(hour) {
			weight *= profile.PenaltyHourMultiplier
			break
		}
	}

	if slot.DurationMinutes() < ShortSlotMinutes {
		weight *= profile.ShortSlotMultiplier
	}
	return weight
}

// Sample draws a category proportionally to its weight. When every weight
// is zero or negative the first listed category wins, so a suggestion is
// always produced. An empty category list falls back to cafe.
func (e *SuggestionEngine) Sample(categories []domain.Category, weights map[domain.Category]float64) domain.Category {
	if len(categories) == 0 {
		return domain.CategoryCafe
	}

	total := 0.0
	for _, c := range categories {
		if w := weights[c]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return categories[0]
	}

	target := e.rng.Float64() * total
	cursor := 0.0
	for _, c := range categories {
		w := weights[c]
		if w <= 0 {
			continue
		}
		cursor += w
		if target < cursor {
			return c
		}
	}
	// Floating point accumulation can leave target a hair past the last
	// cursor position.
	return categories[len(categories)-1]
}

// Generate produces one suggestion for the slot: weight, sample, then fill
// in a template that fits the slot's duration.
func (e *SuggestionEngine) Generate(
	slot schedulingDomain.FreeSlot,
	weather *domain.WeatherReading,
	categories []domain.Category,
	learned map[domain.Category]float64,
) domain.Suggestion {
	weights := e.ComputeWeights(categories, learned, slot, weather)
	category := e.Sample(categories, weights)
	return domain.NewSuggestion(e.selectTemplate(category, slot.DurationMinutes()), slot, weather)
}

// GenerateAlternatives produces one suggestion per category, in the given
// order, skipping the excluded category. The zero Category excludes nothing.
func (e *SuggestionEngine) GenerateAlternatives(
	slot schedulingDomain.FreeSlot,
	weather *domain.WeatherReading,
	categories []domain.Category,
	excluding domain.Category,
) []domain.Suggestion {
	alternatives := make([]domain.Suggestion, 0, len(categories))
	for _, c := range categories {
		if c == excluding {
			continue
		}
		alternatives = append(alternatives, domain.NewSuggestion(e.selectTemplate(c, slot.DurationMinutes()), slot, weather))
	}
	return alternatives
}

// selectTemplate picks a random template whose minimum duration fits the
// slot. When the slot is shorter than every minimum the shortest template
// is used anyway rather than producing nothing.
func (e *SuggestionEngine) selectTemplate(c domain.Category, durationMinutes int) domain.Template {
	templates := domain.TemplatesFor(c)
	if len(templates) == 0 {
		// A stale persisted category has no templates; cafe always does.
		templates = domain.TemplatesFor(domain.CategoryCafe)
	}
	fitting := make([]domain.Template, 0, len(templates))
	for _, tmpl := range templates {
		if tmpl.MinDurationMinutes <= durationMinutes {
			fitting = append(fitting, tmpl)
		}
	}
	if len(fitting) == 0 {
		return templates[0]
	}
	return fitting[e.rng.Intn(len(fitting))]
}
