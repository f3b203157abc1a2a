package domain

// HourRange is an inclusive range of clock hours in [0, 23].
type HourRange struct {
	From int
	To   int
}

// Contains reports whether the hour falls inside the range.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.From && hour <= r.To
}

// WeightProfile is the static weather/time/duration sensitivity of a
// category. The table below is fixed domain data; it is never derived or
// extended at runtime.
type WeightProfile struct {
	Outdoor bool
	Indoor  bool

	// Weather multipliers.
	OutdoorFriendlyMultiplier   float64
	OutdoorUnfriendlyMultiplier float64
	ExtremeTempMultiplier       float64
	ComfortableTempMultiplier   float64

	// Time-of-day multipliers. Preferred and penalty ranges are independent:
	// an hour matching both gets both multipliers applied.
	PreferredHours          []HourRange
	PenaltyHours            []HourRange
	PreferredHourMultiplier float64
	PenaltyHourMultiplier   float64

	// Applied when the slot is shorter than 30 minutes.
	ShortSlotMultiplier float64
}

// ProfileFor returns the weighting profile for a category. Unknown
// categories get a neutral all-ones profile so a stale persisted category
// cannot poison the weight computation.
func ProfileFor(c Category) WeightProfile {
	if p, ok := weightProfiles[c]; ok {
		return p
	}
	return WeightProfile{
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.0,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.0,
		PreferredHourMultiplier:     1.0,
		PenaltyHourMultiplier:       1.0,
		ShortSlotMultiplier:         1.0,
	}
}

var weightProfiles = map[Category]WeightProfile{
	CategoryCafe: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.5,
		ExtremeTempMultiplier:       1.3,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 9, To: 11}, {From: 14, To: 16}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       1.0,
		ShortSlotMultiplier:         0.7,
	},
	CategoryWalk: {
		Outdoor:                     true,
		OutdoorFriendlyMultiplier:   1.5,
		OutdoorUnfriendlyMultiplier: 0.3,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.3,
		PreferredHours:              []HourRange{{From: 8, To: 10}, {From: 16, To: 18}},
		PenaltyHours:                []HourRange{{From: 20, To: 23}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       0.5,
		ShortSlotMultiplier:         0.5,
	},
	CategoryReading: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.3,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 19, To: 23}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       1.0,
		ShortSlotMultiplier:         1.2,
	},
	CategoryMusic: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.3,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 14, To: 17}, {From: 19, To: 22}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       1.0,
		ShortSlotMultiplier:         0.6,
	},
	CategoryArt: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.4,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 10, To: 16}},
		PenaltyHours:                []HourRange{{From: 20, To: 23}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       0.6,
		ShortSlotMultiplier:         0.5,
	},
	CategoryFitness: {
		Outdoor:                     true,
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.3,
		OutdoorUnfriendlyMultiplier: 0.8,
		ExtremeTempMultiplier:       0.8,
		ComfortableTempMultiplier:   1.3,
		PreferredHours:              []HourRange{{From: 7, To: 10}, {From: 16, To: 19}},
		PenaltyHours:                []HourRange{{From: 22, To: 23}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       0.5,
		ShortSlotMultiplier:         0.7,
	},
	CategoryShopping: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.1,
		OutdoorUnfriendlyMultiplier: 1.3,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 11, To: 18}},
		PenaltyHours:                []HourRange{{From: 21, To: 23}},
		PreferredHourMultiplier:     1.2,
		PenaltyHourMultiplier:       0.5,
		ShortSlotMultiplier:         0.6,
	},
	CategoryGourmet: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.3,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 11, To: 13}, {From: 17, To: 20}},
		PenaltyHours:                []HourRange{{From: 6, To: 9}},
		PreferredHourMultiplier:     1.4,
		PenaltyHourMultiplier:       0.5,
		ShortSlotMultiplier:         0.6,
	},
	CategoryMovie: {
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.0,
		OutdoorUnfriendlyMultiplier: 1.5,
		ExtremeTempMultiplier:       1.2,
		ComfortableTempMultiplier:   1.0,
		PreferredHours:              []HourRange{{From: 13, To: 16}, {From: 18, To: 21}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       1.0,
		ShortSlotMultiplier:         0.3,
	},
	CategoryMeditation: {
		Outdoor:                     true,
		Indoor:                      true,
		OutdoorFriendlyMultiplier:   1.3,
		OutdoorUnfriendlyMultiplier: 1.0,
		ExtremeTempMultiplier:       1.0,
		ComfortableTempMultiplier:   1.2,
		PreferredHours:              []HourRange{{From: 7, To: 10}, {From: 17, To: 20}},
		PreferredHourMultiplier:     1.3,
		PenaltyHourMultiplier:       1.0,
		ShortSlotMultiplier:         0.8,
	},
}
