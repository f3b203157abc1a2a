package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Run("accepts every known category", func(t *testing.T) {
		for _, c := range AllCategories() {
			parsed, err := ParseCategory(string(c))
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := ParseCategory("skydiving")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCategory("")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})
}

func TestAllCategories(t *testing.T) {
	all := AllCategories()

	assert.Len(t, all, 10)
	assert.Equal(t, CategoryCafe, all[0], "cafe anchors the canonical order")

	seen := make(map[Category]struct{}, len(all))
	for _, c := range all {
		_, dup := seen[c]
		assert.False(t, dup, "category %s listed twice", c)
		seen[c] = struct{}{}
		assert.NotEmpty(t, c.DisplayName())
	}
}

func TestProfileFor(t *testing.T) {
	t.Run("every category has a profile", func(t *testing.T) {
		for _, c := range AllCategories() {
			p := ProfileFor(c)
			assert.True(t, p.Outdoor || p.Indoor, "category %s has no venue", c)
			assert.Greater(t, p.ShortSlotMultiplier, 0.0, "category %s", c)
			assert.Greater(t, p.PreferredHourMultiplier, 0.0, "category %s", c)
			assert.Greater(t, p.PenaltyHourMultiplier, 0.0, "category %s", c)
		}
	})

	t.Run("unknown category gets a neutral profile", func(t *testing.T) {
		p := ProfileFor(Category("bungee"))
		assert.Equal(t, 1.0, p.OutdoorFriendlyMultiplier)
		assert.Equal(t, 1.0, p.OutdoorUnfriendlyMultiplier)
		assert.Equal(t, 1.0, p.ExtremeTempMultiplier)
		assert.Equal(t, 1.0, p.ComfortableTempMultiplier)
		assert.Equal(t, 1.0, p.ShortSlotMultiplier)
		assert.Empty(t, p.PreferredHours)
		assert.Empty(t, p.PenaltyHours)
	})

	t.Run("hour ranges are inclusive on both ends", func(t *testing.T) {
		r := HourRange{From: 9, To: 11}
		assert.True(t, r.Contains(9))
		assert.True(t, r.Contains(11))
		assert.False(t, r.Contains(8))
		assert.False(t, r.Contains(12))
	})
}
