// Package domain holds the activity categories, their static weighting
// profiles, the suggestion templates, and the suggestion value itself.
package domain

import "errors"

var ErrUnknownCategory = errors.New("unknown suggestion category")

// Category is an activity category a suggestion can belong to.
type Category string

const (
	CategoryCafe       Category = "cafe"
	CategoryWalk       Category = "walk"
	CategoryReading    Category = "reading"
	CategoryMusic      Category = "music"
	CategoryArt        Category = "art"
	CategoryFitness    Category = "fitness"
	CategoryShopping   Category = "shopping"
	CategoryGourmet    Category = "gourmet"
	CategoryMovie      Category = "movie"
	CategoryMeditation Category = "meditation"
)

// AllCategories returns every known category in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryCafe,
		CategoryWalk,
		CategoryReading,
		CategoryMusic,
		CategoryArt,
		CategoryFitness,
		CategoryShopping,
		CategoryGourmet,
		CategoryMovie,
		CategoryMeditation,
	}
}

// ParseCategory converts a raw string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := weightProfiles[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCafe:
		return "Cafe"
	case CategoryWalk:
		return "Walk"
	case CategoryReading:
		return "Reading"
	case CategoryMusic:
		return "Music"
	case CategoryArt:
		return "Art"
	case CategoryFitness:
		return "Fitness"
	case CategoryShopping:
		return "Shopping"
	case CategoryGourmet:
		return "Gourmet"
	case CategoryMovie:
		return "Movie"
	case CategoryMeditation:
		return "Relaxation"
	default:
		return string(c)
	}
}

func (c Category) String() string { return string(c) }
