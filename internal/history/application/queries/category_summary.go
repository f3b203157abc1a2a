package queries

import (
	"context"
	"sort"
	"time"

	"github.com/felixgeelhaar/serendip/internal/history/domain"
)

// CategoryCount is the acceptance tally for one category.
type CategoryCount struct {
	Category string
	Count    int
}

// CategorySummaryDTO aggregates a month of accepted suggestions.
type CategorySummaryDTO struct {
	Year       int
	Month      time.Month
	Total      int
	Categories []CategoryCount
}

// CategorySummaryQuery tallies acceptances per category for a month.
type CategorySummaryQuery struct {
	UserID string
	Year   int
	Month  time.Month
}

// CategorySummaryHandler handles the CategorySummaryQuery.
type CategorySummaryHandler struct {
	repo domain.Repository
}

// NewCategorySummaryHandler creates a new CategorySummaryHandler.
func NewCategorySummaryHandler(repo domain.Repository) *CategorySummaryHandler {
	return &CategorySummaryHandler{repo: repo}
}

// Handle executes the CategorySummaryQuery. Categories are sorted by count
// descending, ties broken by name so output is stable.
func (h *CategorySummaryHandler) Handle(ctx context.Context, query CategorySummaryQuery) (*CategorySummaryDTO, error) {
	entries, err := h.repo.ListByMonth(ctx, query.UserID, query.Year, query.Month)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		counts[string(entry.Category)]++
	}

	summary := &CategorySummaryDTO{
		Year:       query.Year,
		Month:      query.Month,
		Total:      len(entries),
		Categories: make([]CategoryCount, 0, len(counts)),
	}
	for category, count := range counts {
		summary.Categories = append(summary.Categories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		a, b := summary.Categories[i], summary.Categories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})
	return summary, nil
}
