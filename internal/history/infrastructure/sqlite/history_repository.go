// Package sqlite persists the acceptance log in the local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/serendip/internal/history/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// HistoryRepository implements domain.Repository using SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save appends an entry.
func (r *HistoryRepository) Save(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO history_entries (
			id, user_id, category, title, description,
			slot_start, slot_end, duration_minutes,
			weather_context, accepted_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID.String(),
		entry.UserID,
		string(entry.Category),
		entry.Title,
		entry.Description,
		entry.SlotStart.Format(time.RFC3339),
		entry.SlotEnd.Format(time.RFC3339),
		entry.DurationMinutes,
		entry.WeatherContext,
		entry.AcceptedAt.Format(time.RFC3339),
		entry.CreatedAt.Format(time.RFC3339),
		entry.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

const selectColumns = `
	SELECT id, user_id, category, title, description,
		slot_start, slot_end, duration_minutes,
		weather_context, accepted_at, created_at, updated_at
	FROM history_entries
`

// ListRecent returns the newest entries first.
func (r *HistoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Entry, error) {
	query := selectColumns + `
		WHERE user_id = ?
		ORDER BY accepted_at DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListByMonth returns the entries accepted in the given calendar month.
func (r *HistoryRepository) ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]*domain.Entry, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	query := selectColumns + `
		WHERE user_id = ? AND accepted_at >= ? AND accepted_at < ?
		ORDER BY accepted_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// CountByCategory returns per-category acceptance counts since a time.
func (r *HistoryRepository) CountByCategory(ctx context.Context, userID string, since time.Time) (map[suggestionsDomain.Category]int, error) {
	query := `
		SELECT category, COUNT(*)
		FROM history_entries
		WHERE user_id = ? AND accepted_at >= ?
		GROUP BY category
	`
	rows, err := r.db.QueryContext(ctx, query, userID, since.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[suggestionsDomain.Category]int)
	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[suggestionsDomain.Category(category)] = count
	}
	return counts, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	for rows.Next() {
		var (
			idStr, userID, category, title, description string
			slotStart, slotEnd                          string
			durationMinutes                             int
			weatherContext                              string
			acceptedAt, createdAt, updatedAt            string
		)
		err := rows.Scan(
			&idStr, &userID, &category, &title, &description,
			&slotStart, &slotEnd, &durationMinutes,
			&weatherContext, &acceptedAt, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid history entry id %q: %w", idStr, err)
		}
		entry := &domain.Entry{
			ID:              id,
			UserID:          userID,
			Category:        suggestionsDomain.Category(category),
			Title:           title,
			Description:     description,
			DurationMinutes: durationMinutes,
			WeatherContext:  weatherContext,
		}
		for _, field := range []struct {
			raw  string
			dest *time.Time
		}{
			{slotStart, &entry.SlotStart},
			{slotEnd, &entry.SlotEnd},
			{acceptedAt, &entry.AcceptedAt},
			{createdAt, &entry.CreatedAt},
			{updatedAt, &entry.UpdatedAt},
		} {
			parsed, err := time.Parse(time.RFC3339, field.raw)
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp in history entry %s: %w", idStr, err)
			}
			*field.dest = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
