// Package postgres persists the acceptance log in PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/serendip/internal/history/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// HistoryRepository implements domain.Repository using PostgreSQL.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new PostgreSQL history repository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Save appends an entry.
func (r *HistoryRepository) Save(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO history_entries (
			id, user_id, category, title, description,
			slot_start, slot_end, duration_minutes,
			weather_context, accepted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		string(entry.Category),
		entry.Title,
		entry.Description,
		entry.SlotStart,
		entry.SlotEnd,
		entry.DurationMinutes,
		entry.WeatherContext,
		entry.AcceptedAt,
		entry.CreatedAt,
		entry.UpdatedAt,
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
		WHERE user_id = $1
		ORDER BY accepted_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListByMonth returns the entries accepted in the given calendar month.
func (r *HistoryRepository) ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]*domain.Entry, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	query := selectColumns + `
		WHERE user_id = $1 AND accepted_at >= $2 AND accepted_at < $3
		ORDER BY accepted_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CountByCategory returns per-category acceptance counts since a time.
func (r *HistoryRepository) CountByCategory(ctx context.Context, userID string, since time.Time) (map[suggestionsDomain.Category]int, error) {
	query := `
		SELECT category, COUNT(*)
		FROM history_entries
		WHERE user_id = $1 AND accepted_at >= $2
		GROUP BY category
	`
	rows, err := r.pool.Query(ctx, query, userID, since)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*domain.Entry, error) {
	var (
		entry    domain.Entry
		category string
	)
	err := row.Scan(
		&entry.ID, &entry.UserID, &category, &entry.Title, &entry.Description,
		&entry.SlotStart, &entry.SlotEnd, &entry.DurationMinutes,
		&entry.WeatherContext, &entry.AcceptedAt, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Category = suggestionsDomain.Category(category)
	return &entry, nil
}
