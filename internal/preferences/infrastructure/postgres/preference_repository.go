// Package postgres persists preference models in PostgreSQL for
// multi-user deployments.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

type preferenceRow struct {
	id                       uuid.UUID
	minimumFreeMinutes       int
	workdayStart, workdayEnd int
	restDayStart, restDayEnd int
	createdAt, updatedAt     time.Time
}

// PreferenceRepository implements domain.Repository using PostgreSQL.
type PreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository creates a new PostgreSQL preference repository.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// FindByUserID loads the user's preference model.
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*domain.PreferenceModel, error) {
	query := `
		SELECT id, minimum_free_minutes,
			workday_start_hour, workday_end_hour,
			rest_day_start_hour, rest_day_end_hour,
			created_at, updated_at
		FROM preferences
		WHERE user_id = $1
	`
	var row preferenceRow
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&row.id, &row.minimumFreeMinutes,
		&row.workdayStart, &row.workdayEnd,
		&row.restDayStart, &row.restDayEnd,
		&row.createdAt, &row.updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPreferencesNotFound
	}
	if err != nil {
		return nil, err
	}

	workdayHours, err := schedulingDomain.NewActiveHoursConfig(row.workdayStart, row.workdayEnd)
	if err != nil {
		return nil, fmt.Errorf("stored workday hours: %w", err)
	}
	restDayHours, err := schedulingDomain.NewActiveHoursConfig(row.restDayStart, row.restDayEnd)
	if err != nil {
		return nil, fmt.Errorf("stored rest-day hours: %w", err)
	}

	categories, counts, err := r.loadCategories(ctx, row.id.String())
	if err != nil {
		return nil, err
	}

	return domain.RehydratePreferenceModel(
		row.id, userID, categories, counts,
		row.minimumFreeMinutes, workdayHours, restDayHours,
		row.createdAt, row.updatedAt,
	), nil
}

func (r *PreferenceRepository) loadCategories(ctx context.Context, preferenceID string) ([]suggestionsDomain.Category, map[suggestionsDomain.Category]int, error) {
	query := `
		SELECT category, enabled, selection_count
		FROM preference_categories
		WHERE preference_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, preferenceID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var categories []suggestionsDomain.Category
	counts := make(map[suggestionsDomain.Category]int)
	for rows.Next() {
		var (
			category string
			enabled  bool
			count    int
		)
		if err := rows.Scan(&category, &enabled, &count); err != nil {
			return nil, nil, err
		}
		c := suggestionsDomain.Category(category)
		if enabled {
			categories = append(categories, c)
		}
		if count > 0 {
			counts[c] = count
		}
	}
	return categories, counts, rows.Err()
}

// Save inserts or updates the model inside a transaction, replacing the
// category rows wholesale.
func (r *PreferenceRepository) Save(ctx context.Context, model *domain.PreferenceModel) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	upsert := `
		INSERT INTO preferences (
			id, user_id, minimum_free_minutes,
			workday_start_hour, workday_end_hour,
			rest_day_start_hour, rest_day_end_hour,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			minimum_free_minutes = EXCLUDED.minimum_free_minutes,
			workday_start_hour = EXCLUDED.workday_start_hour,
			workday_end_hour = EXCLUDED.workday_end_hour,
			rest_day_start_hour = EXCLUDED.rest_day_start_hour,
			rest_day_end_hour = EXCLUDED.rest_day_end_hour,
			updated_at = EXCLUDED.updated_at
	`
	_, err = tx.Exec(ctx, upsert,
		model.ID(),
		model.UserID(),
		model.MinimumFreeMinutes(),
		model.WorkdayHours().StartHour(),
		model.WorkdayHours().EndHour(),
		model.RestDayHours().StartHour(),
		model.RestDayHours().EndHour(),
		model.CreatedAt(),
		model.UpdatedAt(),
	)
	if err != nil {
		return err
	}

	var preferenceID string
	if err := tx.QueryRow(ctx, `SELECT id FROM preferences WHERE user_id = $1`, model.UserID()).Scan(&preferenceID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM preference_categories WHERE preference_id = $1`, preferenceID); err != nil {
		return err
	}

	insert := `
		INSERT INTO preference_categories (preference_id, category, position, enabled, selection_count)
		VALUES ($1, $2, $3, $4, $5)
	`
	enabled := make(map[suggestionsDomain.Category]struct{})
	position := 0
	for _, c := range model.Categories() {
		enabled[c] = struct{}{}
		if _, err := tx.Exec(ctx, insert, preferenceID, string(c), position, true, model.SelectionCount(c)); err != nil {
			return err
		}
		position++
	}
	for _, c := range suggestionsDomain.AllCategories() {
		if _, on := enabled[c]; on {
			continue
		}
		if count := model.SelectionCount(c); count > 0 {
			if _, err := tx.Exec(ctx, insert, preferenceID, string(c), position, false, count); err != nil {
				return err
			}
			position++
		}
	}

	return tx.Commit(ctx)
}
