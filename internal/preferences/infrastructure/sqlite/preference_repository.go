// Package sqlite persists preference models in the local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// PreferenceRepository implements domain.Repository using SQLite.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite preference repository.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// FindByUserID loads the user's preference model.
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*domain.PreferenceModel, error) {
	query := `
		SELECT id, minimum_free_minutes,
			workday_start_hour, workday_end_hour,
			rest_day_start_hour, rest_day_end_hour,
			created_at, updated_at
		FROM preferences
		WHERE user_id = ?
	`
	var (
		idStr                    string
		minimumFreeMinutes       int
		workdayStart, workdayEnd int
		restStart, restEnd       int
		createdAt, updatedAt     string
	)
	row := r.db.QueryRowContext(ctx, query, userID)
	err := row.Scan(&idStr, &minimumFreeMinutes, &workdayStart, &workdayEnd, &restStart, &restEnd, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPreferencesNotFound
	}
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid preference id %q: %w", idStr, err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}
	workdayHours, err := schedulingDomain.NewActiveHoursConfig(workdayStart, workdayEnd)
	if err != nil {
		return nil, fmt.Errorf("stored workday hours: %w", err)
	}
	restDayHours, err := schedulingDomain.NewActiveHoursConfig(restStart, restEnd)
	if err != nil {
		return nil, fmt.Errorf("stored rest-day hours: %w", err)
	}

	categories, counts, err := r.loadCategories(ctx, idStr)
	if err != nil {
		return nil, err
	}

	return domain.RehydratePreferenceModel(
		id, userID, categories, counts,
		minimumFreeMinutes, workdayHours, restDayHours,
		created, updated,
	), nil
}

func (r *PreferenceRepository) loadCategories(ctx context.Context, preferenceID string) ([]suggestionsDomain.Category, map[suggestionsDomain.Category]int, error) {
	query := `
		SELECT category, enabled, selection_count
		FROM preference_categories
		WHERE preference_id = ?
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, preferenceID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var categories []suggestionsDomain.Category
	counts := make(map[suggestionsDomain.Category]int)
	for rows.Next() {
		var (
			category string
			enabled  int
			count    int
		)
		if err := rows.Scan(&category, &enabled, &count); err != nil {
			return nil, nil, err
		}
		c := suggestionsDomain.Category(category)
		if enabled != 0 {
			categories = append(categories, c)
		}
		if count > 0 {
			counts[c] = count
		}
	}
	return categories, counts, rows.Err()
}

// Save inserts or updates the model. Category rows are replaced wholesale;
// disabled categories with history keep a row so their counts survive.
func (r *PreferenceRepository) Save(ctx context.Context, model *domain.PreferenceModel) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO preferences (
			id, user_id, minimum_free_minutes,
			workday_start_hour, workday_end_hour,
			rest_day_start_hour, rest_day_end_hour,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			minimum_free_minutes = excluded.minimum_free_minutes,
			workday_start_hour = excluded.workday_start_hour,
			workday_end_hour = excluded.workday_end_hour,
			rest_day_start_hour = excluded.rest_day_start_hour,
			rest_day_end_hour = excluded.rest_day_end_hour,
			updated_at = excluded.updated_at
	`
	_, err = tx.ExecContext(ctx, upsert,
		model.ID().String(),
		model.UserID(),
		model.MinimumFreeMinutes(),
		model.WorkdayHours().StartHour(),
		model.WorkdayHours().EndHour(),
		model.RestDayHours().StartHour(),
		model.RestDayHours().EndHour(),
		model.CreatedAt().Format(time.RFC3339),
		model.UpdatedAt().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	// The upsert may have kept an existing row with a different id; read
	// back the canonical one before replacing category rows.
	var preferenceID string
	if err := tx.QueryRowContext(ctx, `SELECT id FROM preferences WHERE user_id = ?`, model.UserID()).Scan(&preferenceID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM preference_categories WHERE preference_id = ?`, preferenceID); err != nil {
		return err
	}

	insert := `
		INSERT INTO preference_categories (preference_id, category, position, enabled, selection_count)
		VALUES (?, ?, ?, ?, ?)
	`
	enabled := make(map[suggestionsDomain.Category]struct{})
	position := 0
	for _, c := range model.Categories() {
		enabled[c] = struct{}{}
		if _, err := tx.ExecContext(ctx, insert, preferenceID, string(c), position, 1, model.SelectionCount(c)); err != nil {
			return err
		}
		position++
	}
	// Disabled categories that still carry history.
	for _, c := range suggestionsDomain.AllCategories() {
		if _, on := enabled[c]; on {
			continue
		}
		if count := model.SelectionCount(c); count > 0 {
			if _, err := tx.ExecContext(ctx, insert, preferenceID, string(c), position, 0, count); err != nil {
				return err
			}
			position++
		}
	}

	return tx.Commit()
}
