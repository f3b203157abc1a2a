package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/serendip/internal/favorites/domain"
	dbsqlite "github.com/felixgeelhaar/serendip/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/serendip/internal/shared/infrastructure/migrations"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := dbsqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.RunSQLiteMigrations(context.Background(), db))
	return db
}

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoriteRepository(setupTestDB(t))

	mustFavorite := func(t *testing.T, userID, title string) *domain.Favorite {
		t.Helper()
		f, err := domain.NewFavorite(userID, suggestionsDomain.CategoryCafe, title, "a good spot")
		require.NoError(t, err)
		return f
	}

	t.Run("save and list", func(t *testing.T) {
		first := mustFavorite(t, "user-1", "Corner cafe")
		second := mustFavorite(t, "user-1", "Station cafe")
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))
		require.NoError(t, repo.Save(ctx, mustFavorite(t, "user-2", "Corner cafe")))

		got, err := repo.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		titles := []string{got[0].Title, got[1].Title}
		assert.ElementsMatch(t, []string{"Corner cafe", "Station cafe"}, titles)
		assert.Equal(t, suggestionsDomain.CategoryCafe, got[0].Category)
	})

	t.Run("duplicate category and title is rejected", func(t *testing.T) {
		err := repo.Save(ctx, mustFavorite(t, "user-1", "Corner cafe"))
		assert.ErrorIs(t, err, domain.ErrFavoriteExists)
	})

	t.Run("same title under a different category is fine", func(t *testing.T) {
		f, err := domain.NewFavorite("user-1", suggestionsDomain.CategoryGourmet, "Corner cafe", "also does lunch")
		require.NoError(t, err)
		assert.NoError(t, repo.Save(ctx, f))
	})

	t.Run("delete", func(t *testing.T) {
		f := mustFavorite(t, "user-3", "Quiet bookshop cafe")
		require.NoError(t, repo.Save(ctx, f))

		require.NoError(t, repo.Delete(ctx, "user-3", f.ID))
		got, err := repo.ListByUser(ctx, "user-3")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("delete missing favorite", func(t *testing.T) {
		err := repo.Delete(ctx, "user-3", uuid.New())
		assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		f := mustFavorite(t, "user-4", "Rooftop cafe")
		require.NoError(t, repo.Save(ctx, f))

		err := repo.Delete(ctx, "someone-else", f.ID)
		assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	})
}
