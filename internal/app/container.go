// Package app wires the application together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/serendip/internal/calendar"
	"github.com/felixgeelhaar/serendip/internal/calendar/caldav"
	favoritesApp "github.com/felixgeelhaar/serendip/internal/favorites/application"
	favoritesDomain "github.com/felixgeelhaar/serendip/internal/favorites/domain"
	favoritesPostgres "github.com/felixgeelhaar/serendip/internal/favorites/infrastructure/postgres"
	favoritesSQLite "github.com/felixgeelhaar/serendip/internal/favorites/infrastructure/sqlite"
	historyDomain "github.com/felixgeelhaar/serendip/internal/history/domain"
	historyPostgres "github.com/felixgeelhaar/serendip/internal/history/infrastructure/postgres"
	historySQLite "github.com/felixgeelhaar/serendip/internal/history/infrastructure/sqlite"
	historyQueries "github.com/felixgeelhaar/serendip/internal/history/application/queries"
	preferenceCommands "github.com/felixgeelhaar/serendip/internal/preferences/application/commands"
	preferenceQueries "github.com/felixgeelhaar/serendip/internal/preferences/application/queries"
	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	preferencesPostgres "github.com/felixgeelhaar/serendip/internal/preferences/infrastructure/postgres"
	preferencesSQLite "github.com/felixgeelhaar/serendip/internal/preferences/infrastructure/sqlite"
	schedulingQueries "github.com/felixgeelhaar/serendip/internal/scheduling/application/queries"
	sqliteDB "github.com/felixgeelhaar/serendip/internal/shared/infrastructure/database/sqlite"
	postgresDB "github.com/felixgeelhaar/serendip/internal/shared/infrastructure/database/postgres"
	"github.com/felixgeelhaar/serendip/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/serendip/internal/shared/infrastructure/migrations"
	suggestionCommands "github.com/felixgeelhaar/serendip/internal/suggestions/application/commands"
	suggestionQueries "github.com/felixgeelhaar/serendip/internal/suggestions/application/queries"
	"github.com/felixgeelhaar/serendip/internal/suggestions/application/services"
	"github.com/felixgeelhaar/serendip/internal/weather"
	"github.com/felixgeelhaar/serendip/internal/weather/rediscache"
	"github.com/felixgeelhaar/serendip/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database. Exactly one of SQLiteDB or PgPool is set.
	SQLiteDB *sql.DB
	PgPool   *pgxpool.Pool

	// Redis
	RedisClient *redis.Client

	// Repositories
	PreferenceRepo preferencesDomain.Repository
	HistoryRepo    historyDomain.Repository
	FavoriteRepo   favoritesDomain.Repository

	// Calendar and weather
	CalendarSource  schedulingQueries.BusyIntervalSource
	WeatherProvider weather.Provider

	// Publishers
	EventPublisher eventbus.Publisher

	// Scheduling
	FindFreeSlotsHandler *schedulingQueries.FindFreeSlotsHandler

	// Suggestions
	SuggestionEngine          *services.SuggestionEngine
	GenerateSuggestionHandler *suggestionQueries.GenerateSuggestionHandler
	ListAlternativesHandler   *suggestionQueries.ListAlternativesHandler
	AcceptSuggestionHandler   *suggestionCommands.AcceptSuggestionHandler

	// Preferences
	UpdatePreferencesHandler *preferenceCommands.UpdatePreferencesHandler
	ResetLearningHandler     *preferenceCommands.ResetLearningHandler
	GetPreferencesHandler    *preferenceQueries.GetPreferencesHandler

	// History
	ListHistoryHandler     *historyQueries.ListHistoryHandler
	CategorySummaryHandler *historyQueries.CategorySummaryHandler

	// Favorites
	FavoritesService *favoritesApp.FavoritesService
}

// Options tweak container construction.
type Options struct {
	// Engine overrides the suggestion engine, e.g. a seeded one for
	// reproducible runs. Nil gets a time-seeded engine.
	Engine *services.SuggestionEngine
	// CalendarSource overrides calendar access. Nil selects CalDAV when
	// configured, otherwise an empty calendar.
	CalendarSource schedulingQueries.BusyIntervalSource
}

// NewContainer builds all dependencies from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initStorage(ctx, cfg); err != nil {
		return nil, err
	}
	if err := c.initEventPublisher(cfg, logger); err != nil {
		c.Close()
		return nil, err
	}
	c.initCalendar(cfg, logger, opts)
	if err := c.initWeather(cfg, logger); err != nil {
		c.Close()
		return nil, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = services.NewSuggestionEngine()
	}
	c.SuggestionEngine = engine

	c.FindFreeSlotsHandler = schedulingQueries.NewFindFreeSlotsHandler(c.CalendarSource, c.PreferenceRepo)
	c.GenerateSuggestionHandler = suggestionQueries.NewGenerateSuggestionHandler(engine, c.PreferenceRepo, c.WeatherProvider, logger)
	c.ListAlternativesHandler = suggestionQueries.NewListAlternativesHandler(engine, c.PreferenceRepo, c.WeatherProvider, logger)
	c.AcceptSuggestionHandler = suggestionCommands.NewAcceptSuggestionHandler(c.PreferenceRepo, c.HistoryRepo, c.EventPublisher)

	c.UpdatePreferencesHandler = preferenceCommands.NewUpdatePreferencesHandler(c.PreferenceRepo)
	c.ResetLearningHandler = preferenceCommands.NewResetLearningHandler(c.PreferenceRepo, c.EventPublisher)
	c.GetPreferencesHandler = preferenceQueries.NewGetPreferencesHandler(c.PreferenceRepo)

	c.ListHistoryHandler = historyQueries.NewListHistoryHandler(c.HistoryRepo)
	c.CategorySummaryHandler = historyQueries.NewCategorySummaryHandler(c.HistoryRepo)

	c.FavoritesService = favoritesApp.NewFavoritesService(c.FavoriteRepo)

	return c, nil
}

func (c *Container) initStorage(ctx context.Context, cfg *config.Config) error {
	if cfg.UsesPostgres() {
		pool, err := postgresDB.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		c.PgPool = pool
		c.PreferenceRepo = preferencesPostgres.NewPreferenceRepository(pool)
		c.HistoryRepo = historyPostgres.NewHistoryRepository(pool)
		c.FavoriteRepo = favoritesPostgres.NewFavoriteRepository(pool)
		return nil
	}

	db, err := sqliteDB.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("run migrations: %w", err)
	}
	c.SQLiteDB = db
	c.PreferenceRepo = preferencesSQLite.NewPreferenceRepository(db)
	c.HistoryRepo = historySQLite.NewHistoryRepository(db)
	c.FavoriteRepo = favoritesSQLite.NewFavoriteRepository(db)
	return nil
}

func (c *Container) initEventPublisher(cfg *config.Config, logger *slog.Logger) error {
	if cfg.RabbitMQURL == "" {
		c.EventPublisher = eventbus.NewInProcessBus(logger)
		return nil
	}
	publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		return fmt.Errorf("connect rabbitmq: %w", err)
	}
	c.EventPublisher = publisher
	return nil
}

func (c *Container) initCalendar(cfg *config.Config, logger *slog.Logger, opts Options) {
	if opts.CalendarSource != nil {
		c.CalendarSource = opts.CalendarSource
		return
	}
	if cfg.CalDAVURL != "" {
		source := caldav.NewSource(cfg.CalDAVURL, cfg.CalDAVUsername, cfg.CalDAVPassword, logger)
		if cfg.CalDAVCalendarPath != "" {
			source = source.WithCalendarPath(cfg.CalDAVCalendarPath)
		}
		if cfg.CalDAVHolidayPath != "" {
			source = source.WithHolidayCalendarPath(cfg.CalDAVHolidayPath)
		}
		c.CalendarSource = source
		return
	}
	c.CalendarSource = calendar.NewStaticSource(nil, nil)
}

func (c *Container) initWeather(cfg *config.Config, logger *slog.Logger) error {
	var provider weather.Provider = weather.NewStaticProvider(cfg.WeatherCondition, cfg.WeatherTempC)

	if cfg.RedisURL != "" {
		client, err := rediscache.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		c.RedisClient = client
		provider = weather.NewBreakerProvider(provider, weather.DefaultBreakerConfig(), logger)
		provider = rediscache.NewCachedProvider(provider, client, rediscache.DefaultTTL, logger)
	}

	c.WeatherProvider = provider
	return nil
}

// Close releases all container resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("failed to close redis client", "error", err)
		}
	}
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Warn("failed to close sqlite database", "error", err)
		}
	}
	if c.PgPool != nil {
		c.PgPool.Close()
	}
}
