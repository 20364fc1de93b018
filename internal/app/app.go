package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-data/external/apifootball"
	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/domain/syncrun"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/football"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-data/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-data/internal/platform/cache"
	idgen "github.com/riskibarqy/football-data/internal/platform/id"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/platform/ratelimit"
	"github.com/riskibarqy/football-data/internal/platform/resilience"
	"github.com/riskibarqy/football-data/internal/usecase"
)

// App is the wired service: the HTTP server, the sync schedule and the
// resources they hold.
type App struct {
	Server    *http.Server
	Scheduler *usecase.SyncScheduler

	db     *sqlx.DB
	logger *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	stores, runs, db, err := buildStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	var provider usecase.FootballDataProvider
	if cfg.FootballAPIEnabled {
		provider = apifootball.NewClient(apifootball.ClientConfig{
			BaseURL: cfg.FootballAPIBaseURL,
			APIKey:  cfg.FootballAPIKey,
			Timeout: cfg.FootballAPITimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FootballAPICircuitEnabled,
				FailureThreshold: cfg.FootballAPICircuitFailureCount,
				OpenTimeout:      cfg.FootballAPICircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FootballAPICircuitHalfOpenMax,
			},
		})
	} else {
		logger.Warn("football data provider disabled, sync routes will report 503",
			"reason", "FOOTBALL_API_ENABLED=false",
		)
	}

	limiter := ratelimit.NewTokenBucket(cfg.FootballAPIRateInterval, cfg.FootballAPIRateBurst)
	repo := football.NewRepository(stores, provider, limiter, football.Options{
		ProviderFallback: cfg.ProviderFallback,
	}, logger)

	footballSvc := usecase.NewFootballService(repo)
	syncSvc := usecase.NewSyncService(repo, limiter, runs, idgen.NewUUIDGenerator(), usecase.SyncConfig{
		LeagueIDs:     cfg.SyncLeagueIDs,
		Season:        cfg.SyncSeason,
		UpcomingLimit: cfg.SyncUpcomingLimit,
		FinishedLimit: cfg.SyncFinishedLimit,
	}, logger)

	scheduler, err := usecase.NewSyncScheduler(syncSvc, usecase.SyncScheduleConfig{
		Live:       cfg.SyncLiveSchedule,
		Upcoming:   cfg.SyncUpcomingSchedule,
		Finished:   cfg.SyncFinishedSchedule,
		Standings:  cfg.SyncStandingsSchedule,
		Leagues:    cfg.SyncLeaguesSchedule,
		TopScorers: cfg.SyncTopScorersSchedule,
		JobTimeout: cfg.SyncJobTimeout,
	}, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build sync scheduler: %w", err)
	}

	handler := httpapi.NewHandler(footballSvc, syncSvc, scheduler, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SyncToken:          cfg.SyncAPIToken,
		SwaggerEnabled:     cfg.SwaggerEnabled,
	})

	app := &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Scheduler: scheduler,
		db:        db,
		logger:    logger,
	}

	if cfg.SyncAutostart {
		if _, err := scheduler.Start(); err != nil {
			closeDB(db, logger)
			return nil, fmt.Errorf("autostart sync schedule: %w", err)
		}
	}

	return app, nil
}

// Shutdown stops the schedule first, waiting for a running job, then drains
// the HTTP server and closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	a.Scheduler.Stop()

	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func buildStores(cfg config.Config, logger *logging.Logger) (football.Stores, syncrun.Repository, *sqlx.DB, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Info("using in-memory store", "store_driver", cfg.StoreDriver)

		teams := memory.NewTeamRepository(memory.SeedTeams())
		stores := football.Stores{
			Leagues:    memory.NewLeagueRepository(memory.SeedLeagues()),
			Teams:      teams,
			Matches:    memory.NewMatchRepository(memory.SeedMatches(time.Now()), teams),
			Standings:  memory.NewStandingRepository(),
			TopScorers: memory.NewTopScorerRepository(),
		}
		return withCache(cfg, stores), memory.NewSyncRunRepository(), nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return football.Stores{}, nil, nil, err
	}
	if cfg.DBBootstrapSeed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := postgres.BootstrapSeed(ctx, db)
		cancel()
		if err != nil {
			closeDB(db, logger)
			return football.Stores{}, nil, nil, err
		}
	}
	logger.Info("using postgres store",
		"store_driver", cfg.StoreDriver,
		"db_name", dbNameFromURL(cfg.DBURL),
	)

	stores := football.Stores{
		Leagues:    postgres.NewLeagueRepository(db),
		Teams:      postgres.NewTeamRepository(db),
		Matches:    postgres.NewMatchRepository(db),
		Standings:  postgres.NewStandingRepository(db),
		TopScorers: postgres.NewTopScorerRepository(db),
	}
	return withCache(cfg, stores), postgres.NewSyncRunRepository(db), db, nil
}

// withCache wraps the read-mostly stores in TTL decorators. Matches change
// too often to be worth caching.
func withCache(cfg config.Config, stores football.Stores) football.Stores {
	if !cfg.CacheEnabled {
		return stores
	}
	store := basecache.NewStore(cfg.CacheTTL)
	stores.Leagues = cache.NewLeagueRepository(stores.Leagues, store)
	stores.Teams = cache.NewTeamRepository(stores.Teams, store)
	stores.Standings = cache.NewStandingRepository(stores.Standings, store)
	stores.TopScorers = cache.NewTopScorerRepository(stores.TopScorers, store)
	return stores
}
