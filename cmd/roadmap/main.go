package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/cli"
	"github.com/TPSE31/career-roadmap/internal/config"
	"github.com/TPSE31/career-roadmap/internal/db"
	"github.com/TPSE31/career-roadmap/internal/ledger"
	"github.com/TPSE31/career-roadmap/internal/notify"
	"github.com/TPSE31/career-roadmap/internal/recommend"
	"github.com/TPSE31/career-roadmap/internal/remote"
	"github.com/TPSE31/career-roadmap/internal/repository"
	"github.com/TPSE31/career-roadmap/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Catalog: bundled dataset unless a file overrides it.
	store, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	// Completion persistence
	var completions ledger.CompletionStore
	switch cfg.Store {
	case config.StoreRedis:
		rdb, err := repository.NewRedisClient(ctx, repository.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		completions = repository.NewRedisCompletionRepo(rdb, cfg.SessionID)
	default:
		completions = repository.NewSQLiteCompletionRepo(database, uow, cfg.SessionID)
	}

	l, err := ledger.Open(ctx, completions, store)
	if err != nil {
		return err
	}
	mgr, err := notify.NewManager(ctx, repository.NewSQLiteNotificationRepo(database, cfg.SessionID), nil)
	if err != nil {
		return err
	}
	tracker, err := notify.NewMilestoneTracker(ctx, store.Milestones(),
		repository.NewSQLiteMilestoneRepo(database, uow, cfg.SessionID), nil)
	if err != nil {
		return err
	}

	// Upstream catalog API, only when enabled
	var upstream catalog.Upstream
	if cfg.API.Enabled {
		var observer remote.Observer = remote.NoopObserver{}
		if cfg.API.LogCalls {
			observer = remote.NewLogObserver(os.Stderr)
		}
		upstream = remote.NewClient(cfg.API, observer)
	}
	source := catalog.NewFallbackSource(upstream, store, recommend.Ranker(store), logger)

	// Use-case observers
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	if cfg.MetricsFile != "" {
		metrics := service.NewMetricsObserver(nil)
		observers = append(observers, metrics)
		defer func() {
			if werr := metrics.WriteToTextfile(cfg.MetricsFile); werr != nil && err == nil {
				err = fmt.Errorf("writing metrics: %w", werr)
			}
		}()
	}

	profiles := service.NewProfileService(repository.NewSQLiteProfileRepo(database), store, cfg.SessionID, observers...)
	notifications := service.NewNotificationService(mgr, observers...)

	app := &cli.App{
		Catalog:       service.NewCatalogService(store, source, observers...),
		Profiles:      profiles,
		Engine:        service.NewEngine(store, source, l, profiles, notifications, observers...),
		Notifications: notifications,
		Milestones:    service.NewMilestoneService(tracker, notifications, profiles, store, l, cfg.SessionID, nil, observers...),
	}

	// Forms and the browser need an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func loadCatalog(path string) (*catalog.Store, error) {
	if path == "" {
		return catalog.Bundled()
	}
	store, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return store, nil
}
