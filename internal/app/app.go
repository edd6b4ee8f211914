package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/config"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/handler"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/health"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/middleware"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/repository"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/router"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/scheduler"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	gate       *health.Gate
	httpServer *http.Server
	monitor    *scheduler.Monitor
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"cactoide",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	// The availability gate runs before anything touches the pool:
	// an unreachable store must fail startup, not the first request.
	app.gate = health.New(
		health.Config{
			MaxRetries:     cfg.Health.MaxRetries,
			BaseDelay:      cfg.Health.BaseDelay,
			MaxDelay:       cfg.Health.MaxDelay,
			AttemptTimeout: cfg.Health.AttemptTimeout,
		},
		health.PostgresProbe(cfg.Postgres.DSN()),
		log,
	)
	app.gate.MustEnsure(context.Background())

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis is best-effort: the cache is an optimization, not a
// dependency, so a missing or unreachable redis only disables it.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		a.log.Warn("redis unreachable, response caching disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		_ = rdb.Close()
		return
	}

	a.rdb = rdb
	a.log.Info("redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	rsvpRepo := repository.NewRsvpRepo(a.db)

	eventService := service.NewEventService(eventRepo, rsvpRepo)
	rsvpService := service.NewRsvpService(rsvpRepo, a.log)

	a.monitor = scheduler.New(a.gate, a.cfg.Monitor.Interval, a.log)

	h := handler.NewHandler(eventService, rsvpService, a.gate, a.cfg.BaseURL)

	opts := router.Options{
		RateLimit: middleware.NewRateLimiter(a.cfg.RateLimit).Middleware(),
	}
	if a.rdb != nil {
		opts.Cache = middleware.ResponseCache(a.rdb, a.cfg.Redis.CacheTTL)
		opts.Invalidate = middleware.InvalidateEventCache(a.rdb)
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		opts,
		middleware.RequestID(),
		middleware.Session(a.cfg.Session, a.log),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.monitor.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
