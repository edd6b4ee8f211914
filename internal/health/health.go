package health

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

const (
	DefaultMaxRetries     = 3
	DefaultBaseDelay      = time.Second
	DefaultMaxDelay       = 10 * time.Second
	DefaultAttemptTimeout = 5 * time.Second
)

type Config struct {
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	AttemptTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}
	return c
}

type Result struct {
	Success  bool
	Attempts int
	Err      error
	Duration time.Duration
}

// ProbeFunc performs one reachability check against the store.
// Each invocation is bounded by the gate's per-attempt timeout.
type ProbeFunc func(ctx context.Context) error

// PostgresProbe opens a throwaway single-connection pool, issues a
// trivial round trip and closes it again.
func PostgresProbe(dsn string) ProbeFunc {
	return func(ctx context.Context) error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return fmt.Errorf("open connection: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(1)

		var one int
		if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
			return fmt.Errorf("round trip: %w", err)
		}
		return nil
	}
}

// Gate verifies store reachability before the service accepts
// traffic. Check retries with exponential backoff; MustEnsure is
// fatal on exhaustion; Live is the non-fatal single-attempt form for
// liveness endpoints.
type Gate struct {
	cfg   Config
	probe ProbeFunc
	log   logger.Logger

	once    sync.Once
	onceRes Result
}

func New(cfg Config, probe ProbeFunc, log logger.Logger) *Gate {
	return &Gate{
		cfg:   cfg.withDefaults(),
		probe: probe,
		log:   log,
	}
}

func (g *Gate) Check(ctx context.Context) Result {
	start := time.Now()

	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
		err := g.probe(attemptCtx)
		cancel()

		if err == nil {
			g.log.LogAttrs(ctx, logger.InfoLevel, "store reachable",
				logger.Int("attempt", attempt),
			)
			return Result{Success: true, Attempts: attempt, Duration: time.Since(start)}
		}
		lastErr = err

		g.log.LogAttrs(ctx, logger.WarnLevel, "store probe failed",
			logger.Int("attempt", attempt),
			logger.Int("max_retries", g.cfg.MaxRetries),
			logger.String("error", err.Error()),
		)

		if attempt < g.cfg.MaxRetries {
			select {
			case <-time.After(Backoff(attempt, g.cfg.BaseDelay, g.cfg.MaxDelay)):
			case <-ctx.Done():
				return Result{Success: false, Attempts: attempt, Err: ctx.Err(), Duration: time.Since(start)}
			}
		}
	}

	return Result{Success: false, Attempts: g.cfg.MaxRetries, Err: lastErr, Duration: time.Since(start)}
}

// EnsureOnce runs Check at most once per process; concurrent first
// callers share the same result instead of racing probes.
func (g *Gate) EnsureOnce(ctx context.Context) Result {
	g.once.Do(func() {
		g.onceRes = g.Check(ctx)
	})
	return g.onceRes
}

// MustEnsure terminates the process when the store never becomes
// reachable. A half-working service must not come up.
func (g *Gate) MustEnsure(ctx context.Context) {
	res := g.EnsureOnce(ctx)
	if res.Success {
		return
	}

	g.log.Error("store unreachable, refusing to start",
		logger.Int("attempts", res.Attempts),
		logger.String("error", res.Err.Error()),
	)
	os.Exit(1)
}

// Live performs a single bounded attempt with no retries.
func (g *Gate) Live(ctx context.Context) Result {
	start := time.Now()

	attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
	defer cancel()

	if err := g.probe(attemptCtx); err != nil {
		return Result{Success: false, Attempts: 1, Err: err, Duration: time.Since(start)}
	}
	return Result{Success: true, Attempts: 1, Duration: time.Since(start)}
}

// Backoff returns the wait before attempt+1: min(base * 2^(attempt-1), max).
func Backoff(attempt int, base, max time.Duration) time.Duration {
	d := base << uint(attempt-1)
	if d > max || d <= 0 {
		return max
	}
	return d
}
