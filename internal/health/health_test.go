package health

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries:     maxRetries,
		BaseDelay:      time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		AttemptTimeout: 50 * time.Millisecond,
	}
}

func TestBackoff_DoublesUpToMax(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	assert.Equal(t, 1*time.Second, Backoff(1, base, max))
	assert.Equal(t, 2*time.Second, Backoff(2, base, max))
	assert.Equal(t, 4*time.Second, Backoff(3, base, max))
	assert.Equal(t, 8*time.Second, Backoff(4, base, max))
	assert.Equal(t, 10*time.Second, Backoff(5, base, max))
	assert.Equal(t, 10*time.Second, Backoff(6, base, max))
}

func TestBackoff_NeverDecreases(t *testing.T) {
	base := 100 * time.Millisecond
	max := 3 * time.Second

	prev := time.Duration(0)
	for attempt := 1; attempt <= 20; attempt++ {
		d := Backoff(attempt, base, max)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		assert.LessOrEqual(t, d, max, "attempt %d", attempt)
		prev = d
	}
}

func TestBackoff_ShiftOverflowClampsToMax(t *testing.T) {
	// base << 62 wraps negative; the clamp must catch it.
	assert.Equal(t, 10*time.Second, Backoff(63, time.Second, 10*time.Second))
}

func TestGate_Check_SuccessFirstAttempt(t *testing.T) {
	var calls int32
	probe := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	g := New(fastConfig(3), probe, newTestLogger(t))
	res := g.Check(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.NoError(t, res.Err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGate_Check_SuccessAfterFailures(t *testing.T) {
	var calls int32
	probe := func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) < 2 {
			return errors.New("connection refused")
		}
		return nil
	}

	g := New(fastConfig(3), probe, newTestLogger(t))
	res := g.Check(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGate_Check_Exhaustion(t *testing.T) {
	probeErr := errors.New("connection refused")
	var calls int32
	probe := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return probeErr
	}

	g := New(fastConfig(3), probe, newTestLogger(t))
	res := g.Check(context.Background())

	require.False(t, res.Success)
	assert.Equal(t, 3, res.Attempts)
	assert.ErrorIs(t, res.Err, probeErr)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGate_Check_ContextCancelDuringBackoff(t *testing.T) {
	cfg := Config{
		MaxRetries:     3,
		BaseDelay:      time.Hour, // never elapses
		MaxDelay:       time.Hour,
		AttemptTimeout: 50 * time.Millisecond,
	}
	probe := func(ctx context.Context) error {
		return errors.New("down")
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := New(cfg, probe, newTestLogger(t))

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	res := g.Check(ctx)

	require.False(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestGate_Check_AttemptTimeoutBoundsProbe(t *testing.T) {
	cfg := Config{
		MaxRetries:     1,
		BaseDelay:      time.Millisecond,
		MaxDelay:       time.Millisecond,
		AttemptTimeout: 20 * time.Millisecond,
	}
	probe := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	g := New(cfg, probe, newTestLogger(t))

	start := time.Now()
	res := g.Check(context.Background())

	require.False(t, res.Success)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGate_EnsureOnce_SingleProbeRun(t *testing.T) {
	var calls int32
	probe := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	g := New(fastConfig(3), probe, newTestLogger(t))

	first := g.EnsureOnce(context.Background())
	second := g.EnsureOnce(context.Background())

	assert.True(t, first.Success)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGate_EnsureOnce_ConcurrentCallersShareResult(t *testing.T) {
	var calls int32
	probe := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("down")
	}

	g := New(fastConfig(3), probe, newTestLogger(t))

	const goroutines = 8
	results := make([]Result, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.EnsureOnce(context.Background())
		}(i)
	}
	wg.Wait()

	// One bounded retry sequence total, not one per caller.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	for i := 1; i < goroutines; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestGate_Live_SingleAttempt(t *testing.T) {
	var calls int32
	probe := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("down")
	}

	g := New(fastConfig(5), probe, newTestLogger(t))
	res := g.Live(context.Background())

	require.False(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGate_Live_Success(t *testing.T) {
	probe := func(ctx context.Context) error { return nil }

	g := New(fastConfig(3), probe, newTestLogger(t))
	res := g.Live(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.NoError(t, res.Err)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultBaseDelay, cfg.BaseDelay)
	assert.Equal(t, DefaultMaxDelay, cfg.MaxDelay)
	assert.Equal(t, DefaultAttemptTimeout, cfg.AttemptTimeout)
}
