package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/health"
)

type Prober interface {
	Live(ctx context.Context) health.Result
}

// Monitor re-probes the store between requests so degradation shows
// up in the logs before the next /healthz poll notices it.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   logger.Logger

	degraded bool
}

func New(prober Prober, interval time.Duration, logger logger.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   logger,
	}
}

func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("store monitor started",
		logger.Duration("interval", m.interval),
	)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("store monitor stopped")
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	res := m.prober.Live(ctx)

	if !res.Success {
		m.degraded = true
		m.logger.Error("store unreachable",
			logger.String("error", res.Err.Error()),
			logger.Duration("probe_duration", res.Duration),
		)
		return
	}

	if m.degraded {
		m.degraded = false
		m.logger.Info("store reachable again",
			logger.Duration("probe_duration", res.Duration),
		)
	}
}
