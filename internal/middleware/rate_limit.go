package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"golang.org/x/time/rate"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/config"
)

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per session identity so a single
// browser hammering the registration form cannot starve others.
type RateLimiter struct {
	conf config.RateLimitConfig

	mu        sync.Mutex
	buckets   map[string]*keyLimiter
	lastSweep time.Time
}

func NewRateLimiter(conf config.RateLimitConfig) *RateLimiter {
	if conf.RPS <= 0 {
		conf.RPS = 2
	}
	if conf.Burst <= 0 {
		conf.Burst = 5
	}
	if conf.IdleTTL <= 0 {
		conf.IdleTTL = 10 * time.Minute
	}

	return &RateLimiter{
		conf:      conf,
		buckets:   make(map[string]*keyLimiter),
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > rl.conf.IdleTTL {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) > rl.conf.IdleTTL {
				delete(rl.buckets, k)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &keyLimiter{limiter: rate.NewLimiter(rate.Limit(rl.conf.RPS), rl.conf.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter
}

func (rl *RateLimiter) Middleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := Identity(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !rl.get(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "too many requests"},
			)
			return
		}

		c.Next()
	}
}
