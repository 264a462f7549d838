package ratelimiter

import (
	"sync"
	"time"

	"github.com/sovanrith/geoboard/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// frame. Each client's count resets when its window expires.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
	logger  *zap.SugaredLogger
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   cfg.RequestsPerTimeFrame,
		frame:   cfg.TimeFrame,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed, and when denied, how long
// until its window resets.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	w, ok := rl.clients[clientID]
	if !ok || now.After(w.resetAt) {
		rl.clients[clientID] = &window{count: 1, resetAt: now.Add(rl.frame)}
		return true, 0
	}

	if w.count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for client %s \n", clientID)
		return false, time.Until(w.resetAt)
	}

	w.count++
	return true, 0
}
