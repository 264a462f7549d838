// Package transaction executes controller-supplied operation closures with
// transactional and retry guarantees. Mutations run inside one data-store
// transaction per logical operation; transient store failures are retried
// with exponential backoff; any committed mutation flushes the read cache.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sovanrith/geoboard/internal/cache"
	"github.com/sovanrith/geoboard/internal/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// 4 attempts total: the first try plus defaultMaxRetries retries.
	defaultMaxRetries     = 3
	defaultInitialBackoff = 100 * time.Millisecond
)

type Runner struct {
	db      *gorm.DB
	cache   *cache.Service
	metrics *metrics.Metrics
	logger  *zap.SugaredLogger

	maxRetries     uint64
	initialBackoff time.Duration
}

func NewRunner(db *gorm.DB, cacheService *cache.Service, m *metrics.Metrics, logger *zap.SugaredLogger) *Runner {
	return &Runner{
		db:             db,
		cache:          cacheService,
		metrics:        m,
		logger:         logger,
		maxRetries:     defaultMaxRetries,
		initialBackoff: defaultInitialBackoff,
	}
}

// WithRetryPolicy overrides the retry budget and starting backoff interval.
func (r *Runner) WithRetryPolicy(maxRetries uint64, initialBackoff time.Duration) *Runner {
	r.maxRetries = maxRetries
	r.initialBackoff = initialBackoff
	return r
}

func (r *Runner) newBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialBackoff
	bo.RandomizationFactor = 0
	bo.Multiplier = 2
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 0
	bo.Reset()

	return backoff.WithMaxRetries(bo, r.maxRetries)
}

// RunMutation begins a transaction, runs fn against it, commits on nil and
// rolls back otherwise. Transient store failures are retried with backoff
// (100ms, 200ms, 400ms by default); other errors propagate immediately. The
// whole read cache is flushed after a successful commit.
func (r *Runner) RunMutation(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	var stale *gorm.DB
	attempt := 0

	run := func() (err error) {
		// A failed commit can leave the transaction open on the
		// connection; roll it back before starting a fresh one.
		if stale != nil {
			r.logger.Warnw("rolling back stale transaction", "operation", operation)
			r.metrics.RollbacksTotal.Inc()
			stale.Rollback()
			stale = nil
		}

		attempt++

		tx := r.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return r.classify(operation, attempt, tx.Error)
		}

		defer func() {
			if p := recover(); p != nil {
				tx.Rollback()
				err = backoff.Permanent(fmt.Errorf("%s: panic during operation: %v", operation, p))
			}
		}()

		if err := fn(tx); err != nil {
			tx.Rollback()
			return r.classify(operation, attempt, err)
		}

		if err := tx.Commit().Error; err != nil {
			stale = tx
			return r.classify(operation, attempt, err)
		}

		return nil
	}

	if err := backoff.Retry(run, r.newBackOff()); err != nil {
		return err
	}

	r.cache.InvalidateAll()
	return nil
}

// RunRead serves the result under key from the read cache when present,
// otherwise runs fn once and stores its result for the configured TTL.
// Concurrent misses may run fn more than once; the stampede is accepted.
func (r *Runner) RunRead(ctx context.Context, key string, fn func(db *gorm.DB) (any, error)) (any, error) {
	if value, ok := r.cache.Get(key); ok {
		r.metrics.CacheHitsTotal.Inc()
		return value, nil
	}
	r.metrics.CacheMissTotal.Inc()

	value, err := fn(r.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, value)
	return value, nil
}

// classify marks transient errors retriable and wraps everything else as
// permanent so backoff stops immediately.
func (r *Runner) classify(operation string, attempt int, err error) error {
	if IsTransient(err) {
		r.metrics.RetriesTotal.WithLabelValues(operation).Inc()
		r.logger.Warnw("transient store failure",
			"operation", operation,
			"attempt", attempt,
			"error", err,
		)
		return err
	}

	return backoff.Permanent(err)
}
