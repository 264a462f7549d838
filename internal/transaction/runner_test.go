package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sovanrith/geoboard/internal/cache"
	"github.com/sovanrith/geoboard/internal/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRunner(t *testing.T) (*Runner, *cache.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	cacheService := cache.NewService(time.Minute)
	runner := NewRunner(db, cacheService, metrics.New(), zap.NewNop().Sugar()).
		WithRetryPolicy(3, time.Millisecond)

	return runner, cacheService
}

func TestRunMutationCommitFlushesCache(t *testing.T) {
	runner, cacheService := newTestRunner(t)

	cacheService.Set("stale", "value")

	err := runner.RunMutation(context.Background(), "test.commit", func(tx *gorm.DB) error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if _, ok := cacheService.Get("stale"); ok {
		t.Error("expected cache to be flushed after commit")
	}
}

func TestRunMutationFailureKeepsCache(t *testing.T) {
	runner, cacheService := newTestRunner(t)

	cacheService.Set("key", "value")

	err := runner.RunMutation(context.Background(), "test.fail", func(tx *gorm.DB) error {
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if _, ok := cacheService.Get("key"); !ok {
		t.Error("failed mutation must not flush the cache")
	}
}

func TestRunMutationRetriesTransientThenSucceeds(t *testing.T) {
	runner, _ := newTestRunner(t)

	attempts := 0
	err := runner.RunMutation(context.Background(), "test.retry", func(tx *gorm.DB) error {
		attempts++
		if attempts < 3 {
			return errors.New("deadlock detected")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRunMutationDoesNotRetryFatalErrors(t *testing.T) {
	runner, _ := newTestRunner(t)

	attempts := 0
	err := runner.RunMutation(context.Background(), "test.fatal", func(tx *gorm.DB) error {
		attempts++
		return errors.New("record not found")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("fatal error must not be retried, got %d attempts", attempts)
	}
}

func TestRunMutationExhaustsRetryBudget(t *testing.T) {
	runner, _ := newTestRunner(t)

	attempts := 0
	err := runner.RunMutation(context.Background(), "test.exhaust", func(tx *gorm.DB) error {
		attempts++
		return errors.New("deadlock detected")
	})
	if err == nil {
		t.Fatal("expected final failure after retries exhausted")
	}
	// 1 initial attempt + 3 retries
	if attempts != 4 {
		t.Errorf("expected 4 attempts, got %d", attempts)
	}
}

func TestRunMutationRecoversPanic(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.RunMutation(context.Background(), "test.panic", func(tx *gorm.DB) error {
		panic("unexpected")
	})
	if err == nil {
		t.Fatal("expected panic to surface as error")
	}
}

func TestRunReadCachesResult(t *testing.T) {
	runner, _ := newTestRunner(t)

	calls := 0
	read := func(db *gorm.DB) (any, error) {
		calls++
		return "result", nil
	}

	for i := 0; i < 3; i++ {
		value, err := runner.RunRead(context.Background(), "key", read)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != "result" {
			t.Fatalf("unexpected value: %v", value)
		}
	}

	if calls != 1 {
		t.Errorf("expected one underlying read, got %d", calls)
	}
}

func TestRunReadDoesNotCacheErrors(t *testing.T) {
	runner, _ := newTestRunner(t)

	calls := 0
	read := func(db *gorm.DB) (any, error) {
		calls++
		return nil, errors.New("boom")
	}

	for i := 0; i < 2; i++ {
		if _, err := runner.RunRead(context.Background(), "key", read); err == nil {
			t.Fatal("expected error")
		}
	}

	if calls != 2 {
		t.Errorf("errors must not be cached, got %d calls", calls)
	}
}

func TestBackoffScheduleDoubles(t *testing.T) {
	runner, _ := newTestRunner(t)
	runner.WithRetryPolicy(3, 100*time.Millisecond)

	bo := runner.newBackOff()

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}
	for i, expected := range want {
		got := bo.NextBackOff()
		if got != expected {
			t.Errorf("backoff %d = %v, want %v", i, got, expected)
		}
	}
}
