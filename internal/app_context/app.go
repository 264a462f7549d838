package appcontext

import (
	"github.com/sovanrith/geoboard/internal/cache"
	"github.com/sovanrith/geoboard/internal/config"
	"github.com/sovanrith/geoboard/internal/metrics"
	"github.com/sovanrith/geoboard/internal/repository"
	"github.com/sovanrith/geoboard/internal/transaction"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Cache is the process-wide read cache, flushed on every mutation.
	Cache *cache.Service

	Metrics *metrics.Metrics

	// Runner executes operation closures with transaction and retry
	// guarantees.
	Runner *transaction.Runner
}
