package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	appcontext "github.com/sovanrith/geoboard/internal/app_context"
	"github.com/sovanrith/geoboard/internal/cache"
	"github.com/sovanrith/geoboard/internal/config"
	"github.com/sovanrith/geoboard/internal/controller"
	"github.com/sovanrith/geoboard/internal/database"
	"github.com/sovanrith/geoboard/internal/env"
	"github.com/sovanrith/geoboard/internal/metrics"
	"github.com/sovanrith/geoboard/internal/middleware"
	ratelimiter "github.com/sovanrith/geoboard/internal/rate_limiter"
	"github.com/sovanrith/geoboard/internal/repository"
	"github.com/sovanrith/geoboard/internal/route"
	"github.com/sovanrith/geoboard/internal/transaction"
	"github.com/sovanrith/geoboard/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		util.RegisterTagNameFunc(v)
	}

	cacheService := cache.NewService(cfg.Cache.TTL)
	m := metrics.New()
	runner := transaction.NewRunner(db, cacheService, m, logger)
	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	repo := repository.NewRepository(db, logger)

	app := appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Repository: repo,
		Cache:      cacheService,
		Metrics:    m,
		Runner:     runner,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RecoveryMiddleware)
	r.Use(_middleware.RequestLoggerMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	rApi := r.Group("/api")

	route.Regions(rApi, _controller.Region, _controller.Project)
	route.Projects(rApi, _controller.Project, _controller.Pin)
	route.Pins(rApi, _controller.Pin)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
