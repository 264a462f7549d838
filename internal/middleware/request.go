package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sovanrith/geoboard/internal/util"
)

// RequestLoggerMiddleware tags every request with a uuid and logs
// method/path/status/duration, feeding the request counter as well.
func (m *Middleware) RequestLoggerMiddleware(ctx *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	ctx.Set("requestId", requestID)
	ctx.Header("X-Request-Id", requestID)

	ctx.Next()

	status := ctx.Writer.Status()
	m.app.Metrics.RequestsTotal.WithLabelValues(ctx.Request.Method, strconv.Itoa(status)).Inc()

	m.app.Logger.Infow("request",
		"requestId", requestID,
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", status,
		"duration", time.Since(start),
	)
}

// RecoveryMiddleware converts panics into a generic 500 without leaking
// internals.
func (m *Middleware) RecoveryMiddleware(ctx *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.app.Logger.Errorw("panic recovered", "panic", r, "path", ctx.Request.URL.Path)
			util.ResponseError(ctx, http.StatusInternalServerError, "Internal server error")
		}
	}()

	ctx.Next()
}

func (m *Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.app.Config.RateLimiter.Enabled {
		ctx.Next()
		return
	}

	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		util.ResponseError(ctx, http.StatusTooManyRequests, "Too many requests")
		return
	}

	ctx.Next()
}
