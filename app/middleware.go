package app

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestLogger logs one line per request after it is served.
func RequestLogger(lg *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		lg.Log(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// RateLimiter throttles writes. The store takes a full-collection write on
// every mutation, so reads are left alone.
type RateLimiter struct {
	limiter *rate.Limiter
	rps     float64
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst), rps: rps}
}

func (rl *RateLimiter) Writes() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if !rl.limiter.Allow() {
			retry := 1
			if rl.rps > 0 {
				retry = int(math.Ceil(1 / rl.rps))
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			slog.Warn("rate limit exceeded", slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, H{"error": "too many requests", "code": "rate_limited"})
			return
		}
		c.Next()
	}
}
