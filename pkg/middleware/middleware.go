package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID attaches a unique id to every request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs every request with latency and status
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// Recovery recovers from panics and returns 500
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// CORS allows cross-origin requests from the storefront
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RateLimiter applies a sliding-window limit of 120 requests per minute per
// client IP.
func RateLimiter() gin.HandlerFunc {
	limiter := newSlidingWindow(time.Minute, 120)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

type slidingWindow struct {
	mu        sync.Mutex
	window    time.Duration
	limit     int
	hits      map[string][]time.Time
	lastSweep time.Time
}

func newSlidingWindow(window time.Duration, limit int) *slidingWindow {
	return &slidingWindow{
		window: window,
		limit:  limit,
		hits:   make(map[string][]time.Time),
	}
}

func (w *slidingWindow) allow(ip string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if now.Sub(w.lastSweep) > w.window {
		w.sweep(now)
		w.lastSweep = now
	}

	recent := w.hits[ip][:0]
	for _, t := range w.hits[ip] {
		if now.Sub(t) < w.window {
			recent = append(recent, t)
		}
	}
	if len(recent) >= w.limit {
		w.hits[ip] = recent
		return false
	}
	w.hits[ip] = append(recent, now)
	return true
}

// sweep drops clients with no requests inside the window, so the map does not
// accumulate entries for IPs that stopped sending.
func (w *slidingWindow) sweep(now time.Time) {
	for ip, ts := range w.hits {
		keep := ts[:0]
		for _, t := range ts {
			if now.Sub(t) < w.window {
				keep = append(keep, t)
			}
		}
		if len(keep) == 0 {
			delete(w.hits, ip)
			continue
		}
		w.hits[ip] = keep
	}
}
