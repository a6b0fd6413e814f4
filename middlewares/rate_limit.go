package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time we saw this IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorIdleTimeout is how long an IP may stay silent before its limiter is dropped.
const visitorIdleTimeout = 10 * time.Minute

type ipLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		visitors:  make(map[string]*visitor),
		limit:     limit,
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > visitorIdleTimeout {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTimeout {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, exists := l.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.visitors[ip] = &visitor{
			limiter:  limiter,
			lastSeen: now,
		}
		return limiter
	}

	v.lastSeen = now
	return v.limiter
}

func (l *ipLimiter) middleware(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			c.String(http.StatusTooManyRequests, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware applies a per-IP limit of rps requests per second
// with the given burst to every route.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	return newIPLimiter(rate.Limit(rps), burst).middleware("Too many requests. Please slow down.")
}

// LoginRateLimitMiddleware is the stricter limit for login and signup
// submissions: one token every 10 seconds on average.
func LoginRateLimitMiddleware(burst int) gin.HandlerFunc {
	return newIPLimiter(rate.Every(10*time.Second), burst).middleware("Too many authentication attempts. Please wait and try again.")
}
