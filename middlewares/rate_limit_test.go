package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// makeTestRouter creates a Gin engine with a single middleware and a test route.
func makeTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRateLimitMiddleware_AllowsInitialBurst(t *testing.T) {
	// A near-zero refill rate keeps the test independent of timing.
	router := makeTestRouter(RateLimitMiddleware(0.001, 5))

	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 on request %d, got %d", i+1, w.Code)
		}
	}

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 on 6th request, got %d", w.Code)
	}
}

func TestLoginRateLimitMiddleware_StricterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoginRateLimitMiddleware(3))
	r.POST("/auth/login/", func(c *gin.Context) {
		c.String(http.StatusOK, "login ok")
	})

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/auth/login/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 on login attempt %d, got %d", i+1, w.Code)
		}
	}

	req, _ := http.NewRequest(http.MethodPost, "/auth/login/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 on 4th login attempt, got %d", w.Code)
	}
}

func TestIPLimiterSeparatesClients(t *testing.T) {
	l := newIPLimiter(rate.Every(time.Hour), 1)
	if !l.get("10.0.0.1").Allow() {
		t.Fatal("first request from 10.0.0.1 should pass")
	}
	if l.get("10.0.0.1").Allow() {
		t.Fatal("second request from 10.0.0.1 should be limited")
	}
	if !l.get("10.0.0.2").Allow() {
		t.Fatal("10.0.0.2 has its own bucket")
	}
}

func TestIPLimiterSweepsIdleVisitors(t *testing.T) {
	l := newIPLimiter(rate.Every(time.Hour), 1)
	l.get("10.0.0.1")
	l.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * visitorIdleTimeout)
	l.lastSweep = time.Now().Add(-2 * visitorIdleTimeout)

	l.get("10.0.0.2")
	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Fatal("idle visitor should have been removed")
	}
}
