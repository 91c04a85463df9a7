package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"support-router/config"
	"support-router/pkg/log"
)

func newEngine(m Middleware, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Recovery(), m.Trace())
	r.GET("/q", m.RateLimit(), h)
	return r
}

func get(r *gin.Engine, ip string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/q", nil)
	req.RemoteAddr = ip + ":1234"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and a refill far slower than the test.
	m := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 60, MaxTrackedUsers: 10})
	r := newEngine(m, func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 6; i++ {
		if w := get(r, "10.0.0.1", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if w := get(r, "10.0.0.1", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", w.Code)
	}
	if w := get(r, "10.0.0.2", nil); w.Code != http.StatusOK {
		t.Errorf("other clients are limited separately, got %d", w.Code)
	}
}

func TestRateLimitConcurrentFirstRequestsShareBurst(t *testing.T) {
	// 60 rpm gives a burst of 6 and refills one token per second
	rl := newRateLimiter(60, 10)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got > 6 {
		t.Errorf("expected at most the burst of 6 to pass, got %d", got)
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("expected one tracked client, got %d", rl.limiters.Len())
	}
}

func TestRateLimitDisabled(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})
	r := newEngine(m, func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 20; i++ {
		if w := get(r, "10.0.0.1", nil); w.Code != http.StatusOK {
			t.Fatalf("expected no limit, got %d", w.Code)
		}
	}
}

func TestTrace(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{})
	var seen string
	r := newEngine(m, func(c *gin.Context) {
		seen = log.TraceIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := get(r, "10.0.0.1", map[string]string{HeaderRequestID: "abc-123"})
	if seen != "abc-123" || w.Header().Get(HeaderRequestID) != "abc-123" {
		t.Errorf("expected caller id to be reused, got %q / %q", seen, w.Header().Get(HeaderRequestID))
	}

	w = get(r, "10.0.0.1", nil)
	if seen == "" || seen == "abc-123" || w.Header().Get(HeaderRequestID) != seen {
		t.Errorf("expected generated id, got %q", seen)
	}
}

func TestRecovery(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{})
	r := newEngine(m, func(c *gin.Context) { panic("boom") })

	if w := get(r, "10.0.0.1", nil); w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
