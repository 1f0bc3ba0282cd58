package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(2).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := hit("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	if code := hit("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := hit("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other client should not be limited, got %d", code)
	}
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(60)
	clock := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }
	rl.lastSweep = clock

	rl.getLimiter("10.0.0.1")
	clock = clock.Add(5 * time.Minute)
	rl.getLimiter("10.0.0.2")
	if len(rl.visitors) != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", len(rl.visitors))
	}

	clock = clock.Add(6 * time.Minute)
	rl.getLimiter("10.0.0.3")
	if _, ok := rl.visitors["10.0.0.1"]; ok {
		t.Fatal("idle client should be evicted")
	}
	if _, ok := rl.visitors["10.0.0.2"]; !ok {
		t.Fatal("recent client should be kept")
	}
	if len(rl.visitors) != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", len(rl.visitors))
	}
}
