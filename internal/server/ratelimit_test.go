package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_RejectsAfterBurst(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	// Near-zero refill so only the burst is available during the test
	limiter := NewClientRateLimiter(0.001, 3)
	middleware := RateLimitMiddleware(nil, limiter, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plants/p/care-logs", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(HeaderRetryAfter))

	assert.Equal(t, 1, detector.rateLimitedCount(ip))
}

func TestRateLimitMiddleware_SeparateBucketsPerClient(t *testing.T) {
	limiter := NewClientRateLimiter(0.001, 1)
	handler := RateLimitMiddleware(nil, limiter, NewSuspiciousActivityDetector())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/plants/p/care-logs", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
}

func TestRateLimitMiddleware_PublicPathsBypass(t *testing.T) {
	limiter := NewClientRateLimiter(0.001, 1)
	handler := RateLimitMiddleware(nil, limiter, NewSuspiciousActivityDetector())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientRateLimiter_ZeroBurstStillAllowsOne(t *testing.T) {
	limiter := NewClientRateLimiter(0.001, 0)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	detector.now = func() time.Time { return now }

	detector.RecordFailedAuth("1.1.1.1")
	detector.RecordFailedAuth("1.1.1.1")
	assert.Equal(t, 2, detector.failedAuthCount("1.1.1.1"))

	now = now.Add(detectorWindow + time.Second)
	detector.RecordFailedAuth("1.1.1.1")
	assert.Equal(t, 1, detector.failedAuthCount("1.1.1.1"))
}
