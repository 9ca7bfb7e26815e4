package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/geoquest/GeoQuest_Go/internal/metrics"
)

// windowCounter counts events per key within a fixed window that resets wholesale
type windowCounter struct {
	counts map[string]int
	start  time.Time
}

func (w *windowCounter) incr(key string, now time.Time, window time.Duration) int {
	if w.counts == nil || now.Sub(w.start) > window {
		w.counts = make(map[string]int)
		w.start = now
	}
	w.counts[key]++
	return w.counts[key]
}

func (w *windowCounter) get(key string) int {
	return w.counts[key]
}

// SuspiciousActivityDetector logs security alerts for clients that keep
// failing auth or keep hitting the rate limiter
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	failedAuth  windowCounter
	rateLimited windowCounter
	now         func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{now: time.Now}
}

// RecordFailedAuth alerts once a client reaches the failure threshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	count := s.failedAuth.incr(ip, s.now(), detectorWindow)
	s.mu.Unlock()

	if count >= failedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRateLimited alerts on the first rejection in a window and every Nth after
func (s *SuspiciousActivityDetector) RecordRateLimited(ip string) {
	s.mu.Lock()
	count := s.rateLimited.incr(ip, s.now(), detectorWindow)
	s.mu.Unlock()

	if count == 1 || count%rateLimitedLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "rejected_in_window", count)
	}
}

func (s *SuspiciousActivityDetector) failedAuthCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAuth.get(ip)
}

func (s *SuspiciousActivityDetector) rateLimitedCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rateLimited.get(ip)
}

// ClientRateLimiter hands out a token bucket per client IP.
// Buckets are forgotten clientLimiterIdleTTL after creation and rebuilt full.
type ClientRateLimiter struct {
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

// NewClientRateLimiter returns a limiter allowing rps sustained requests with the given burst
func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limit:    rate.Limit(rps),
		burst:    max(burst, 1),
		limiters: expirable.NewLRU[string, *rate.Limiter](clientLimiterCacheSize, nil, clientLimiterIdleTTL),
	}
}

// Allow consumes one token for the client
func (l *ClientRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(ip, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// RateLimitMiddleware rejects clients that exhaust their token bucket with 429
func RateLimitMiddleware(clientIP *ClientIPResolver, limiter *ClientRateLimiter, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP.Resolve(r)
			if !limiter.Allow(ip) {
				detector.RecordRateLimited(ip)
				metrics.RateLimitedRequests.Inc()
				w.Header().Set(HeaderRetryAfter, "1")
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
