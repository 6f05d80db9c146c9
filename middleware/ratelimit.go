package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/blogem/ipgate/userctx"
)

// limiterIdle is how long an unused per-IP limiter is kept
const limiterIdle = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP
type IPRateLimiter struct {
	mu        sync.Mutex
	ips       map[string]*ipLimiter
	r         rate.Limit
	b         int
	lastSweep time.Time
}

// NewIPRateLimiter creates a limiter allowing perMinute requests per IP
// with the given burst
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*ipLimiter),
		r:         rate.Every(time.Minute / time.Duration(perMinute)),
		b:         burst,
		lastSweep: time.Now(),
	}
}

// Allow reports whether ip may make another request now
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.getLimiter(ip).Allow()
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > limiterIdle {
		for key, entry := range l.ips {
			if now.Sub(entry.lastSeen) > limiterIdle {
				delete(l.ips, key)
			}
		}
		l.lastSweep = now
	}

	entry, exists := l.ips[ip]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.ips[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// RateLimit rejects requests beyond the per-IP budget with 429.
// Must run after ClientIP.
func RateLimit(l *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(userctx.GetClientIP(r.Context())) {
				writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
