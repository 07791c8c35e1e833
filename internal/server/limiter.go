package server

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an unused per-client limiter is kept.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter throttles form submissions per client address. Stale
// entries are pruned on access instead of by a background goroutine.
type clientLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rateLimit rate.Limit
	burst     int
	perMinute int
	lastPrune time.Time
	now       func() time.Time
}

func newClientLimiter(perMinute, burst int) *clientLimiter {
	rateLimit := rate.Inf
	if perMinute > 0 {
		rateLimit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &clientLimiter{
		limiters:  make(map[string]*limiterEntry),
		rateLimit: rateLimit,
		burst:     burst,
		perMinute: perMinute,
		now:       time.Now,
	}
}

// Allow reports whether the client may submit now.
func (l *clientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) > limiterIdleTTL {
		for k, e := range l.limiters {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(l.limiters, k)
			}
		}
		l.lastPrune = now
	}

	e, ok := l.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rateLimit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// retryAfter is the wait, in whole seconds, for one token to refill.
func (l *clientLimiter) retryAfter() int {
	if l.perMinute <= 0 {
		return 1
	}
	secs := 60 / l.perMinute
	if secs < 1 {
		secs = 1
	}
	return secs
}

// clientKey identifies the caller by remote host. With trustProxy set, the
// right-most X-Forwarded-For hop is used instead: that is the address the
// proxy itself appended, earlier hops are client supplied.
func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if ip := net.ParseIP(hop); ip != nil {
				return ip.String()
			}
			break
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeRateLimited sends a 429 with Retry-After.
func writeRateLimited(w http.ResponseWriter, l *clientLimiter) {
	w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
	WriteErrorWithCode(w, http.StatusTooManyRequests, "Too many requests, please try again later", "rate_limited")
}
