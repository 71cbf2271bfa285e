package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// clients idle for longer than this are dropped on the next sweep
	limiterIdleAfter = 3 * time.Minute
	// map size that triggers a sweep of idle clients
	limiterSweepAt = 64
)

type clientLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client IP and evicts
// entries that have gone idle, so the map stays bounded under churn.
type clientLimiters struct {
	mu      sync.Mutex
	rate    rate.Limit
	burst   int
	clients map[string]*clientLimiter
}

func newClientLimiters(r rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		rate:    r,
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}
}

func (cl *clientLimiters) get(ip string, now time.Time) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if len(cl.clients) >= limiterSweepAt {
		cl.sweep(now)
	}
	c, ok := cl.clients[ip]
	if !ok {
		c = &clientLimiter{Limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = now
	return c.Limiter
}

// sweep removes idle clients. Caller holds mu.
func (cl *clientLimiters) sweep(now time.Time) {
	for ip, c := range cl.clients {
		if now.Sub(c.lastSeen) > limiterIdleAfter {
			delete(cl.clients, ip)
		}
	}
}

// RateLimit throttles requests per client IP with a token bucket. Used on
// the chat endpoint, which is the only surface worth spamming.
func RateLimit(r rate.Limit, burst int) func(http.Handler) http.Handler {
	limiters := newClientLimiters(r, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ip, _, err := net.SplitHostPort(req.RemoteAddr)
			if err != nil {
				ip = req.RemoteAddr
			}
			if !limiters.get(ip, time.Now()).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"message": "too many requests"})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
