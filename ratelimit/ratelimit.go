// Package ratelimit throttles requests per client with fixed windows.
// Counters live in Valkey when it is configured and in process memory otherwise.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/logging"
)

// Store counts hits inside a fixed window.
type Store interface {
	// Increment adds one hit to key. The window starts with the first hit.
	// It returns the hit count in the current window and the time left in it.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Policy is a named limit: at most Limit requests per Window.
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Result describes one counted request.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter applies policies against a Store.
type Limiter struct {
	store Store
	log   logging.Logger
}

// NewLimiter creates a Limiter over store.
func NewLimiter(store Store, log logging.Logger) *Limiter {
	return &Limiter{store: store, log: log.With("component", "ratelimit")}
}

// Allow counts one request for key under p.
func (l *Limiter) Allow(ctx context.Context, p Policy, key string) (Result, error) {
	count, ttl, err := l.store.Increment(ctx, fmt.Sprintf("ratelimit:%s:%s", p.Name, key), p.Window)
	if err != nil {
		return Result{}, err
	}
	if ttl <= 0 {
		ttl = p.Window
	}
	remaining := int64(p.Limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:    count <= int64(p.Limit),
		Limit:      p.Limit,
		Remaining:  int(remaining),
		ResetAfter: ttl,
	}, nil
}

// Middleware throttles each client IP under p. When the store fails the
// request is let through and the failure logged.
func (l *Limiter) Middleware(p Policy) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := l.Allow(r.Context(), p, clientIP(r))
			if err != nil {
				l.log.Warn(r.Context(), "rate limit store unavailable, allowing request",
					"policy", p.Name, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if !res.Allowed {
				retry := int(math.Ceil(res.ResetAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
				apperror.WriteError(w, r, apperror.NewTooManyRequestsError("Too Many Requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. chi's RealIP middleware has
// already replaced it with the forwarded address when one was sent.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
