package ratelimit

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrTooManyAttempts is returned once a key used up its window.
var ErrTooManyAttempts = errors.New("too many attempts")

// Limiter is an in-memory sliding window limiter. A key may be used max
// times within any window long span.
type Limiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	window time.Duration
	max    int
	now    func() time.Time
	sweep  time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		hits:   make(map[string][]time.Time),
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it fits in the window.
// Rejected hits are not recorded.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepExpired(now)
	hits := l.live(key, now)
	if len(hits) >= l.max {
		l.hits[key] = hits
		return false
	}
	l.hits[key] = append(hits, now)
	return true
}

// RetryAfter is how long key has to wait before its next hit is allowed.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	hits := l.live(key, now)
	if len(hits) < l.max {
		return 0
	}
	return hits[len(hits)-l.max].Add(l.window).Sub(now)
}

// Reset forgets the key, e.g. after a successful login.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hits, key)
}

// live drops the hits of key that left the window. Callers hold mu.
func (l *Limiter) live(key string, now time.Time) []time.Time {
	hits := l.hits[key]
	cut := 0
	for cut < len(hits) && !hits[cut].Add(l.window).After(now) {
		cut++
	}
	if cut == len(hits) {
		delete(l.hits, key)
		return nil
	}
	return hits[cut:]
}

// sweepExpired removes idle keys at most once per window. Callers hold mu.
func (l *Limiter) sweepExpired(now time.Time) {
	if now.Before(l.sweep) {
		return
	}
	l.sweep = now.Add(l.window)
	for key := range l.hits {
		l.live(key, now)
	}
}

// LoginLimiter throttles sign in attempts per client IP and per username.
type LoginLimiter struct {
	ip       *Limiter
	username *Limiter
}

// NewLoginLimiter allows perIP attempts per IP and perUsername attempts per
// username within window.
func NewLoginLimiter(window time.Duration, perIP, perUsername int) *LoginLimiter {
	return &LoginLimiter{
		ip:       NewLimiter(window, perIP),
		username: NewLimiter(window, perUsername),
	}
}

// CheckLogin verifies if a login attempt is allowed from the given IP for username
func (m *LoginLimiter) CheckLogin(ip, username string) error {
	if !m.ip.Allow(ip) {
		return ErrTooManyAttempts
	}
	username = strings.ToLower(username)
	if username != "" && !m.username.Allow(username) {
		return ErrTooManyAttempts
	}
	return nil
}

// Succeeded clears the username counter after a successful login.
func (m *LoginLimiter) Succeeded(username string) {
	m.username.Reset(strings.ToLower(username))
}

// RetryAfter is the longest wait left on either the IP or the username.
func (m *LoginLimiter) RetryAfter(ip, username string) time.Duration {
	return max(m.ip.RetryAfter(ip), m.username.RetryAfter(strings.ToLower(username)))
}
