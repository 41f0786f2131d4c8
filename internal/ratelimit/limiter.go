// Package ratelimit throttles failed admin logins with a sliding window per
// source IP. State is process local; running multiple replicas would need
// the counters moved into the shared store.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// LockedError tells the caller how long to back off.
type LockedError struct {
	RetryAfter time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

type Limiter struct {
	mu       sync.Mutex
	maxFails int
	window   time.Duration
	fails    map[string][]time.Time

	now func() time.Time
}

func New(maxFails int, window time.Duration) *Limiter {
	return &Limiter{
		maxFails: maxFails,
		window:   window,
		fails:    make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the key may attempt a login. When locked out it
// returns a LockedError carrying the time until the oldest failure ages out.
func (l *Limiter) Allow(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(key)
	if len(recent) < l.maxFails {
		return nil
	}

	retryAfter := l.window - l.now().Sub(recent[0])
	if retryAfter < 0 {
		retryAfter = 0
	}
	return &LockedError{RetryAfter: retryAfter}
}

// Fail records a failed attempt for the key.
func (l *Limiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(key)
	l.fails[key] = append(recent, l.now())
}

// Reset clears the counter for the key, called on successful login.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.fails, key)
}

// prune drops failures older than the window. Caller holds the lock.
func (l *Limiter) prune(key string) []time.Time {
	cutoff := l.now().Add(-l.window)
	recent := l.fails[key][:0]
	for _, at := range l.fails[key] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	if len(recent) == 0 {
		delete(l.fails, key)
		return nil
	}
	l.fails[key] = recent
	return recent
}
