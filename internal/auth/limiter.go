package auth

import (
	"sync"
	"time"
)

// sweepThreshold is the number of tracked IPs above which Fail prunes every
// entry, not just the caller's.
const sweepThreshold = 1024

// LoginLimiter counts failed login attempts per client IP over a sliding window.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time
}

func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// Allowed reports whether ip may try to log in. It prunes expired attempts
// but does not record a new one; call Fail after a rejected login.
func (l *LoginLimiter) Allowed(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.prune(ip)
	return len(kept) < l.max
}

func (l *LoginLimiter) Fail(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.attempts) >= sweepThreshold {
		for tracked := range l.attempts {
			l.prune(tracked)
		}
	} else {
		l.prune(ip)
	}
	l.attempts[ip] = append(l.attempts[ip], l.now())
}

// Reset forgets ip's failures after a successful login.
func (l *LoginLimiter) Reset(ip string) {
	l.mu.Lock()
	delete(l.attempts, ip)
	l.mu.Unlock()
}

// prune drops attempts older than the window; l.mu must be held.
func (l *LoginLimiter) prune(ip string) []time.Time {
	cutoff := l.now().Add(-l.window)
	hits := l.attempts[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, ip)
		return nil
	}
	l.attempts[ip] = kept
	return kept
}
