package challenge

import (
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedFragments bounds the issuance limiter's memory: once exceeded, an
// arbitrary entry is evicted to make room for the next fragment key.
const maxTrackedFragments = 500

// IssuanceLimiter throttles how often a challenge may be issued against a
// given fragment, keyed by an opaque caller-supplied string (typically
// "repoHash/fragmentIndex"). It protects a custodian from being driven to
// repeatedly read and hash the same fragment.
type IssuanceLimiter struct {
	rate  float64
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewIssuanceLimiter creates a limiter allowing r challenges per second per
// fragment, with a burst allowance of b.
func NewIssuanceLimiter(r float64, b int) *IssuanceLimiter {
	return &IssuanceLimiter{
		rate:     r,
		burst:    b,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a challenge against fragmentKey may be issued now,
// consuming a token if so.
func (l *IssuanceLimiter) Allow(fragmentKey string) bool {
	return l.limiterFor(fragmentKey).Allow()
}

func (l *IssuanceLimiter) limiterFor(fragmentKey string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[fragmentKey]; ok {
		return lim
	}

	if len(l.limiters) >= maxTrackedFragments {
		for k := range l.limiters {
			delete(l.limiters, k)
			break
		}
	}

	lim := rate.NewLimiter(rate.Limit(l.rate), l.burst)
	l.limiters[fragmentKey] = lim
	return lim
}
