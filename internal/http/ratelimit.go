package http

import (
	"sync"
	"time"
)

// Write traffic is throttled per client IP over a fixed window; the
// middleware only consults the limiter for POSTs, so reads are never
// throttled.
const (
	rateLimitPerWindow = 60
	rateLimitWindow    = time.Minute

	visitorSweepEvery = 5 * time.Minute
	visitorStaleAfter = 10 * time.Minute
)

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	done     chan struct{}
	stopOnce sync.Once
}

type visitor struct {
	windowStart time.Time
	count       int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// sweepLoop periodically evicts visitors that stopped sending requests so
// the map does not grow with every IP ever seen.
func (rl *rateLimiter) sweepLoop() {
	ticker := time.NewTicker(visitorSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictStale()
		case <-rl.done:
			return
		}
	}
}

func (rl *rateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-visitorStaleAfter)
	for ip, v := range rl.visitors {
		if v.windowStart.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// stop ends the background sweep; safe to call more than once.
func (rl *rateLimiter) stop() {
	rl.stopOnce.Do(func() {
		close(rl.done)
	})
}

// allow records a request from clientIP and reports whether it still fits in
// the client's current window. An expired window starts a fresh one.
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[clientIP]
	if !ok || now.Sub(v.windowStart) >= rateLimitWindow {
		rl.visitors[clientIP] = &visitor{windowStart: now, count: 1}
		return true
	}

	v.count++
	return v.count <= rateLimitPerWindow
}
