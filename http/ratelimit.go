package http

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultLimiterIdle is how long a host's bucket survives without use
// before it may be evicted.
const DefaultLimiterIdle = 10 * time.Minute

// maxTrackedHosts triggers an eviction sweep when exceeded.
const maxTrackedHosts = 1024

// hostBucket pairs a token bucket with its last use.
type hostBucket struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// DomainLimiter provides per-host rate limiting using token buckets.
// Requests to different hosts proceed independently; requests to the same
// host are spaced by the configured rate. Buckets idle for longer than
// the idle window are dropped once many hosts are tracked, so a long
// running server does not grow without bound.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*hostBucket
	rps     float64
	idle    time.Duration
	now     func() time.Time
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second per host with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*hostBucket),
		rps:     rps,
		idle:    DefaultLimiterIdle,
		now:     time.Now,
	}
}

// Wait blocks until the rate limit allows a request to host.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(host).Wait(ctx)
}

// Hosts returns the number of hosts currently tracked.
func (d *DomainLimiter) Hosts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buckets)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	b, ok := d.buckets[host]
	if !ok {
		if len(d.buckets) >= maxTrackedHosts {
			d.evictIdle(now)
		}
		b = &hostBucket{limiter: rate.NewLimiter(rate.Limit(d.rps), 1)}
		d.buckets[host] = b
	}
	b.lastUsed = now
	return b.limiter
}

// evictIdle drops buckets unused for longer than the idle window.
// Callers must hold d.mu.
func (d *DomainLimiter) evictIdle(now time.Time) {
	for host, b := range d.buckets {
		if now.Sub(b.lastUsed) > d.idle {
			delete(d.buckets, host)
		}
	}
}
