package alamos

import (
	"sync"
	"time"
)

// Duration tracks the number of times an operation ran and the average time
// it took. Implementations are safe for concurrent use.
type Duration interface {
	Record(time.Duration)
	Count() int64
	Average() time.Duration
}

// NewGaugeDuration registers a Duration gauge under key on exp. A nil
// experiment returns a no-op gauge.
func NewGaugeDuration(exp Experiment, key string) Duration {
	if exp == nil {
		return nopDuration{}
	}
	g := &gaugeDuration{k: key}
	exp.AddMeasurement(g)
	return g
}

type gaugeDuration struct {
	mu    sync.Mutex
	k     string
	count int64
	total time.Duration
}

func (g *gaugeDuration) key() string { return g.k }

func (g *gaugeDuration) Record(d time.Duration) {
	g.mu.Lock()
	g.count++
	g.total += d
	g.mu.Unlock()
}

func (g *gaugeDuration) Count() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}

func (g *gaugeDuration) Average() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.count == 0 {
		return 0
	}
	return g.total / time.Duration(g.count)
}

type nopDuration struct{}

func (nopDuration) Record(time.Duration)   {}
func (nopDuration) Count() int64           { return 0 }
func (nopDuration) Average() time.Duration { return 0 }
