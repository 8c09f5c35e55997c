package eratos

import (
	"context"
	"time"

	"eratos/internal/baseprime"
	"eratos/internal/runner"
	"eratos/internal/segment"
	"eratos/internal/seq"
	"eratos/pk"
	"go.uber.org/zap"
)

// |||||| RUN ||||||
//
// A run is one full sieve of [2, N]. Both paths share the same plan and the
// same kernel; they differ only in who claims segments. The total is folded
// from per-segment counts plus the fixed count for the prime 2, which the
// odd-only buffers never store.

func (d *db) runCount(ctx context.Context, max uint64, workers int) (RunHeader, error) {
	var (
		start = time.Now()
		h     = RunHeader{PK: pk.New(), Max: max, Workers: uint32(workers)}
	)
	if max >= 2 {
		var (
			base  = d.basePrimes(max)
			plan  = segment.Planner{Max: max, Width: d.opts.width}
			count = int64(1)
		)
		if workers <= 1 {
			for _, s := range plan.Segments() {
				count += d.sieve(0, s, base)
			}
		} else {
			p := runner.New[segment.Segment](workers, d.shutdown, d.opts.logger)
			count += p.Sum(plan.Segments(), func(worker int, s segment.Segment) int64 {
				return d.sieve(worker, s, base)
			})
		}
		h.Count = count
	}
	h.Elapsed = time.Since(start)
	d.metrics.run.Record(h.Elapsed)
	d.trace.Emit("run complete",
		zap.String("pk", h.PK.String()),
		zap.Uint64("max", max),
		zap.Int("workers", workers),
		zap.Int64("count", h.Count),
		zap.Duration("elapsed", h.Elapsed),
	)
	return h, d.saveHeader(h)
}

func (d *db) runSequence(ctx context.Context, max uint64, workers int) (RunHeader, *seq.Sequence, error) {
	var (
		start = time.Now()
		h     = RunHeader{PK: pk.New(), Max: max, Workers: uint32(workers), Sequence: true}
		sq    = seq.New()
	)
	if max >= 2 {
		sq.Add(2)
		var (
			base = d.basePrimes(max)
			plan = segment.Planner{Max: max, Width: d.opts.width}
		)
		if workers <= 1 {
			for _, s := range plan.Segments() {
				sq.Add(d.sievePrimes(0, s, base)...)
			}
		} else {
			p := runner.New[segment.Segment](workers, d.shutdown, d.opts.logger)
			err := p.Exec(ctx, plan.Segments(), func(s segment.Segment) {
				sq.Add(d.sievePrimes(-1, s, base)...)
			})
			if err != nil {
				return h, nil, newDerivedError(ErrInternal, err)
			}
		}
		h.Count = int64(sq.Cardinality())
	}
	h.Elapsed = time.Since(start)
	d.metrics.run.Record(h.Elapsed)
	if err := d.saveHeader(h); err != nil {
		return h, nil, err
	}
	if err := d.saveSequence(h.PK, sq); err != nil {
		return h, nil, err
	}
	return h, sq, nil
}

// basePrimes computes the shared base-prime set for a run. The set is
// read-only for the rest of the run and needs no synchronization.
func (d *db) basePrimes(max uint64) []uint64 {
	var (
		start = time.Now()
		limit = baseprime.Limit(max)
		base  = baseprime.Primes(limit)
	)
	d.metrics.base.Record(time.Since(start))
	d.trace.Emit("computed base primes",
		zap.Uint64("limit", limit),
		zap.Int("count", len(base)),
	)
	return base
}

func (d *db) sieve(worker int, s segment.Segment, base []uint64) int64 {
	if s.Empty() {
		d.trace.Emit("skipped empty segment", zap.Int("worker", worker), zap.Int("segment", s.ID))
		return 0
	}
	start := time.Now()
	count := segment.Sieve(s, base)
	d.metrics.segment.Record(time.Since(start))
	d.trace.Emit("sieved segment",
		zap.Int("worker", worker),
		zap.Int("segment", s.ID),
		zap.Uint64("low", s.Low),
		zap.Uint64("high", s.High),
		zap.Int64("count", count),
	)
	return count
}

func (d *db) sievePrimes(worker int, s segment.Segment, base []uint64) []uint64 {
	if s.Empty() {
		d.trace.Emit("skipped empty segment", zap.Int("worker", worker), zap.Int("segment", s.ID))
		return nil
	}
	start := time.Now()
	primes := segment.Primes(s, base)
	d.metrics.segment.Record(time.Since(start))
	d.trace.Emit("sieved segment",
		zap.Int("worker", worker),
		zap.Int("segment", s.ID),
		zap.Uint64("low", s.Low),
		zap.Uint64("high", s.High),
		zap.Int("count", len(primes)),
	)
	return primes
}
