package eratos

import (
	"eratos/alamos"
	"eratos/internal/segment"
	"eratos/internal/trace"
	"eratos/shut"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Option func(*options)

type options struct {
	dirname   string
	memBacked bool
	width     uint64
	verbose   bool
	logger    *zap.Logger
	exp       alamos.Experiment
	traceCfg  struct {
		rate  rate.Limit
		burst int
	}
}

func newOptions(dirname string, opts ...Option) *options {
	o := &options{dirname: dirname}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	if o.width == 0 {
		o.width = segment.DefaultWidth
	}

	// || LOGGER ||

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

func newTraceSink(o *options, sd shut.Shutdown) *trace.Sink {
	if !o.verbose {
		return trace.Nop()
	}
	return trace.New(trace.Config{
		Logger:   o.logger,
		Shutdown: sd,
		Rate:     o.traceCfg.rate,
		Burst:    o.traceCfg.burst,
	})
}

// MemBacked keeps the run registry in memory. The DB leaves no state behind
// after Close.
func MemBacked() Option {
	return func(o *options) {
		o.dirname = ""
		o.memBacked = true
	}
}

// WithSegmentWidth overrides the raw-number width of a sieve segment. Width
// only affects memory footprint and scheduling granularity, never results.
func WithSegmentWidth(width uint64) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithVerbose routes per-segment diagnostics through the DB's logger. Purely
// informative; counts are identical with tracing on or off.
func WithVerbose() Option {
	return func(o *options) {
		o.verbose = true
	}
}

// WithTraceRate caps trace volume. Zero values keep the defaults.
func WithTraceRate(r rate.Limit, burst int) Option {
	return func(o *options) {
		o.traceCfg.rate = r
		o.traceCfg.burst = burst
	}
}

func WithExperiment(exp alamos.Experiment) Option {
	return func(o *options) {
		o.exp = alamos.SubExperiment(exp, "eratos")
	}
}
