// Package trace routes human-readable diagnostics from sieve workers through
// a single drain goroutine, so concurrent emitters never interleave writes to
// the output stream. Tracing is observability only: a Sink drops lines under
// pressure, and nothing downstream of Emit can influence a sieve result.
package trace

import (
	"eratos/shut"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Config struct {
	Logger   *zap.Logger
	Shutdown shut.Shutdown
	// Buffer is the event queue depth. Emit drops once it is full.
	Buffer int
	// Rate and Burst cap trace volume globally. The cap exists purely for
	// output readability.
	Rate  rate.Limit
	Burst int
}

func mergeDefaultConfig(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Buffer == 0 {
		cfg.Buffer = 512
	}
	if cfg.Rate == 0 {
		cfg.Rate = 500
	}
	if cfg.Burst == 0 {
		cfg.Burst = 100
	}
}

// Sink accepts trace events from any goroutine. The zero-ish sink returned by
// Nop discards everything without synchronization.
type Sink struct {
	enabled bool
	events  chan event
	limiter *rate.Limiter
	logger  *zap.Logger
}

type event struct {
	msg    string
	fields []zap.Field
}

// New starts a Sink whose drain goroutine lives until shutdown closes.
func New(cfg Config) *Sink {
	mergeDefaultConfig(&cfg)
	s := &Sink{
		enabled: true,
		events:  make(chan event, cfg.Buffer),
		limiter: rate.NewLimiter(cfg.Rate, cfg.Burst),
		logger:  cfg.Logger,
	}
	cfg.Shutdown.Go(func(sig chan shut.Signal) error {
		for {
			select {
			case <-sig:
				// Flush whatever is already queued, then exit.
				for {
					select {
					case e := <-s.events:
						s.logger.Info(e.msg, e.fields...)
					default:
						return nil
					}
				}
			case e := <-s.events:
				s.logger.Info(e.msg, e.fields...)
			}
		}
	}, shut.WithKey("trace.drain"))
	return s
}

// Nop returns a Sink that drops everything.
func Nop() *Sink { return &Sink{} }

// Emit queues a trace line. Lines over the rate cap, or arriving while the
// queue is full, are dropped silently.
func (s *Sink) Emit(msg string, fields ...zap.Field) {
	if !s.enabled || !s.limiter.Allow() {
		return
	}
	select {
	case s.events <- event{msg: msg, fields: fields}:
	default:
	}
}
