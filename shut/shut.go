package shut

import (
	"sync"
)

// Signal is sent to every routine when the Shutdown is closed.
type Signal struct{}

// Routine is a goroutine whose lifecycle is managed by a Shutdown. It must
// return promptly after receiving a value on sig.
type Routine func(sig chan Signal) error

// Shutdown coordinates the graceful exit of a set of goroutines. Start
// routines with Go, and stop them all with Close. Close blocks until every
// routine has returned, and returns the first error any of them produced.
type Shutdown interface {
	Go(r Routine, opts ...RoutineOption)
	Close() error
	// Shutdown is an alias for Close.
	Shutdown() error
	// Routines returns a count of running routines by key.
	Routines() map[string]int
	NumRoutines() int
}

func New() Shutdown {
	return &shutter{sig: make(chan Signal), routines: make(map[string]int)}
}

type shutter struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	once     sync.Once
	sig      chan Signal
	routines map[string]int
	err      error
}

func (s *shutter) Go(r Routine, opts ...RoutineOption) {
	o := newRoutineOptions(opts)
	s.mu.Lock()
	s.routines[o.key]++
	s.mu.Unlock()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := r(s.sig)
		s.mu.Lock()
		s.routines[o.key]--
		if s.routines[o.key] == 0 {
			delete(s.routines, o.key)
		}
		if err != nil && s.err == nil {
			s.err = err
		}
		s.mu.Unlock()
	}()
}

func (s *shutter) Close() error {
	s.once.Do(func() { close(s.sig) })
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *shutter) Shutdown() error { return s.Close() }

func (s *shutter) Routines() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := make(map[string]int, len(s.routines))
	for k, v := range s.routines {
		r[k] = v
	}
	return r
}

func (s *shutter) NumRoutines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.routines {
		n += v
	}
	return n
}

// |||| ROUTINE OPTIONS ||||

type RoutineOption func(*routineOptions)

type routineOptions struct {
	key string
}

// WithKey tags the routine for Routines counts.
func WithKey(key string) RoutineOption {
	return func(o *routineOptions) { o.key = key }
}

func newRoutineOptions(opts []RoutineOption) *routineOptions {
	o := &routineOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
