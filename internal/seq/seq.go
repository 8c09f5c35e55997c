// Package seq accumulates the full ordered prime sequence a run yields.
// Workers complete segments in arbitrary order; the bitmap backing keeps the
// sequence ascending regardless, and compact enough to persist whole.
package seq

import (
	"io"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

type Sequence struct {
	mu sync.Mutex
	bm *roaring64.Bitmap
}

func New() *Sequence {
	return &Sequence{bm: roaring64.NewBitmap()}
}

// Add merges values into the sequence. Safe for concurrent use.
func (s *Sequence) Add(values ...uint64) {
	if len(values) == 0 {
		return
	}
	s.mu.Lock()
	s.bm.AddMany(values)
	s.mu.Unlock()
}

func (s *Sequence) Cardinality() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bm.GetCardinality()
}

// Values returns the sequence in ascending order.
func (s *Sequence) Values() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bm.ToArray()
}

// Flush implements kv.Flusher.
func (s *Sequence) Flush(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.bm.WriteTo(w)
	return err
}

// Load implements kv.Loader.
func (s *Sequence) Load(r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.bm.ReadFrom(r)
	return err
}
