// Package segment holds the core of the segmented sieve: the fixed-width
// partition of the search range and the odd-only marking kernel applied to
// each chunk. Segments are pure values; the only allocation per segment is
// its candidate buffer, which never outlives the call that created it.
package segment

import "fmt"

// Segment describes one odd-adjusted chunk of the range [3, N]. Low is always
// odd; High carries the truncation of the final chunk at N. A Segment whose
// odd adjustment pushed Low past High is Empty and contributes nothing.
type Segment struct {
	ID   int
	Low  uint64
	High uint64
}

func (s Segment) Empty() bool { return s.Low > s.High }

// OddCount is the candidate buffer length for the segment: one slot per odd
// value in [Low, High].
func (s Segment) OddCount() uint64 { return (s.High-s.Low)/2 + 1 }

// Value maps a buffer index back to the odd number it represents.
func (s Segment) Value(i uint64) uint64 { return s.Low + 2*i }

func (s Segment) String() string {
	return fmt.Sprintf("segment %d [%d, %d]", s.ID, s.Low, s.High)
}
