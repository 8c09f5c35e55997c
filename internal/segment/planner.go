package segment

// DefaultWidth is the raw-number width of a segment: the tradeoff between
// per-segment overhead and cache footprint. Roughly one million numbers keeps
// the candidate buffer around half a megabyte.
const DefaultWidth uint64 = 1 << 20

// first is the lowest value any segment covers. 2 is handled outside the
// odd-only representation.
const first uint64 = 3

// Planner partitions [3, Max] into contiguous fixed-width segments. Each raw
// integer in the range belongs to exactly one segment before odd adjustment;
// the partition is a pure function of Max and Width, so every caller that
// shares them sees the same plan.
type Planner struct {
	Max   uint64
	Width uint64
}

// Count returns the number of raw segments in the plan.
func (p Planner) Count() int {
	if p.Max < first {
		return 0
	}
	return int((p.Max-first)/p.Width + 1)
}

// At returns the segment with the given id. Low is bumped to the next odd
// value; High is truncated at Max.
func (p Planner) At(id int) Segment {
	rawLow := first + uint64(id)*p.Width
	high := rawLow + p.Width - 1
	if high > p.Max {
		high = p.Max
	}
	low := rawLow
	if low%2 == 0 {
		low++
	}
	return Segment{ID: id, Low: low, High: high}
}

// Segments materializes the full plan in ascending order.
func (p Planner) Segments() []Segment {
	segs := make([]Segment, p.Count())
	for i := range segs {
		segs[i] = p.At(i)
	}
	return segs
}
