package segment

// Sieve marks composites in seg against the shared base primes and returns
// the number of primes in [seg.Low, seg.High]. The caller accounts for the
// prime 2 separately. Pure function of its inputs; safe to call from any
// number of goroutines sharing base.
func Sieve(seg Segment, base []uint64) int64 {
	if seg.Empty() {
		return 0
	}
	buf := mark(seg, base)
	var count int64
	for i, candidate := range buf {
		if candidate && seg.Value(uint64(i)) <= seg.High {
			count++
		}
	}
	return count
}

// Primes returns the surviving primes of the segment in ascending order.
func Primes(seg Segment, base []uint64) []uint64 {
	if seg.Empty() {
		return nil
	}
	buf := mark(seg, base)
	out := make([]uint64, 0, len(buf))
	for i, candidate := range buf {
		if !candidate {
			continue
		}
		if v := seg.Value(uint64(i)); v <= seg.High {
			out = append(out, v)
		}
	}
	return out
}

// mark allocates the odd-only candidate buffer for seg and clears every
// multiple of a base prime. Index i represents the odd number seg.Low + 2i.
//
// Base primes must be ascending: once p*p exceeds seg.High no later prime can
// mark anything new in the segment, and every remaining candidate is prime —
// any composite <= High has a factor <= sqrt(High), which an earlier prime
// already covered.
func mark(seg Segment, base []uint64) []bool {
	buf := make([]bool, seg.OddCount())
	for i := range buf {
		buf[i] = true
	}
	for _, p := range base {
		if p == 2 {
			// The buffer holds no even numbers.
			continue
		}
		sq := p * p
		if sq > seg.High {
			break
		}
		// First multiple of p at or above max(p^2, Low), bumped to the
		// next odd multiple. Stepping by 2p then skips the even ones.
		start := sq
		if m := ((seg.Low + p - 1) / p) * p; m > start {
			start = m
		}
		if start%2 == 0 {
			start += p
		}
		for x := start; x <= seg.High; x += 2 * p {
			buf[(x-seg.Low)/2] = false
		}
	}
	return buf
}
