package eratos

import "context"

// Sequence computes the full ascending prime sequence in [2, N], for
// consumers that need the primes themselves rather than their count.
type Sequence struct {
	query
	db *db
}

// SequenceResult pairs a run's header with its yielded primes.
type SequenceResult struct {
	Header RunHeader
	Primes []uint64
}

func newSequence(d *db) Sequence {
	return Sequence{query: newQueryBase(), db: d}
}

// WhereMax sets the upper bound N of the search range.
func (s Sequence) WhereMax(n uint64) Sequence {
	setMax(s.query, n)
	return s
}

// WithWorkers executes the query on t workers. Completion order across
// workers is unspecified; the yielded sequence is ascending regardless.
func (s Sequence) WithWorkers(t int) Sequence {
	setWorkers(s.query, t)
	return s
}

// Exec runs the sieve, persists the run header and sequence, and returns the
// primes in ascending order.
func (s Sequence) Exec(ctx context.Context) (SequenceResult, error) {
	max, ok := getMax(s.query)
	if !ok {
		return SequenceResult{}, newSimpleError(ErrInvalidQuery, "no max provided to sequence query")
	}
	h, sq, err := s.db.runSequence(ctx, max, getWorkers(s.query))
	if err != nil {
		return SequenceResult{}, err
	}
	return SequenceResult{Header: h, Primes: sq.Values()}, nil
}
