package eratos

import "context"

// Count computes the number of primes in [2, N].
//
// N below 2 yields a count of 0 and N of exactly 2 yields 1; neither is an
// error. A query with no bound at all is rejected with ErrInvalidQuery.
type Count struct {
	query
	db *db
}

func newCount(d *db) Count {
	return Count{query: newQueryBase(), db: d}
}

// WhereMax sets the upper bound N of the search range.
func (c Count) WhereMax(n uint64) Count {
	setMax(c.query, n)
	return c
}

// WithWorkers executes the query on t workers with dynamic segment
// assignment. Values of 1 or below select the serial path.
func (c Count) WithWorkers(t int) Count {
	setWorkers(c.query, t)
	return c
}

// Exec runs the sieve and persists a RunHeader for the completed run.
func (c Count) Exec(ctx context.Context) (RunHeader, error) {
	max, ok := getMax(c.query)
	if !ok {
		return RunHeader{}, newSimpleError(ErrInvalidQuery, "no max provided to count query")
	}
	return c.db.runCount(ctx, max, getWorkers(c.query))
}
