package eratos

import (
	"context"

	"eratos/internal/kv"
	"eratos/internal/seq"
	"eratos/pk"
	"github.com/cockroachdb/errors"
)

// RetrieveRun reloads a persisted run from the registry.
type RetrieveRun struct {
	query
	db *db
}

func newRetrieveRun(d *db) RetrieveRun {
	return RetrieveRun{query: newQueryBase(), db: d}
}

// WherePK selects the run to retrieve.
func (r RetrieveRun) WherePK(k pk.PK) RetrieveRun {
	setPK(r.query, k)
	return r
}

// WithSequence additionally reloads the run's yielded prime sequence. The run
// must have been executed as a Sequence query.
func (r RetrieveRun) WithSequence() RetrieveRun {
	setSequence(r.query)
	return r
}

func (r RetrieveRun) Exec(ctx context.Context) (SequenceResult, error) {
	k, ok := getPK(r.query)
	if !ok {
		return SequenceResult{}, newSimpleError(ErrInvalidQuery, "no pk provided to retrieve query")
	}
	h := RunHeader{PK: k}
	if err := r.db.loadHeader(&h); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return SequenceResult{}, newSimpleError(ErrNotFound, "no run found for pk")
		}
		return SequenceResult{}, newDerivedError(ErrInternal, err)
	}
	res := SequenceResult{Header: h}
	if !wantSequence(r.query) {
		return res, nil
	}
	if !h.Sequence {
		return res, newSimpleError(ErrInvalidQuery, "run did not yield a sequence")
	}
	sq := seq.New()
	if err := r.db.loadSequence(k, sq); err != nil {
		return res, newDerivedError(ErrInternal, err)
	}
	res.Primes = sq.Values()
	return res, nil
}
