package eratos

import (
	"io"
	"time"

	"eratos/internal/errutil"
	"eratos/internal/kv"
	"eratos/internal/seq"
	"eratos/pk"
)

// |||||| RUN HEADER ||||||

// RunHeader records one completed sieve run in the registry.
type RunHeader struct {
	PK pk.PK
	// Max is the upper bound N of the search range [2, N].
	Max uint64
	// Workers is the number of workers the run executed on. 1 means the
	// serial path.
	Workers uint32
	// Sequence reports whether the run yielded (and persisted) the full prime
	// sequence, not just the count.
	Sequence bool
	// Count is the number of primes in [2, Max].
	Count int64
	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration
}

// Flush implements kv.Flusher. The PK lives in the key, not the value.
func (h RunHeader) Flush(w io.Writer) error {
	cw := errutil.NewCatchWrite(w)
	cw.Write(h.Max)
	cw.Write(h.Workers)
	cw.Write(boolToU32(h.Sequence))
	cw.Write(h.Count)
	cw.Write(int64(h.Elapsed))
	return cw.Error()
}

// Load implements kv.Loader.
func (h *RunHeader) Load(r io.Reader) error {
	var (
		cr      = errutil.NewCatchRead(r)
		seqFlag uint32
		elapsed int64
	)
	cr.Read(&h.Max)
	cr.Read(&h.Workers)
	cr.Read(&seqFlag)
	cr.Read(&h.Count)
	cr.Read(&elapsed)
	h.Sequence = seqFlag != 0
	h.Elapsed = time.Duration(elapsed)
	return cr.Error()
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// |||||| KEYS ||||||

const (
	runKeyPrefix = byte('r')
	seqKeyPrefix = byte('s')
)

func runKey(k pk.PK) []byte { return kv.CompositeKey(runKeyPrefix, k.Bytes()) }

func seqKey(k pk.PK) []byte { return kv.CompositeKey(seqKeyPrefix, k.Bytes()) }

// |||||| REGISTRY ||||||

func (d *db) saveHeader(h RunHeader) error {
	if err := kv.Flush(d.kve, runKey(h.PK), h); err != nil {
		return newDerivedError(ErrInternal, err)
	}
	return nil
}

func (d *db) loadHeader(h *RunHeader) error {
	return kv.Load(d.kve, runKey(h.PK), h)
}

func (d *db) saveSequence(k pk.PK, sq *seq.Sequence) error {
	if err := kv.Flush(d.kve, seqKey(k), sq); err != nil {
		return newDerivedError(ErrInternal, err)
	}
	return nil
}

func (d *db) loadSequence(k pk.PK, sq *seq.Sequence) error {
	return kv.Load(d.kve, seqKey(k), sq)
}
