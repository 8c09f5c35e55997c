package eratos

import (
	"path/filepath"

	"eratos/internal/kv"
	"eratos/internal/kv/memkv"
	"eratos/internal/kv/pebblekv"
	"eratos/internal/trace"
	"eratos/shut"
)

// |||| DB ||||

// DB computes prime counts and sequences over bounded integer ranges with a
// segmented Sieve of Eratosthenes, and keeps a registry of completed runs.
type DB interface {

	// NewCount opens a Count query, which computes the number of primes in
	// [2, N]:
	//
	//		db, _ := eratos.Open("", eratos.MemBacked())
	//		res, err := db.NewCount().WhereMax(1_000_000).WithWorkers(4).Exec(ctx)
	//		// res.Count == 78498
	//
	// WithWorkers selects the parallel path; one worker (the default) runs the
	// serial loop. Both paths return identical counts for identical bounds.
	NewCount() Count

	// NewSequence opens a Sequence query, which yields the full ascending
	// prime sequence in [2, N] in addition to its count. The sequence is
	// persisted alongside the run header so it can be retrieved later:
	//
	//		res, err := db.NewSequence().WhereMax(1000).Exec(ctx)
	//		// res.Primes == [2 3 5 7 ...], res.Header.Count == 168
	NewSequence() Sequence

	// NewRetrieveRun opens a RetrieveRun query, which reloads a persisted run
	// by its PK. WithSequence additionally reloads the yielded sequence of a
	// Sequence run.
	NewRetrieveRun() RetrieveRun

	// Close releases the run registry and stops background routines. The DB
	// must not be used after Close.
	Close() error
}

// Open opens a DB whose run registry lives under dirname. Use MemBacked to
// run without touching disk.
func Open(dirname string, opts ...Option) (DB, error) {
	o := newOptions(dirname, opts...)
	kve, err := openKV(o)
	if err != nil {
		return nil, newDerivedError(ErrInternal, err)
	}
	sd := shut.New()
	d := &db{
		opts:     o,
		kve:      kve,
		shutdown: sd,
		metrics:  newMetrics(o.exp),
		trace:    newTraceSink(o, sd),
	}
	return d, nil
}

func openKV(o *options) (kv.KV, error) {
	if o.memBacked {
		return memkv.Open()
	}
	return pebblekv.Open(filepath.Join(o.dirname, "registry"), nil)
}

type db struct {
	opts     *options
	kve      kv.KV
	shutdown shut.Shutdown
	metrics  metrics
	trace    *trace.Sink
}

func (d *db) NewCount() Count { return newCount(d) }

func (d *db) NewSequence() Sequence { return newSequence(d) }

func (d *db) NewRetrieveRun() RetrieveRun { return newRetrieveRun(d) }

func (d *db) Close() error {
	if err := d.shutdown.Close(); err != nil {
		return err
	}
	return d.kve.Close()
}
