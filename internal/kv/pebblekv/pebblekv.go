// Package pebblekv implements kv.KV on top of a pebble database.
package pebblekv

import (
	"eratos/internal/kv"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type db struct{ *pebble.DB }

// Open opens a pebble database at dirname. opts may be nil.
func Open(dirname string, opts *pebble.Options) (kv.KV, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	pdb, err := pebble.Open(dirname, opts)
	if err != nil {
		return nil, errors.Wrap(err, "[pebblekv] - failed to open")
	}
	return db{pdb}, nil
}

// Wrap adapts an already open pebble database.
func Wrap(pdb *pebble.DB) kv.KV { return db{pdb} }

func (d db) Set(key []byte, value []byte) error {
	return d.DB.Set(key, value, pebble.NoSync)
}

func (d db) Get(key []byte) ([]byte, error) {
	v, closer, err := d.DB.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, errors.Wrap(closer.Close(), "[pebblekv] - failed to release value")
}

func (d db) Delete(key []byte) error {
	return d.DB.Delete(key, pebble.NoSync)
}

func (d db) Close() error { return d.DB.Close() }
