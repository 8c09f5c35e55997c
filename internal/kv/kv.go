package kv

import (
	"bytes"
	"io"

	"eratos/internal/errutil"
	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Get when no value exists for the key. Engine
// implementations translate their own not-found sentinel into it.
var ErrNotFound = errors.New("[kv] - key not found")

// KV is the minimal key-value engine the run registry needs.
type KV interface {
	Set(key []byte, value []byte) error
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	Close() error
}

// |||| FLUSH ||||

// Flusher writes its binary representation to a writer.
type Flusher interface {
	Flush(w io.Writer) error
}

// Loader fills itself from a binary representation.
type Loader interface {
	Load(r io.Reader) error
}

// Flush encodes f and sets it under key.
func Flush(kve KV, key []byte, f Flusher) error {
	b := new(bytes.Buffer)
	if err := f.Flush(b); err != nil {
		return err
	}
	return kve.Set(key, b.Bytes())
}

// Load gets key and fills l from the stored value.
func Load(kve KV, key []byte, l Loader) error {
	v, err := kve.Get(key)
	if err != nil {
		return err
	}
	return l.Load(bytes.NewReader(v))
}

// |||| KEYS ||||

// CompositeKey concatenates the little-endian encodings of elems. Strings are
// written as raw bytes. Panics on an unencodable element, which is a
// programming error, not a runtime condition.
func CompositeKey(elems ...interface{}) []byte {
	b := new(bytes.Buffer)
	cw := errutil.NewCatchWrite(b)
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			cw.Write([]byte(v))
		default:
			cw.Write(e)
		}
	}
	if cw.Error() != nil {
		panic(cw.Error())
	}
	return b.Bytes()
}
