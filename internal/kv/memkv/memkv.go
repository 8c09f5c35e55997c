// Package memkv opens a memory-backed kv engine, used by mem-backed DBs and
// in tests.
package memkv

import (
	"eratos/internal/kv"
	"eratos/internal/kv/pebblekv"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

func Open() (kv.KV, error) {
	return pebblekv.Open("", &pebble.Options{FS: vfs.NewMem()})
}
