package eratos

import "eratos/pk"

// |||||| QUERY ||||||

type queryOptKey byte

const (
	maxOptKey queryOptKey = iota + 1
	workersOptKey
	pkOptKey
	sequenceOptKey
)

type query struct {
	opts map[queryOptKey]interface{}
}

func newQueryBase() query {
	return query{opts: make(map[queryOptKey]interface{})}
}

func (q query) get(key queryOptKey) (interface{}, bool) {
	o, ok := q.opts[key]
	return o, ok
}

func (q query) set(key queryOptKey, value interface{}) {
	q.opts[key] = value
}

// |||||| OPT ACCESSORS ||||||

func setMax(q query, n uint64) { q.set(maxOptKey, n) }

func getMax(q query) (uint64, bool) {
	v, ok := q.get(maxOptKey)
	if !ok {
		return 0, false
	}
	return v.(uint64), true
}

func setWorkers(q query, t int) { q.set(workersOptKey, t) }

// getWorkers returns the requested worker count, clamped to at least 1.
func getWorkers(q query) int {
	v, ok := q.get(workersOptKey)
	if !ok {
		return 1
	}
	if t := v.(int); t > 1 {
		return t
	}
	return 1
}

func setPK(q query, k pk.PK) { q.set(pkOptKey, k) }

func getPK(q query) (pk.PK, bool) {
	v, ok := q.get(pkOptKey)
	if !ok {
		return pk.PK{}, false
	}
	return v.(pk.PK), true
}

func setSequence(q query) { q.set(sequenceOptKey, true) }

func wantSequence(q query) bool {
	_, ok := q.get(sequenceOptKey)
	return ok
}
