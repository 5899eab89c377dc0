package memo

import (
	"sync"
	"sync/atomic"
)

// entry boxes a result so nil interface values survive the round trip through sync.Map.
type entry[R any] struct {
	value R
}

// table is an unbounded, insert-only map from key to result.
type table[R any] struct {
	entries sync.Map
	size    atomic.Int64
}

func newTable[R any]() *table[R] {
	return &table[R]{}
}

func (t *table[R]) load(key string) (R, bool) {
	v, ok := t.entries.Load(key)
	if !ok {
		var zero R
		return zero, false
	}
	return v.(entry[R]).value, true
}

// storeIfAbsent stores value under key unless the key is taken, and returns
// whichever value the table holds afterwards.
func (t *table[R]) storeIfAbsent(key string, value R) R {
	actual, loaded := t.entries.LoadOrStore(key, entry[R]{value: value})
	if !loaded {
		t.size.Add(1)
	}
	return actual.(entry[R]).value
}

func (t *table[R]) len() int {
	return int(t.size.Load())
}

func (t *table[R]) snapshot() map[string]R {
	out := make(map[string]R, t.len())
	t.entries.Range(func(k, v any) bool {
		out[k.(string)] = v.(entry[R]).value
		return true
	})
	return out
}
