// Package orderedmap provides a map which remembers insertion order.
package orderedmap

import "github.com/definitelyprobably/libclutils/types"

// OrderedMap stores values in insertion order. Re-setting an existing key
// keeps its original position. Deleted slots are compacted lazily.
type OrderedMap[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
	live    int
}

type entry[K comparable, V any] struct {
	key     K
	value   V
	deleted bool
}

// Iterator walks an OrderedMap from Front to Back or the reverse.
type Iterator[K comparable, V any] struct {
	m     *OrderedMap[K, V]
	pos   int
	fwd   bool
	Key   *K
	Value V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

func (o *OrderedMap[K, V]) Set(key K, val V) {
	if i, ok := o.index[key]; ok {
		o.entries[i].value = val
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry[K, V]{key: key, value: val})
	o.live++
}

func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i, ok := o.index[key]; ok {
		return o.entries[i].value, true
	}
	var zero V
	return zero, false
}

func (o *OrderedMap[K, V]) Has(key K) bool {
	_, ok := o.index[key]
	return ok
}

func (o *OrderedMap[K, V]) Delete(key K) {
	i, ok := o.index[key]
	if !ok {
		return
	}
	delete(o.index, key)
	o.entries[i].deleted = true
	var zero V
	o.entries[i].value = zero
	o.live--
	if o.live < len(o.entries)/2 {
		o.compact()
	}
}

func (o *OrderedMap[K, V]) compact() {
	kept := o.entries[:0]
	for _, e := range o.entries {
		if e.deleted {
			continue
		}
		o.index[e.key] = len(kept)
		kept = append(kept, e)
	}
	for i := len(kept); i < len(o.entries); i++ {
		o.entries[i] = entry[K, V]{}
	}
	o.entries = kept
}

// Count returns the number of live entries.
func (o *OrderedMap[K, V]) Count() int {
	return o.live
}

// Clear removes every entry.
func (o *OrderedMap[K, V]) Clear() {
	o.index = make(map[K]int)
	o.entries = nil
	o.live = 0
}

// Keys returns the live keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.live)
	for _, e := range o.entries {
		if !e.deleted {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Pairs returns the live entries in insertion order.
func (o *OrderedMap[K, V]) Pairs() []types.KeyValue[K, V] {
	pairs := make([]types.KeyValue[K, V], 0, o.live)
	for _, e := range o.entries {
		if !e.deleted {
			pairs = append(pairs, types.KeyValue[K, V]{Key: e.key, Value: e.value})
		}
	}
	return pairs
}

// Front returns an iterator on the oldest entry, or nil when empty.
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	return (&Iterator[K, V]{m: o, pos: -1, fwd: true}).Next()
}

// Back returns an iterator on the newest entry, or nil when empty.
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	return (&Iterator[K, V]{m: o, pos: len(o.entries), fwd: false}).Next()
}

// Next advances in the iterator's direction and returns nil past the end.
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	step := 1
	if !it.fwd {
		step = -1
	}
	for i := it.pos + step; i >= 0 && i < len(it.m.entries); i += step {
		if e := &it.m.entries[i]; !e.deleted {
			key := e.key
			return &Iterator[K, V]{m: it.m, pos: i, fwd: it.fwd, Key: &key, Value: e.value}
		}
	}
	return nil
}
