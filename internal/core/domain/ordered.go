package domain

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Ordered is a map keyed by SourceID that remembers insertion order.
type Ordered[V any] struct {
	pairs *orderedmap.OrderedMap[SourceID, V]
}

// NewOrdered returns an empty ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{pairs: newPairs[SourceID, V]()}
}

// newPairs builds the backing map. JSON output keeps markup and non-ASCII characters literal.
func newPairs[K comparable, V any]() *orderedmap.OrderedMap[K, V] {
	return orderedmap.New[K, V](orderedmap.WithDisableHTMLEscape[K, V]())
}

// Set stores value under key. A new key is appended; an existing key keeps its position.
func (o *Ordered[V]) Set(key SourceID, value V) {
	o.pairs.Set(key, value)
}

// Get returns the value stored under key.
func (o *Ordered[V]) Get(key SourceID) (V, bool) {
	return o.pairs.Get(key)
}

// Len returns the number of keys.
func (o *Ordered[V]) Len() int {
	return o.pairs.Len()
}

// Keys returns a copy of the keys in order.
func (o *Ordered[V]) Keys() []SourceID {
	out := make([]SourceID, 0, o.pairs.Len())
	for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// All iterates over the entries in order.
func (o *Ordered[V]) All() iter.Seq2[SourceID, V] {
	return func(yield func(SourceID, V) bool) {
		for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map returns the entries as a plain map, dropping order.
func (o *Ordered[V]) Map() map[SourceID]V {
	out := make(map[SourceID]V, o.pairs.Len())
	for k, v := range o.All() {
		out[k] = v
	}
	return out
}

// Reordered returns a new ordered map holding the same values in the order given by keys.
// Keys not present in o are ignored.
func (o *Ordered[V]) Reordered(keys []SourceID) *Ordered[V] {
	out := NewOrdered[V]()
	for _, k := range keys {
		if v, ok := o.pairs.Get(k); ok {
			out.Set(k, v)
		}
	}
	return out
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (o *Ordered[V]) MarshalJSON() ([]byte, error) {
	return o.pairs.MarshalJSON()
}
