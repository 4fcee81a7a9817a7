// Package hashmap: key converters and error definitions for the chained
// hash table.
package hashmap

import (
	"errors"
	"strconv"
)

// Sentinel errors for Map construction and mutation.
var (
	// ErrNilConverter is returned by New when no KeyConverter is supplied.
	ErrNilConverter = errors.New("hashmap: key converter is nil")

	// ErrNotMember is returned by DeleteEntry when the entry does not
	// belong to this map.
	ErrNotMember = errors.New("hashmap: entry is not a member of this map")
)

// KeyConverter renders a key as its canonical string form, the only
// representation the hash function ever sees. Converters must be pure:
// equal keys must produce identical strings.
type KeyConverter[K comparable] func(K) string

// StringKey is the identity converter for native string keys.
func StringKey(k string) string { return k }

// IntKey renders an integer key in decimal form.
func IntKey(k int) string { return strconv.Itoa(k) }

// FloatKey renders a float key in 8-decimal fixed-point form, the
// canonical representation for float-keyed entries.
func FloatKey(k float64) string { return strconv.FormatFloat(k, 'f', 8, 64) }

// Entry is a single key→(value, aux) association, owned by the Map it
// was inserted into until displaced or deleted. Value and Aux are freely
// mutable by callers; algorithms repurpose them as depth, distance,
// finish position or predecessor id.
type Entry[K comparable] struct {
	// Key is the key this entry was inserted under. Immutable.
	Key K

	// Value is the primary integer payload.
	Value int64

	// Aux is the auxiliary integer slot (typically a predecessor id).
	Aux int64

	// canon caches the canonical string form so resizes need not
	// re-run the converter.
	canon string

	// Doubly-linked bucket chain; prev==nil means head of bucket.
	prev, next *Entry[K]
}
