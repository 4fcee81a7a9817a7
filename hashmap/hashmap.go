// Package hashmap: the chained table itself — hashing, insertion,
// lookup, deletion and resize hysteresis.
package hashmap

import (
	"fmt"
	"strings"
)

// initialCapacity is the bucket-array floor; halving never shrinks the
// table below it.
const initialCapacity = 8

// Map is a separately-chained hash table from K to (Value, Aux) pairs.
// The zero value is not usable; construct with New.
type Map[K comparable] struct {
	conv    KeyConverter[K]
	buckets []*Entry[K]
	size    int
}

// New constructs an empty Map hashing through conv.
// Returns ErrNilConverter when conv is nil.
func New[K comparable](conv KeyConverter[K]) (*Map[K], error) {
	if conv == nil {
		return nil, ErrNilConverter
	}
	return &Map[K]{
		conv:    conv,
		buckets: make([]*Entry[K], initialCapacity),
	}, nil
}

// hash is djb2 over the canonical string form, reduced modulo the
// current bucket count.
func (m *Map[K]) hash(canon string) int {
	var h uint64 = 5381
	for i := 0; i < len(canon); i++ {
		h = h*33 + uint64(canon[i])
	}
	return int(h % uint64(len(m.buckets)))
}

// Len returns the number of entries currently stored.
func (m *Map[K]) Len() int { return m.size }

// Cap returns the current bucket count.
func (m *Map[K]) Cap() int { return len(m.buckets) }

// Insert associates key with (value, aux).
//
// When key is already present the old entry is spliced out, a fresh
// entry takes its chain position, and the displaced entry is returned
// so the caller can inspect or recycle it. Otherwise the new entry is
// prepended to its bucket and nil is returned. The table doubles when
// the population reaches the bucket count.
func (m *Map[K]) Insert(key K, value, aux int64) *Entry[K] {
	canon := m.conv(key)
	idx := m.hash(canon)

	fresh := &Entry[K]{Key: key, Value: value, Aux: aux, canon: canon}

	// Replace in place on duplicate key.
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.Key == key {
			fresh.prev, fresh.next = e.prev, e.next
			if e.prev != nil {
				e.prev.next = fresh
			} else {
				m.buckets[idx] = fresh
			}
			if e.next != nil {
				e.next.prev = fresh
			}
			e.prev, e.next = nil, nil
			return e
		}
	}

	// New key: prepend to the bucket chain.
	fresh.next = m.buckets[idx]
	if fresh.next != nil {
		fresh.next.prev = fresh
	}
	m.buckets[idx] = fresh
	m.size++

	if m.size == len(m.buckets) {
		m.resize(len(m.buckets) * 2)
	}
	return nil
}

// Search returns the entry stored under key, or (nil, false).
// The returned entry stays live until displaced or deleted; mutating
// its Value/Aux mutates the map.
func (m *Map[K]) Search(key K) (*Entry[K], bool) {
	idx := m.hash(m.conv(key))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.Key == key {
			return e, true
		}
	}
	return nil, false
}

// Delete removes the entry stored under key, reporting whether one was
// present. The table halves when the population drops to a quarter of
// the bucket count, never below the initial capacity.
func (m *Map[K]) Delete(key K) bool {
	e, ok := m.Search(key)
	if !ok {
		return false
	}
	m.unlink(e)
	return true
}

// DeleteEntry removes e from the map in O(1) using the chain links.
// e must be an entry previously returned by Insert/Search/Each of this
// map and not yet removed; ErrNotMember reports the detectable
// violations of that contract.
func (m *Map[K]) DeleteEntry(e *Entry[K]) error {
	if e == nil {
		return ErrNotMember
	}
	if e.prev == nil {
		// Claimed bucket head: the bucket slot must agree.
		if m.buckets[m.hash(e.canon)] != e {
			return ErrNotMember
		}
	}
	m.unlink(e)
	return nil
}

// unlink splices e out of its chain and applies the halving rule.
func (m *Map[K]) unlink(e *Entry[K]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.buckets[m.hash(e.canon)] = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	m.size--

	if cap := len(m.buckets); cap > initialCapacity && m.size <= cap/4 {
		m.resize(cap / 2)
	}
}

// resize rebuilds the bucket array at newCap, rehashing every entry via
// its cached canonical string. Chain order within a bucket is not
// preserved across resizes.
func (m *Map[K]) resize(newCap int) {
	old := m.buckets
	m.buckets = make([]*Entry[K], newCap)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := m.hash(e.canon)
			e.prev = nil
			e.next = m.buckets[idx]
			if e.next != nil {
				e.next.prev = e
			}
			m.buckets[idx] = e
			e = next
		}
	}
}

// Clear drops every entry and shrinks the table back to its initial
// capacity.
func (m *Map[K]) Clear() {
	m.buckets = make([]*Entry[K], initialCapacity)
	m.size = 0
}

// Each calls fn for every entry in bucket order; returning false stops
// the iteration early. Entries must not be inserted or deleted while
// iterating.
func (m *Map[K]) Each(fn func(e *Entry[K]) bool) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e) {
				return
			}
		}
	}
}

// String renders the occupied buckets, one line per bucket:
//
//	3: [42:7] -> [8:0] -> \
func (m *Map[K]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hashmap: %d/%d\n", m.size, len(m.buckets))
	for i, head := range m.buckets {
		if head == nil {
			continue
		}
		fmt.Fprintf(&sb, "%d: ", i)
		for e := head; e != nil; e = e.next {
			fmt.Fprintf(&sb, "[%s:%d] -> ", e.canon, e.Value)
		}
		sb.WriteString("\\\n")
	}
	return sb.String()
}
