// Package sssp: the indexable binary min-heap behind Dijkstra.
package sssp

import "github.com/tbalakov/gravl/hashmap"

// distHeap is a binary min-heap of vertex ids ordered by their current
// tentative distance. Each id's heap slot is tracked in pos so a
// decrease-key can sift the right element up without a scan.
type distHeap struct {
	ids  []int
	dist *hashmap.Map[int] // value = tentative distance
	pos  *hashmap.Map[int] // value = slot of id in ids
}

func newDistHeap(dist *hashmap.Map[int]) (*distHeap, error) {
	pos, err := hashmap.New(hashmap.IntKey)
	if err != nil {
		return nil, err
	}
	return &distHeap{dist: dist, pos: pos}, nil
}

func (h *distHeap) len() int { return len(h.ids) }

func (h *distHeap) key(i int) int64 {
	e, _ := h.dist.Search(h.ids[i])
	return e.Value
}

func (h *distHeap) swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos.Insert(h.ids[i], int64(i), 0)
	h.pos.Insert(h.ids[j], int64(j), 0)
}

// push appends id and restores heap order.
func (h *distHeap) push(id int) {
	h.ids = append(h.ids, id)
	h.pos.Insert(id, int64(len(h.ids)-1), 0)
	h.siftUp(len(h.ids) - 1)
}

// extractMin removes and returns the id with the smallest distance.
func (h *distHeap) extractMin() int {
	root := h.ids[0]
	last := len(h.ids) - 1
	h.swap(0, last)
	h.ids = h.ids[:last]
	h.pos.Delete(root)
	if last > 0 {
		h.siftDown(0)
	}
	return root
}

// decrease restores heap order after id's distance shrank. No-op when
// id already left the heap.
func (h *distHeap) decrease(id int) {
	e, ok := h.pos.Search(id)
	if !ok {
		return
	}
	h.siftUp(int(e.Value))
}

func (h *distHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.key(parent) <= h.key(i) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *distHeap) siftDown(i int) {
	n := len(h.ids)
	for {
		small := i
		if l := 2*i + 1; l < n && h.key(l) < h.key(small) {
			small = l
		}
		if r := 2*i + 2; r < n && h.key(r) < h.key(small) {
			small = r
		}
		if small == i {
			return
		}
		h.swap(i, small)
		i = small
	}
}
