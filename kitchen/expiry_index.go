// expiryIndex implements the discard policy's priority structure: a min-heap
// over all currently shelved orders keyed by projected expiration instant.
// Ordering is deterministic: expiration instant → placement instant → order ID.
// The key changes only when an order moves between shelves (the decay
// modifier changes), so entries are re-keyed in place with heap.Fix rather
// than re-evaluated continuously.

package kitchen

import "container/heap"

// expiryEntry is one index member. Instants are Unix microseconds.
type expiryEntry struct {
	orderID   string
	expiresAt int64
	placedAt  int64
	pos       int // heap position, maintained by expiryHeap.Swap
}

type expiryHeap []*expiryEntry

func (h expiryHeap) Len() int { return len(h) }

// Less orders by expiration instant, then placement instant, then order ID.
func (h expiryHeap) Less(i, j int) bool { return entryBefore(h[i], h[j]) }

// entryBefore is the deterministic index ordering: expiration instant, then
// placement instant, then order ID.
func entryBefore(a, b *expiryEntry) bool {
	if a.expiresAt != b.expiresAt {
		return a.expiresAt < b.expiresAt
	}
	if a.placedAt != b.placedAt {
		return a.placedAt < b.placedAt
	}
	return a.orderID < b.orderID
}

func (h expiryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *expiryHeap) Push(x any) {
	entry := x.(*expiryEntry)
	entry.pos = len(*h)
	*h = append(*h, entry)
}

func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.pos = -1
	*h = old[0 : n-1]
	return entry
}

// expiryIndex pairs the heap with an ID lookup so membership checks, removal
// and re-keying are O(log n).
type expiryIndex struct {
	heap expiryHeap
	byID map[string]*expiryEntry
}

func newExpiryIndex() *expiryIndex {
	return &expiryIndex{
		heap: make(expiryHeap, 0),
		byID: make(map[string]*expiryEntry),
	}
}

func (ix *expiryIndex) Len() int { return len(ix.heap) }

// insert adds a new entry. The caller guarantees the ID is not present.
func (ix *expiryIndex) insert(e *expiryEntry) {
	heap.Push(&ix.heap, e)
	ix.byID[e.orderID] = e
}

// peek returns the entry with the earliest expiration, or nil when empty.
func (ix *expiryIndex) peek() *expiryEntry {
	if len(ix.heap) == 0 {
		return nil
	}
	return ix.heap[0]
}

// popMin removes and returns the earliest-expiring entry, or nil when empty.
func (ix *expiryIndex) popMin() *expiryEntry {
	if len(ix.heap) == 0 {
		return nil
	}
	e := heap.Pop(&ix.heap).(*expiryEntry)
	delete(ix.byID, e.orderID)
	return e
}

// remove deletes the entry for id, reporting whether it was present.
func (ix *expiryIndex) remove(id string) bool {
	e, ok := ix.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&ix.heap, e.pos)
	delete(ix.byID, id)
	return true
}

// update re-keys the entry for id and restores heap order in place.
func (ix *expiryIndex) update(id string, expiresAt int64) bool {
	e, ok := ix.byID[id]
	if !ok {
		return false
	}
	e.expiresAt = expiresAt
	heap.Fix(&ix.heap, e.pos)
	return true
}

// contains reports membership by order ID.
func (ix *expiryIndex) contains(id string) bool {
	_, ok := ix.byID[id]
	return ok
}

// ids returns the member IDs in no particular order.
func (ix *expiryIndex) ids() []string {
	out := make([]string, 0, len(ix.byID))
	for id := range ix.byID {
		out = append(out, id)
	}
	return out
}
