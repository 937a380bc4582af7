// Shelves are bounded-capacity containers for shelved orders. Each
// temperature class has a dedicated shelf with a 1x decay modifier; the
// overflow shelf accepts any class and applies a configurable larger
// modifier. Capacity is enforced at every mutation.

package kitchen

import "fmt"

// ShelfKind identifies one of the four shelves.
type ShelfKind string

const (
	ShelfHot      ShelfKind = "hot"
	ShelfCold     ShelfKind = "cold"
	ShelfFrozen   ShelfKind = "frozen"
	ShelfOverflow ShelfKind = "overflow"
)

// ShelfKinds lists all shelves in a fixed order.
var ShelfKinds = []ShelfKind{ShelfHot, ShelfCold, ShelfFrozen, ShelfOverflow}

// matchingShelf maps a temperature class to its dedicated shelf.
func matchingShelf(t Temperature) ShelfKind {
	switch t {
	case TempHot:
		return ShelfHot
	case TempCold:
		return ShelfCold
	case TempFrozen:
		return ShelfFrozen
	}
	// callers validate temperatures up front
	panic(fmt.Sprintf("matchingShelf: unknown temperature %q", t))
}

// Shelf is one bounded container. It is not safe for concurrent use on its
// own; Kitchen serializes all access.
type Shelf struct {
	Kind          ShelfKind
	Capacity      int
	DecayModifier float64

	orders map[string]*shelvedOrder
}

func newShelf(kind ShelfKind, capacity int, modifier float64) *Shelf {
	return &Shelf{
		Kind:          kind,
		Capacity:      capacity,
		DecayModifier: modifier,
		orders:        make(map[string]*shelvedOrder),
	}
}

// Len returns the current occupant count.
func (s *Shelf) Len() int { return len(s.orders) }

// Full reports whether the shelf is at capacity.
func (s *Shelf) Full() bool { return len(s.orders) >= s.Capacity }

// add places a shelved order, enforcing the capacity invariant.
func (s *Shelf) add(so *shelvedOrder) {
	if s.Full() {
		panic(fmt.Sprintf("shelf %s: add beyond capacity %d", s.Kind, s.Capacity))
	}
	s.orders[so.order.ID] = so
	so.shelf = s.Kind
}

// remove deletes an occupant by ID, reporting whether it was present.
func (s *Shelf) remove(id string) (*shelvedOrder, bool) {
	so, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	delete(s.orders, id)
	return so, true
}

// ShelfSet groups the three temperature shelves and the overflow shelf.
type ShelfSet struct {
	shelves map[ShelfKind]*Shelf
}

// NewShelfSet builds the shelf set from a validated config.
func NewShelfSet(cfg Config) *ShelfSet {
	return &ShelfSet{shelves: map[ShelfKind]*Shelf{
		ShelfHot:      newShelf(ShelfHot, cfg.HotCapacity, 1.0),
		ShelfCold:     newShelf(ShelfCold, cfg.ColdCapacity, 1.0),
		ShelfFrozen:   newShelf(ShelfFrozen, cfg.FrozenCapacity, 1.0),
		ShelfOverflow: newShelf(ShelfOverflow, cfg.OverflowCapacity, cfg.OverflowDecayModifier),
	}}
}

// Shelf returns the shelf of the given kind.
func (ss *ShelfSet) Shelf(kind ShelfKind) *Shelf { return ss.shelves[kind] }

// Matching returns the dedicated shelf for a temperature class.
func (ss *ShelfSet) Matching(t Temperature) *Shelf {
	return ss.shelves[matchingShelf(t)]
}

// Overflow returns the overflow shelf.
func (ss *ShelfSet) Overflow() *Shelf { return ss.shelves[ShelfOverflow] }

// Occupancy returns the occupant count of the given shelf.
func (ss *ShelfSet) Occupancy(kind ShelfKind) int { return ss.shelves[kind].Len() }

// TotalOccupancy returns the number of orders shelved anywhere.
func (ss *ShelfSet) TotalOccupancy() int {
	n := 0
	for _, s := range ss.shelves {
		n += s.Len()
	}
	return n
}
