// Kitchen is the single serialization point of the simulation: the shelf set
// and the expiry index mutate together under one mutex, so every place,
// pickup, discard, expire and rebalance is one atomic step. Arrivals,
// couriers and the sweeper all funnel through here; whichever removal path
// reaches an order first wins, the losers observe "not present".

package kitchen

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// shelvedOrder is the per-placement record. It exists only while the order is
// on a shelf; it is created by Place and destroyed by exactly one of pickup,
// discard or expire.
type shelvedOrder struct {
	order    Order
	shelf    ShelfKind
	placedAt time.Time
}

// Kitchen owns the shelf state and the action log.
type Kitchen struct {
	mu      sync.Mutex
	cfg     Config
	shelves *ShelfSet
	index   *expiryIndex
	orders  map[string]*shelvedOrder // union of all shelf occupant sets
	log     *ActionLog
	wake    chan struct{} // nudges the sweeper when the earliest expiry may have changed
}

// NewKitchen validates cfg and builds an empty kitchen.
func NewKitchen(cfg Config) (*Kitchen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Kitchen{
		cfg:     cfg,
		shelves: NewShelfSet(cfg),
		index:   newExpiryIndex(),
		orders:  make(map[string]*shelvedOrder),
		log:     NewActionLog(),
		wake:    make(chan struct{}, 1),
	}, nil
}

// Wake returns the channel the sweeper listens on for new placements.
func (k *Kitchen) Wake() <-chan struct{} { return k.wake }

// Actions returns a copy of the action log.
func (k *Kitchen) Actions() []Action { return k.log.Actions() }

// Occupancy returns the occupant count of one shelf.
func (k *Kitchen) Occupancy(kind ShelfKind) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.shelves.Occupancy(kind)
}

// Shelved returns the number of orders currently on any shelf.
func (k *Kitchen) Shelved() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.orders)
}

// Place shelves an incoming order at now: matching-temperature shelf first,
// then overflow, then discard pressure until a usable slot frees up. This is
// the sole entry point that grows the shelved state.
func (k *Kitchen) Place(o Order, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for {
		if shelf := k.destination(o); shelf != nil {
			k.placeOn(shelf, o, now)
			return
		}
		// Matching shelf and overflow are both full. Pop the
		// earliest-expiring order anywhere to free a slot; the pop's
		// rebalance may cascade the vacancy toward overflow. Occupancy
		// strictly decreases, so this terminates.
		if !k.discardOne(now) {
			// Empty index with no destination shelf cannot happen:
			// Config.Validate guarantees every temperature has a matching
			// or overflow slot to contend for.
			panic(fmt.Sprintf("place %s: no shelf available and nothing to discard", o.ID))
		}
	}
}

// destination picks the shelf for an incoming order, or nil if both its
// matching shelf and overflow are full. Caller holds the lock.
func (k *Kitchen) destination(o Order) *Shelf {
	if shelf := k.shelves.Matching(o.Temp); !shelf.Full() {
		return shelf
	}
	if overflow := k.shelves.Overflow(); !overflow.Full() {
		return overflow
	}
	return nil
}

// placeOn shelves the order, indexes its projected expiration and logs the
// placement. Caller holds the lock.
func (k *Kitchen) placeOn(shelf *Shelf, o Order, now time.Time) {
	so := &shelvedOrder{order: o, placedAt: now}
	shelf.add(so)
	k.orders[o.ID] = so
	k.index.insert(&expiryEntry{
		orderID:   o.ID,
		expiresAt: ExpiresAt(o, shelf.DecayModifier, now).UnixMicro(),
		placedAt:  now.UnixMicro(),
	})
	k.log.Append(now, o.ID, ActionPlace, shelf.Kind)
	logrus.Debugf("place: %s (%s) -> %s shelf", o.ID, o.Temp, shelf.Kind)
	k.signalWake()
}

// Pickup atomically attempts to remove the order for a courier. It reports
// true and logs a pickup when the order is still shelved; otherwise the order
// was already discarded or expired and a pickup_failed is logged.
func (k *Kitchen) Pickup(id string, now time.Time) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	so, ok := k.orders[id]
	if !ok {
		k.log.Append(now, id, ActionPickupFailed, "")
		logrus.Debugf("pickup failed: %s already removed", id)
		return false
	}
	k.removeLocked(so, ActionPickup, now)
	return true
}

// SweepDue expires every indexed order whose projected expiration instant is
// at or before now, and returns the next deadline (ok=false when the index is
// empty). The sweeper calls this in a loop; tests call it directly.
func (k *Kitchen) SweepDue(now time.Time) (next time.Time, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	nowMicros := now.UnixMicro()
	for {
		e := k.index.peek()
		if e == nil {
			return time.Time{}, false
		}
		if e.expiresAt > nowMicros {
			return time.UnixMicro(e.expiresAt), true
		}
		k.removeLocked(k.orders[e.orderID], ActionExpire, now)
	}
}

// discardOne pops the earliest-expiring order across all shelves to free a
// slot. A victim already past its expiration instant is logged as an expire,
// anything else as a discard. Caller holds the lock; returns false when the
// index is empty.
func (k *Kitchen) discardOne(now time.Time) bool {
	e := k.index.peek()
	if e == nil {
		return false
	}
	action := ActionDiscard
	if e.expiresAt <= now.UnixMicro() {
		action = ActionExpire
	}
	k.removeLocked(k.orders[e.orderID], action, now)
	return true
}

// removeLocked is the one removal path: it deletes the order from its shelf,
// the index and the union map, logs the terminal action, then rebalances the
// freed shelf. Caller holds the lock.
func (k *Kitchen) removeLocked(so *shelvedOrder, action ActionType, now time.Time) {
	id := so.order.ID
	if _, ok := k.shelves.Shelf(so.shelf).remove(id); !ok {
		panic(fmt.Sprintf("remove %s: not on recorded shelf %s", id, so.shelf))
	}
	k.index.remove(id)
	delete(k.orders, id)
	k.log.Append(now, id, action, so.shelf)
	logrus.Debugf("%s: %s from %s shelf", action, id, so.shelf)
	k.rebalance(so.shelf, now)
}

// rebalance moves one overflow order of the freed shelf's temperature onto
// the freed slot, re-keying its expiration for the 1x modifier. The
// earliest-expiring candidate moves first: it gains the most from the slower
// decay.
func (k *Kitchen) rebalance(freed ShelfKind, now time.Time) {
	if freed == ShelfOverflow {
		return
	}
	shelf := k.shelves.Shelf(freed)
	if shelf.Full() {
		return
	}
	overflow := k.shelves.Overflow()

	var best *shelvedOrder
	var bestEntry *expiryEntry
	for id, so := range overflow.orders {
		if matchingShelf(so.order.Temp) != freed {
			continue
		}
		e := k.index.byID[id]
		if best == nil || entryBefore(e, bestEntry) {
			best, bestEntry = so, e
		}
	}
	if best == nil {
		return
	}

	overflow.remove(best.order.ID)
	shelf.add(best)
	k.index.update(best.order.ID, ExpiresAt(best.order, shelf.DecayModifier, best.placedAt).UnixMicro())
	k.log.Append(now, best.order.ID, ActionMove, freed)
	logrus.Debugf("move: %s overflow -> %s shelf", best.order.ID, freed)
	k.signalWake()
}

func (k *Kitchen) signalWake() {
	select {
	case k.wake <- struct{}{}:
	default:
	}
}
