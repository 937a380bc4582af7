// Defines the Order struct holding the static per-order attributes supplied
// by the problem source. Orders are immutable once loaded; per-placement state
// lives in shelvedOrder (kitchen.go).

package kitchen

import (
	"fmt"
)

// Temperature is the storage temperature class an order asks for.
type Temperature string

const (
	TempHot    Temperature = "hot"
	TempCold   Temperature = "cold"
	TempFrozen Temperature = "frozen"
)

// Temperatures lists all recognized temperature classes in a fixed order.
var Temperatures = []Temperature{TempHot, TempCold, TempFrozen}

// Valid reports whether t is a recognized temperature class.
func (t Temperature) Valid() bool {
	switch t {
	case TempHot, TempCold, TempFrozen:
		return true
	}
	return false
}

// Order carries the static attributes of a single order. JSON tags match the
// challenge wire format.
type Order struct {
	ID        string      `json:"id"`        // Unique identifier for the order
	Name      string      `json:"name"`      // Display name
	Temp      Temperature `json:"temp"`      // Requested temperature class
	ShelfLife float64     `json:"shelfLife"` // Freshness lifetime in seconds, > 0
	DecayRate float64     `json:"decayRate"` // Decay scalar, >= 0
}

// Validate checks the static attributes. A violation is a configuration
// error: the run must abort before any action is emitted.
func (o Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order has empty id")
	}
	if !o.Temp.Valid() {
		return fmt.Errorf("order %s: unknown temperature %q", o.ID, o.Temp)
	}
	if o.ShelfLife <= 0 {
		return fmt.Errorf("order %s: shelf life must be positive, got %v", o.ID, o.ShelfLife)
	}
	if o.DecayRate < 0 {
		return fmt.Errorf("order %s: decay rate must be non-negative, got %v", o.ID, o.DecayRate)
	}
	return nil
}

// ValidateOrders validates a whole problem and rejects duplicate IDs.
func ValidateOrders(orders []Order) error {
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if seen[o.ID] {
			return fmt.Errorf("duplicate order id %s", o.ID)
		}
		seen[o.ID] = true
	}
	return nil
}
