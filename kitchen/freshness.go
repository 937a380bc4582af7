// Freshness model: pure functions over an order's static attributes, the
// decay modifier of its current shelf, and its age since placement.
//
// value(a) = (L - a - d*a*m) / L
//
// Value is 1.0 at placement and declines linearly with age, so the instant at
// which it reaches zero has a closed form: a* = L / (1 + d*m). The engine
// stores that projected instant as the priority key instead of re-evaluating
// decay on every comparison.

package kitchen

import "time"

// Value returns the normalized freshness of an order aged ageSeconds on a
// shelf with the given decay modifier. 1.0 at placement, <= 0 means expired.
func Value(o Order, modifier float64, ageSeconds float64) float64 {
	return (o.ShelfLife - ageSeconds - o.DecayRate*ageSeconds*modifier) / o.ShelfLife
}

// ExpiryAge returns the age in seconds at which the order's value reaches
// zero on a shelf with the given decay modifier.
func ExpiryAge(o Order, modifier float64) float64 {
	return o.ShelfLife / (1 + o.DecayRate*modifier)
}

// ExpiresAt returns the projected expiration instant for an order placed at
// placedAt on a shelf with the given decay modifier. The result is truncated
// to microseconds, the resolution of the action log.
func ExpiresAt(o Order, modifier float64, placedAt time.Time) time.Time {
	micros := int64(ExpiryAge(o, modifier) * 1e6)
	return placedAt.Add(time.Duration(micros) * time.Microsecond)
}
