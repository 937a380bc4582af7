// Expiration sweeper: a background loop that removes orders whose value has
// reached zero, independent of placement and pickup activity. It sleeps until
// the earliest projected expiration or until a placement changes the minimum;
// it never busy-polls.

package kitchen

import (
	"context"
	"time"
)

// Sweeper drives Kitchen.SweepDue off the next-expiration deadline.
type Sweeper struct {
	kitchen *Kitchen
	clock   Clock
}

// NewSweeper builds a sweeper over the given kitchen.
func NewSweeper(k *Kitchen, clock Clock) *Sweeper {
	return &Sweeper{kitchen: k, clock: clock}
}

// Run sweeps until ctx is cancelled. On cancellation it performs one final
// sweep so every expiration already due makes it into the action log before
// shutdown.
func (s *Sweeper) Run(ctx context.Context) {
	for {
		next, ok := s.kitchen.SweepDue(s.clock.Now())

		var deadline <-chan time.Time
		if ok {
			deadline = s.clock.After(next.Sub(s.clock.Now()))
		}

		select {
		case <-ctx.Done():
			s.kitchen.SweepDue(s.clock.Now())
			return
		case <-s.kitchen.Wake():
			// a placement or move may have brought the minimum forward
		case <-deadline:
		}
	}
}
