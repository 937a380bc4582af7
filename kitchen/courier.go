// Courier scheduling: every placed order gets exactly one pickup attempt
// after a uniform random delay. Delays are sampled in arrival order from the
// run's seeded courier stream, so a seed fully determines them. A scheduled
// pickup always fires and always resolves to pickup or pickup_failed; there
// is no cancellation.

package kitchen

import (
	"math/rand"
	"sync"
	"time"
)

// CourierScheduler fires one pickup attempt per placed order.
type CourierScheduler struct {
	kitchen *Kitchen
	clock   Clock
	rng     *rand.Rand
	min     time.Duration
	max     time.Duration
	wg      sync.WaitGroup
}

// NewCourierScheduler builds a scheduler sampling delays from [min, max]
// using the given stream (subsystem "courier" of the run's PartitionedRNG).
func NewCourierScheduler(k *Kitchen, clock Clock, rng *rand.Rand, min, max time.Duration) *CourierScheduler {
	return &CourierScheduler{
		kitchen: k,
		clock:   clock,
		rng:     rng,
		min:     min,
		max:     max,
	}
}

// SampleDelay draws the next pickup delay. Must be called from the placement
// goroutine only: the sampling order is part of the run's determinism
// contract.
func (c *CourierScheduler) SampleDelay() time.Duration {
	span := int64(c.max - c.min)
	if span <= 0 {
		return c.min
	}
	return c.min + time.Duration(c.rng.Int63n(span+1))
}

// Schedule fires a pickup attempt for orderID after delay. The timer wait
// happens outside the kitchen lock.
func (c *CourierScheduler) Schedule(orderID string, delay time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.clock.After(delay)
		c.kitchen.Pickup(orderID, c.clock.Now())
	}()
}

// Wait blocks until every scheduled pickup has fired and resolved.
func (c *CourierScheduler) Wait() {
	c.wg.Wait()
}
