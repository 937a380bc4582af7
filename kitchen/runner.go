// Runner orchestrates one simulation: it paces the order feed, hands each
// placement to the courier scheduler, runs the expiration sweeper, and waits
// for all three activity classes to quiesce before closing out the action
// log.

package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner executes a problem against a fresh kitchen.
type Runner struct {
	cfg      Config
	clock    Clock
	kitchen  *Kitchen
	couriers *CourierScheduler
}

// NewRunner validates cfg and wires kitchen, couriers and sweeper inputs.
// rng is the run's partitioned stream; the courier subsystem is drawn from it.
func NewRunner(cfg Config, clock Clock, rng *PartitionedRNG) (*Runner, error) {
	k, err := NewKitchen(cfg)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:     cfg,
		clock:   clock,
		kitchen: k,
		couriers: NewCourierScheduler(k, clock, rng.ForSubsystem(SubsystemCourier),
			cfg.MinPickup(), cfg.MaxPickup()),
	}, nil
}

// Kitchen exposes the underlying kitchen, mainly for inspection in tests.
func (r *Runner) Kitchen() *Kitchen { return r.kitchen }

// Run places every order at the configured rate, schedules its courier, and
// returns the completed action log. Configuration errors (malformed orders)
// abort before any action is emitted. ctx cancels the remaining feed; already
// scheduled couriers still fire so every placed order reaches a terminal
// action.
func (r *Runner) Run(ctx context.Context, orders []Order) ([]Action, error) {
	if err := ValidateOrders(orders); err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		NewSweeper(r.kitchen, r.clock).Run(sweepCtx)
	}()

	logrus.Infof("starting run: %d orders, one every %v, pickups in [%v, %v]",
		len(orders), r.cfg.Rate(), r.cfg.MinPickup(), r.cfg.MaxPickup())

	start := r.clock.Now()
feed:
	for i, o := range orders {
		// pace against the schedule, not the previous placement, so lock
		// contention cannot skew the arrival cadence
		due := start.Add(time.Duration(i) * r.cfg.Rate())
		if wait := due.Sub(r.clock.Now()); wait > 0 {
			select {
			case <-ctx.Done():
				logrus.Warnf("feed cancelled after %d of %d orders", i, len(orders))
				break feed
			case <-r.clock.After(wait):
			}
		}
		delay := r.couriers.SampleDelay()
		r.kitchen.Place(o, r.clock.Now())
		r.couriers.Schedule(o.ID, delay)
	}

	r.couriers.Wait()
	stopSweeper()
	<-sweeperDone

	actions := r.kitchen.Actions()
	logrus.Infof("run complete: %d actions, %d orders still shelved", len(actions), r.kitchen.Shelved())
	return actions, nil
}
