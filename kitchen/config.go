// Run configuration: arrival pacing, courier delay bounds, shelf capacities
// and the overflow decay modifier. Read once at startup, validated before any
// action is emitted, then treated as immutable.

package kitchen

import (
	"fmt"
	"time"
)

// Config holds every knob of a run. Yaml tags match the storage config file
// read by cmd; flags override file values.
type Config struct {
	RateMs     int `yaml:"rate_ms"`      // milliseconds between order placements
	MinPickupS int `yaml:"min_pickup_s"` // minimum courier delay in seconds
	MaxPickupS int `yaml:"max_pickup_s"` // maximum courier delay in seconds

	HotCapacity           int     `yaml:"hot_capacity"`
	ColdCapacity          int     `yaml:"cold_capacity"`
	FrozenCapacity        int     `yaml:"frozen_capacity"`
	OverflowCapacity      int     `yaml:"overflow_capacity"`
	OverflowDecayModifier float64 `yaml:"overflow_decay_modifier"`
}

// DefaultConfig returns the stock challenge parameters: two orders per
// second, 4-8s pickups, 6/6/6 temperature shelves with a 12-slot overflow
// decaying twice as fast.
func DefaultConfig() Config {
	return Config{
		RateMs:                500,
		MinPickupS:            4,
		MaxPickupS:            8,
		HotCapacity:           6,
		ColdCapacity:          6,
		FrozenCapacity:        6,
		OverflowCapacity:      12,
		OverflowDecayModifier: 2.0,
	}
}

// Rate returns the placement interval.
func (c Config) Rate() time.Duration { return time.Duration(c.RateMs) * time.Millisecond }

// MinPickup returns the minimum courier delay.
func (c Config) MinPickup() time.Duration { return time.Duration(c.MinPickupS) * time.Second }

// MaxPickup returns the maximum courier delay.
func (c Config) MaxPickup() time.Duration { return time.Duration(c.MaxPickupS) * time.Second }

// Validate checks the configuration. Any violation is fatal: the run aborts
// before processing a single order.
func (c Config) Validate() error {
	if c.RateMs <= 0 {
		return fmt.Errorf("rate must be positive, got %dms", c.RateMs)
	}
	if c.MinPickupS < 0 {
		return fmt.Errorf("minimum pickup delay must be non-negative, got %ds", c.MinPickupS)
	}
	if c.MaxPickupS < c.MinPickupS {
		return fmt.Errorf("maximum pickup delay %ds is below minimum %ds", c.MaxPickupS, c.MinPickupS)
	}
	tempCaps := map[string]int{
		"hot":    c.HotCapacity,
		"cold":   c.ColdCapacity,
		"frozen": c.FrozenCapacity,
	}
	if c.OverflowCapacity < 0 {
		return fmt.Errorf("overflow shelf capacity must be non-negative, got %d", c.OverflowCapacity)
	}
	for name, n := range tempCaps {
		if n < 0 {
			return fmt.Errorf("%s shelf capacity must be non-negative, got %d", name, n)
		}
		// Without overflow, a zero-capacity temperature shelf leaves that
		// temperature with nowhere to go: no discard can ever free a usable
		// slot for it.
		if n == 0 && c.OverflowCapacity == 0 {
			return fmt.Errorf("%s shelf and overflow both have zero capacity; %s orders cannot be placed", name, name)
		}
	}
	if c.OverflowDecayModifier < 1 {
		return fmt.Errorf("overflow decay modifier must be >= 1, got %v", c.OverflowDecayModifier)
	}
	return nil
}
