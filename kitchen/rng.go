// Seed partitioning for reproducible runs. A run is keyed by the problem
// seed; each randomness consumer gets its own deterministically derived
// math/rand stream so adding a consumer never perturbs the others.

package kitchen

import (
	"hash/fnv"
	"math/rand"
)

const (
	// SubsystemCourier draws the uniform pickup delays.
	SubsystemCourier = "courier"

	// SubsystemProblem drives offline synthetic problem generation.
	SubsystemProblem = "problem"
)

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, derived as masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe, and neither are the returned *rand.Rand
// values. Each subsystem stream must be drawn from a single goroutine.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from the run's master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the cached RNG for the named subsystem, creating it on
// first use. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed this PartitionedRNG was created with.
func (p *PartitionedRNG) Seed() int64 { return p.seed }

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
