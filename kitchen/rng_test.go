package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedRNG_SameSeedSameStreams(t *testing.T) {
	// GIVEN two partitioned RNGs with the same master seed
	a := NewPartitionedRNG(42).ForSubsystem(SubsystemCourier)
	b := NewPartitionedRNG(42).ForSubsystem(SubsystemCourier)

	// THEN the subsystem streams are identical
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "draw %d", i)
	}
}

func TestPartitionedRNG_SubsystemsIsolated(t *testing.T) {
	p := NewPartitionedRNG(42)
	courier := p.ForSubsystem(SubsystemCourier)
	problem := p.ForSubsystem(SubsystemProblem)

	same := true
	for i := 0; i < 10; i++ {
		if courier.Int63() != problem.Int63() {
			same = false
		}
	}
	assert.False(t, same, "courier and problem streams should differ")
}

func TestPartitionedRNG_CachesPerSubsystem(t *testing.T) {
	p := NewPartitionedRNG(7)
	assert.Same(t, p.ForSubsystem(SubsystemCourier), p.ForSubsystem(SubsystemCourier))
	assert.Equal(t, int64(7), p.Seed())
}
