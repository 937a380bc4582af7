package kitchen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testOrder(id string, temp Temperature, life, decay float64) Order {
	return Order{ID: id, Name: "test order", Temp: temp, ShelfLife: life, DecayRate: decay}
}

func TestValue_AtPlacement_IsOne(t *testing.T) {
	o := testOrder("a", TempHot, 100, 0.5)
	assert.Equal(t, 1.0, Value(o, 1.0, 0))
	assert.Equal(t, 1.0, Value(o, 2.0, 0))
}

func TestValue_NonIncreasingInAge(t *testing.T) {
	// GIVEN a fixed shelf assignment
	o := testOrder("a", TempCold, 120, 0.75)

	// WHEN value is sampled at increasing ages
	prev := Value(o, 2.0, 0)
	for age := 1.0; age <= 200; age += 1.0 {
		v := Value(o, 2.0, age)
		// THEN it never increases
		if v > prev {
			t.Fatalf("value increased from %v to %v at age %v", prev, v, age)
		}
		prev = v
	}
}

func TestValue_OverflowModifierDecaysFaster(t *testing.T) {
	o := testOrder("a", TempHot, 100, 1.0)
	assert.Less(t, Value(o, 2.0, 10), Value(o, 1.0, 10))
}

func TestExpiryAge_ClosedForm(t *testing.T) {
	// a* = L / (1 + d*m)
	assert.Equal(t, 0.5, ExpiryAge(testOrder("a", TempHot, 1, 1), 1.0))
	assert.Equal(t, 100.0, ExpiryAge(testOrder("b", TempHot, 300, 1), 2.0))
	// zero decay rate: value still declines linearly and hits zero at the shelf life
	assert.Equal(t, 300.0, ExpiryAge(testOrder("c", TempHot, 300, 0), 2.0))
}

func TestExpiryAge_MatchesValueZeroCrossing(t *testing.T) {
	o := testOrder("a", TempFrozen, 87, 0.31)
	for _, m := range []float64{1.0, 1.5, 2.0} {
		a := ExpiryAge(o, m)
		assert.InDelta(t, 0.0, Value(o, m, a), 1e-9, "modifier %v", m)
	}
}

func TestExpiresAt_MicrosecondResolution(t *testing.T) {
	o := testOrder("a", TempHot, 1, 1)
	placed := time.UnixMicro(1_000_000)

	got := ExpiresAt(o, 1.0, placed)

	// 0.5s after placement
	assert.Equal(t, int64(1_500_000), got.UnixMicro())
}
