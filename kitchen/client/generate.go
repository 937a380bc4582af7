// Offline problem synthesis: a deterministic stand-in for the challenge
// server so the simulator can run without network access. The same seed
// always yields the same problem.

package client

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/kitchen-sim/kitchen-sim/kitchen"
)

// menu mirrors the flavor of the hosted problems: a name and a temperature
// class per dish; shelf life and decay rate are sampled per order.
var menu = []struct {
	name string
	temp kitchen.Temperature
}{
	{"Cheese Pizza", kitchen.TempHot},
	{"Pad Thai", kitchen.TempHot},
	{"Beef Stew", kitchen.TempHot},
	{"Tomato Soup", kitchen.TempHot},
	{"Cobb Salad", kitchen.TempCold},
	{"Yogurt Parfait", kitchen.TempCold},
	{"Sushi Platter", kitchen.TempCold},
	{"Pressed Juice", kitchen.TempCold},
	{"Chocolate Gelato", kitchen.TempFrozen},
	{"Ice Cream Sandwich", kitchen.TempFrozen},
	{"Frozen Dumplings", kitchen.TempFrozen},
}

// GenerateProblem synthesizes count orders from the given stream (subsystem
// "problem" of the run's PartitionedRNG). Order IDs are UUIDs drawn from the
// same stream, so the whole problem is reproducible from the seed.
func GenerateProblem(rng *rand.Rand, count int) ([]kitchen.Order, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate problem: order count must be positive, got %d", count)
	}
	orders := make([]kitchen.Order, 0, count)
	for i := 0; i < count; i++ {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generate problem: %w", err)
		}
		dish := menu[rng.Intn(len(menu))]
		orders = append(orders, kitchen.Order{
			ID:        id.String(),
			Name:      dish.name,
			Temp:      dish.temp,
			ShelfLife: float64(60 + rng.Intn(241)),    // 60..300 seconds
			DecayRate: float64(rng.Intn(101)) / 100.0, // 0.00..1.00
		})
	}
	return orders, nil
}
