package kitchen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_ExpiresDueOrderWithoutPolling(t *testing.T) {
	// GIVEN a running sweeper and an order expiring 50ms after placement
	k := newTestKitchen(t, testConfig(1, 0, 0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewSweeper(k, SystemClock{}).Run(ctx)
	}()

	k.Place(testOrder("a", TempHot, 0.05, 0), time.Now())

	// WHEN the expiration instant passes
	deadline := time.After(2 * time.Second)
	for k.Shelved() > 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not expire the order in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done

	// THEN the order expired exactly once
	assert.Equal(t, []string{"place:a", "expire:a"}, actionSeq(k))
	requireConsistent(t, k)
}

func TestSweeper_FinalSweepOnShutdown(t *testing.T) {
	// GIVEN a due expiration the sweeper has not yet observed
	k := newTestKitchen(t, testConfig(1, 0, 0, 0))
	k.Place(testOrder("a", TempHot, 0.001, 0), time.Now().Add(-time.Second))

	// WHEN the sweeper is started and immediately cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	NewSweeper(k, SystemClock{}).Run(ctx)

	// THEN the shutdown drain still expired it
	require.Contains(t, actionSeq(k), "expire:a")
	assert.Equal(t, 0, k.Shelved())
}
