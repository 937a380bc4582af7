// Clock abstracts the time source so the runner, courier scheduler and
// sweeper can be exercised without real sleeps.

package kitchen

import "time"

// Clock supplies the current instant and timer channels.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall-clock implementation used in real runs.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
