// Action types and the append-only action log, the externally observable
// trace of a run. JSON shape matches the challenge wire format.

package kitchen

import (
	"sync"
	"time"
)

// ActionType names a single observable event in an order's lifecycle.
type ActionType string

const (
	ActionPlace        ActionType = "place"
	ActionMove         ActionType = "move"
	ActionPickup       ActionType = "pickup"
	ActionPickupFailed ActionType = "pickup_failed"
	ActionDiscard      ActionType = "discard"
	ActionExpire       ActionType = "expire"
)

// Action records one event. Target is the shelf that received or held the
// order; it is empty for pickup_failed, where the order is already gone.
type Action struct {
	Timestamp int64      `json:"timestamp"` // Unix timestamp in microseconds
	ID        string     `json:"id"`
	Action    ActionType `json:"action"`
	Target    ShelfKind  `json:"target,omitempty"`
}

// ActionLog collects actions append-only in mutation order. Timestamps are
// forced strictly monotonic so the log's total order survives the microsecond
// truncation even when two mutations land in the same microsecond.
type ActionLog struct {
	mu      sync.Mutex
	actions []Action
	lastTS  int64
}

// NewActionLog returns an empty log.
func NewActionLog() *ActionLog {
	return &ActionLog{actions: make([]Action, 0)}
}

// Append records an action at now, bumping the timestamp just past the
// previous entry if needed. It returns the timestamp actually recorded.
func (l *ActionLog) Append(now time.Time, id string, action ActionType, target ShelfKind) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := now.UnixMicro()
	if ts <= l.lastTS {
		ts = l.lastTS + 1
	}
	l.lastTS = ts
	l.actions = append(l.actions, Action{
		Timestamp: ts,
		ID:        id,
		Action:    action,
		Target:    target,
	})
	return ts
}

// Actions returns a copy of the log in emission order.
func (l *ActionLog) Actions() []Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	return out
}

// Len returns the number of recorded actions.
func (l *ActionLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.actions)
}
