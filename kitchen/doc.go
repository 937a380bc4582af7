// Package kitchen provides the shelf-state engine for the order-fulfillment
// simulation.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - order.go: static order attributes fetched from the problem source
//   - shelf.go: bounded-capacity temperature shelves and the overflow shelf
//   - kitchen.go: the serialized mutation core (place, pickup, discard, expire,
//     rebalance) guarding the shelf set and the expiry index together
//
// # Architecture
//
// Three independently timed activities contend on the shelf state: the
// placement feed (runner.go), one scheduled courier per placed order
// (courier.go), and the background expiration sweeper (sweeper.go). All of
// them mutate state only through Kitchen methods, which serialize under a
// single mutex; the random courier delay is waited out by a timer, never held
// under the lock.
//
// Every removal path is an atomic "remove if present, report which case"
// step, so exactly one of pickup, discard, or expire terminates each order.
// The observable output of a run is the append-only action log (action.go).
//
// The sub-package kitchen/client talks to the challenge server (problem
// source and reporting sink) and can synthesize offline problems.
package kitchen
