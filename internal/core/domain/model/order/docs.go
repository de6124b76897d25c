// Package order contains the order aggregate for the point-of-sale queue.
//
// An Order is created in pending status with at least one item, advances
// strictly forward through the lifecycle
//
//	pending ──> confirmed ──> served
//
// and records its processing time exactly once, at the moment it is
// confirmed. Served orders leave the active queue; whether they are kept
// for reporting is a persistence concern, not a domain one.
//
// The aggregate enforces its invariants through validated constructors and
// transition methods:
//   - the item list is never empty (removing the last item is rejected)
//   - the total always equals the sum of item subtotals at creation
//   - status never regresses and never skips a step
//   - createdAt is immutable, updatedAt moves on every mutation
package order
