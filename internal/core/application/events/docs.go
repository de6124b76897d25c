// Package events defines the wire contract between the order lifecycle and
// the connected dashboards.
//
// Every event is a tagged envelope: a type discriminator plus a payload.
// Events that reference an order always carry a full, self-consistent
// snapshot of that order including its items, never a partial diff, so that
// observers can apply any event idempotently without tracking deltas.
//
// Event kinds:
//   - new_order:     an order entered the queue (payload: order snapshot)
//   - status_update: an order changed (payload: updated order snapshot)
//   - order_removed: an order left the active queue (payload: order id only)
//   - clear:         the pending queue was bulk-confirmed (payload: the
//     updated snapshots)
//
// Ordering: events for a single order are published in the sequence the
// lifecycle produced them. No ordering is guaranteed across different
// orders.
package events
