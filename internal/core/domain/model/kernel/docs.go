// Package kernel provides core domain primitives for the order board.
//
// The package currently contains a single building block:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities, used as the identity of orders and order items.
//
// The primitives are immutable and thread-safe, and enforce their own
// invariants so that domain objects built on top of them are always in a
// valid state.
package kernel
