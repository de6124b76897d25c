// Package ws implements the realtime broadcast side of the order board.
//
// A single Hub goroutine owns the set of connected clients. Registration,
// unregistration, and event publication all travel through channels into
// that goroutine, so the client set needs no locking. Each client gets a
// bounded outbound buffer; a client that cannot keep up is dropped rather
// than allowed to stall the broadcast loop or the command handlers feeding
// it.
//
// Delivery is best effort. Events are fanned out in publication order per
// hub, but a slow or dead client may miss events before it is detected and
// disconnected. Clients recover by reconnecting and re-pulling a snapshot
// over HTTP.
package ws
