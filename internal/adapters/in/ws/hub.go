package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"orderboard/internal/core/application/events"
)

// clientBufferSize bounds each client's outbound queue. A client this far
// behind is considered dead and gets disconnected.
const clientBufferSize = 64

// Hub fans events out to every connected client. All mutation of the
// client set happens on the Run goroutine.
//
// Example:
//
//	hub := NewHub(logger)
//	go hub.Run(ctx)
//
//	// from a command handler, after commit:
//	hub.Publish(events.NewOrderCreated(snapshot))
type Hub struct {
	logger *slog.Logger

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub creates a hub. Run must be started before clients connect.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Publish marshals the event once and queues it for delivery to every
// connected client. Publish never blocks on client I/O; callers invoke it
// after their transaction has committed. After shutdown the event is
// discarded.
func (h *Hub) Publish(event events.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal event", "type", event.Type, "error", err)
		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

// Register queues a client for addition to the broadcast set. A client
// arriving after shutdown has its send queue closed immediately so its
// write pump terminates.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister queues a client for removal. Safe to call more than once for
// the same client, and safe to call after the hub has shut down.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Run owns the client set until ctx is cancelled. On shutdown every client
// send queue is closed, which ends their write pumps, and the done channel
// releases any callers still trying to reach the loop.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info("client connected", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Info("client disconnected", "clients", len(h.clients))
			}

		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Client buffer full: drop it rather than block the loop.
					h.drop(client)
					h.logger.Warn("client dropped, send buffer full", "clients", len(h.clients))
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
}
