package commands

import (
	"context"
	"time"

	"orderboard/internal/core/application/events"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// ChangeOrderStatusCommandHandler advances an order through its lifecycle.
// Loads the aggregate, applies the transition, and persists with a status
// precondition so concurrent transitions on the same order cannot both win.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//	snapshot, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    log.Println("transition not allowed")
//	case errors.Is(err, errs.ErrVersionIsInvalid):
//	    log.Println("lost a concurrent transition race")
//	case err != nil:
//	    log.Printf("status change failed: %v", err)
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// On success a status_update event carries the refreshed snapshot. Serving
// an order additionally emits order_removed, because a served order leaves
// the active queue even though its row is retained for reporting.
// Rejected transitions publish nothing.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (events.OrderSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return events.OrderSnapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return events.OrderSnapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return events.OrderSnapshot{}, err
	}

	expected := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Next(), time.Now().UTC()); err != nil {
		return events.OrderSnapshot{}, err
	}

	if err = orderRepo.Update(ctx, aggregate, expected); err != nil {
		return events.OrderSnapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return events.OrderSnapshot{}, err
	}

	snapshot := events.SnapshotFromOrder(aggregate)
	h.publisher.Publish(events.NewStatusUpdated(snapshot))
	if aggregate.Status() == order.Served {
		h.publisher.Publish(events.NewOrderRemoved(snapshot.ID))
	}

	return snapshot, nil
}
