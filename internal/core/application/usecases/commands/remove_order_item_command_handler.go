package commands

import (
	"context"
	"time"

	"orderboard/internal/core/application/events"
	"orderboard/internal/core/ports"
)

// RemoveOrderItemCommandHandler strikes a single item from an order.
// The aggregate enforces the removal rules: the item must exist and an
// order may never be left with zero items. The stored total is deliberately
// left unchanged, matching the bill as originally placed.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRemoveOrderItemCommandHandler creates a handler for item removal.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the item removal command.
// Publishes a status_update carrying the full refreshed snapshot so that
// observers replace their copy of the order rather than patching it.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (events.OrderSnapshot, error) {
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
	if _, err = aggregate.RemoveItem(cmd.ItemID(), time.Now().UTC()); err != nil {
		return events.OrderSnapshot{}, err
	}

	if err = orderRepo.DeleteItem(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
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

	return snapshot, nil
}
