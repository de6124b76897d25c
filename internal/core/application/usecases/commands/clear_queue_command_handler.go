package commands

import (
	"context"
	"time"

	"orderboard/internal/core/application/events"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// ClearQueueCommandHandler bulk-confirms every pending order.
// All confirmations happen in one transaction: either the whole pending
// queue advances or none of it does. A single clear event then carries the
// final snapshots so observers repaint in one step instead of animating
// dozens of individual updates.
type ClearQueueCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewClearQueueCommandHandler creates a handler for bulk queue confirmation.
func NewClearQueueCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ClearQueueCommandHandler {
	return ClearQueueCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the clear command.
// An empty pending queue is not an error: the clear event is published with
// an empty list and observers treat it as a no-op repaint.
func (h *ClearQueueCommandHandler) Handle(ctx context.Context, cmd ClearQueueCommand) ([]events.OrderSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snapshots := make([]events.OrderSnapshot, 0, len(pending))
	for _, aggregate := range pending {
		if err = aggregate.Confirm(now); err != nil {
			return nil, err
		}

		if err = orderRepo.Update(ctx, aggregate, order.Pending); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, events.SnapshotFromOrder(aggregate))
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(events.NewQueueCleared(snapshots))

	return snapshots, nil
}
