package commands

import (
	"context"

	"orderboard/internal/core/application/events"
	"orderboard/internal/core/ports"
)

// DeleteOrderCommandHandler cancels an order and removes it from storage.
// Unlike serving, cancellation is a hard delete: the order and its items
// are gone and the order_removed broadcast tells observers to drop it.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order cancellation.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// The order is loaded first so that cancelling a missing order surfaces a
// not-found error rather than silently succeeding.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.NewOrderRemoved(aggregate.ID().String()))

	return nil
}
