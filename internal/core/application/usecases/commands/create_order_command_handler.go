package commands

import (
	"context"

	"orderboard/internal/core/application/events"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the order aggregate in pending status, persists it, and broadcasts
// a new_order event once the transaction has committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "walk-in", "", nil, "", "", items, time.Time{})
//
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and visible to every connected dashboard
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the post-commit broadcast.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Item identifiers are minted here, the total is computed by the aggregate
// from item subtotals, and any client-supplied total is ignored.
// The new_order event is published only after a successful commit so
// observers never see an order the database does not have.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (events.OrderSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return events.OrderSnapshot{}, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), input.Name, input.Price, input.Quantity, input.Notes)
		if err != nil {
			return events.OrderSnapshot{}, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.CustomerName(),
		cmd.TableNumber(),
		cmd.OrderType(),
		cmd.OrderCode(),
		items,
		cmd.CreatedAt(),
	)
	if err != nil {
		return events.OrderSnapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return events.OrderSnapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return events.OrderSnapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return events.OrderSnapshot{}, err
	}

	snapshot := events.SnapshotFromOrder(aggregate)
	h.publisher.Publish(events.NewOrderCreated(snapshot))

	return snapshot, nil
}
