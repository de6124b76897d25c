package commands

import (
	"context"
	"time"
)

// PurgeServedOrdersCommandHandler removes served orders older than the
// retention window. No event is published: served orders already left the
// active queue when they were served, so observers have nothing to drop.
type PurgeServedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeServedOrdersCommandHandler creates a handler for the purge operation.
func NewPurgeServedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeServedOrdersCommandHandler {
	return PurgeServedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns how many orders were removed.
func (h *PurgeServedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeServedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.Retention())
	purged, err := orderRepo.DeleteServedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
