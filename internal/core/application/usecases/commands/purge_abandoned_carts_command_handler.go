package commands

import (
	"context"
	"time"
)

// PurgeAbandonedCartsCommandHandler drops cart lines that have been idle
// longer than the commanded duration. Runs on a schedule from the jobs
// package.
type PurgeAbandonedCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPurgeAbandonedCartsCommandHandler creates a handler for cart purging.
func NewPurgeAbandonedCartsCommandHandler(uowFactory CartUoWFactory) PurgeAbandonedCartsCommandHandler {
	return PurgeAbandonedCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and reports how many lines were removed.
func (h *PurgeAbandonedCartsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeAbandonedCartsCommand,
) (int64, error) {
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

	cutoff := time.Now().UTC().Add(-cmd.IdleFor())
	purged, err := uow.CartRepository().DeleteItemsIdleSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
