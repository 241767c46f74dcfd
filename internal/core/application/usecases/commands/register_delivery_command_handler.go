package commands

import (
	"context"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
)

// RegisterDeliveryCommandHandler closes every owner's row of a package once a
// driver reports the delivery.
type RegisterDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
	fanOut     services.PackageFanOut
}

func NewRegisterDeliveryCommandHandler(uowFactory OrderUoWFactory, clock Clock) RegisterDeliveryCommandHandler {
	return RegisterDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		fanOut:     services.NewPackageFanOut(),
	}
}

// Handle fails with actor.ErrForbidden before touching the store when the
// actor is not a driver. It returns the acting owner's row, or the oldest row
// of the package when the acting owner holds none.
func (h RegisterDeliveryCommandHandler) Handle(ctx context.Context, cmd RegisterDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Actor().RequireRole(actor.Driver); err != nil {
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
	rows, err := orderRepo.FindAllByCode(ctx, cmd.PackageCode())
	if err != nil {
		return nil, err
	}

	result, err := h.fanOut.Deliver(cmd.PackageCode(), rows, cmd.Actor(), h.clock())
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err = orderRepo.Update(ctx, row); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
