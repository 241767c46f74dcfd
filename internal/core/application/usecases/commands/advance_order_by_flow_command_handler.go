package commands

import (
	"context"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
)

// AdvanceOrderByFlowCommandHandler moves a single row along the flow selected
// by its owner's slug. It never fans out to other owners.
type AdvanceOrderByFlowCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
	flows      services.SlugFlowTable
}

func NewAdvanceOrderByFlowCommandHandler(
	uowFactory UoWFactory,
	clock Clock,
	flows services.SlugFlowTable,
) AdvanceOrderByFlowCommandHandler {
	return AdvanceOrderByFlowCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		flows:      flows,
	}
}

func (h AdvanceOrderByFlowCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderByFlowCommand) (*order.Order, error) {
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

	owner, err := uow.DirectoryRepository().GetOwner(ctx, cmd.Actor().OwnerID())
	if err != nil {
		return nil, err
	}

	flow, err := h.flows.ForSlug(owner.Slug())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByOwnerAndCode(ctx, cmd.Actor().OwnerID(), cmd.PackageCode())
	if err != nil {
		return nil, err
	}

	if err = o.AdvanceWith(flow, cmd.Actor(), h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
