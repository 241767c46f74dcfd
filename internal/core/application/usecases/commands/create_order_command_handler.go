package commands

import (
	"context"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// orderConstructor is one of the creation policies of the order package.
type orderConstructor func(
	by actor.Actor,
	clientID kernel.ID,
	code kernel.PackageCode,
	service string,
	address kernel.Address,
	at time.Time,
) (*order.Order, error)

// orderCreator is the insert routine shared by both creation policies:
// reject a duplicate (owner, client, package code), build the order, add it
// and its first event, commit.
type orderCreator struct {
	uowFactory OrderUoWFactory
	clock      Clock
	construct  orderConstructor
}

func (c orderCreator) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.FindByOwnerClientAndCode(ctx, cmd.Actor().OwnerID(), cmd.ClientID(), cmd.PackageCode())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: client %s, package %s", order.ErrDuplicateOrder, cmd.ClientID(), cmd.PackageCode())
	}

	o, err := c.construct(cmd.Actor(), cmd.ClientID(), cmd.PackageCode(), cmd.Service(), cmd.Address(), c.clock())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// CreateLegacyOrderCommandHandler registers orders found by the marketplace
// sweep: status Intake, no handler, first event without actor.
type CreateLegacyOrderCommandHandler struct {
	creator orderCreator
}

func NewCreateLegacyOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateLegacyOrderCommandHandler {
	return CreateLegacyOrderCommandHandler{
		creator: orderCreator{uowFactory: uowFactory, clock: clock, construct: order.NewIntakeOrder},
	}
}

func (h CreateLegacyOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	return h.creator.create(ctx, cmd)
}

// CreateDirectOrderCommandHandler registers orders the acting owner delivers
// itself: status SelfAssigned, the creating user as handler and event actor.
type CreateDirectOrderCommandHandler struct {
	creator orderCreator
}

func NewCreateDirectOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateDirectOrderCommandHandler {
	return CreateDirectOrderCommandHandler{
		creator: orderCreator{uowFactory: uowFactory, clock: clock, construct: order.NewDirectOrder},
	}
}

func (h CreateDirectOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	return h.creator.create(ctx, cmd)
}
