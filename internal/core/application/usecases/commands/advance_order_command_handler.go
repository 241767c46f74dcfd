package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
)

var (
	// ErrAssigneeAmbiguous is returned for a Triaged order when neither or both
	// of client and user are given.
	ErrAssigneeAmbiguous = errors.New("exactly one of client id or user id must be given")
	// ErrDriverRequired is returned for a SelfAssigned order without a driver.
	ErrDriverRequired = errors.New("user id of a driver is required")
)

// AdvanceOrderCommandHandler applies the primary lifecycle to the acting
// owner's order for a package:
//
//	Intake       -> Triaged, acting user becomes handler
//	Triaged      -> ProviderAssigned (client given) or DriverAssigned (user given)
//	SelfAssigned -> DriverAssigned on every owner's row of the package
//
// Any other status fails with order.ErrUnsupportedTransition.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewAdvanceOrderCommand(by, "BR1", nil, &driverID, nil)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrDriverRequired):
//	    // ask for a driver
//	case errors.Is(err, order.ErrUnsupportedTransition):
//	    // already picked up or delivered
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
	fanOut     services.PackageFanOut
}

func NewAdvanceOrderCommandHandler(uowFactory UoWFactory, clock Clock) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		fanOut:     services.NewPackageFanOut(),
	}
}

// Handle returns the acting owner's order after the transition.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	// Every transition locks the whole package group in store order, so
	// concurrent pickups and deliveries of one package never wait on each
	// other in opposite orders.
	orderRepo := uow.OrderRepository()
	rows, err := orderRepo.FindAllByCode(ctx, cmd.PackageCode())
	if err != nil {
		return nil, err
	}

	current, err := ownRow(rows, cmd)
	if err != nil {
		return nil, err
	}

	now := h.clock()
	var (
		result  *order.Order
		changed []*order.Order
	)

	switch current.Status() {
	case order.Intake:
		if err = h.changeService(current, cmd); err != nil {
			return nil, err
		}
		if err = current.Triage(cmd.Actor(), now); err != nil {
			return nil, err
		}
		result, changed = current, []*order.Order{current}

	case order.Triaged:
		if err = h.changeService(current, cmd); err != nil {
			return nil, err
		}
		if err = h.assign(ctx, uow, current, cmd, now); err != nil {
			return nil, err
		}
		result, changed = current, []*order.Order{current}

	case order.SelfAssigned:
		result, err = h.pickup(ctx, uow, current, rows, cmd, now)
		if err != nil {
			return nil, err
		}
		changed = rows

	default:
		return nil, order.UnsupportedTransitionError(current.Status())
	}

	for _, o := range changed {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

func (h AdvanceOrderCommandHandler) assign(
	ctx context.Context,
	uow UoW,
	current *order.Order,
	cmd AdvanceOrderCommand,
	now time.Time,
) error {
	directory := uow.DirectoryRepository()
	ownerID := cmd.Actor().OwnerID()

	switch {
	case cmd.ClientID() != nil && cmd.UserID() == nil:
		client, err := directory.GetClient(ctx, ownerID, *cmd.ClientID())
		if err != nil {
			return err
		}
		return current.AssignProvider(client, cmd.Actor(), now)

	case cmd.ClientID() == nil && cmd.UserID() != nil:
		driver, err := directory.GetUser(ctx, ownerID, *cmd.UserID())
		if err != nil {
			return err
		}
		return current.AssignDriver(driver, cmd.Actor(), now)

	default:
		return ErrAssigneeAmbiguous
	}
}

// pickup moves every row of the package, the acting owner's included, to
// DriverAssigned. current is the acting owner's instance among rows, so it is
// written only once.
func (h AdvanceOrderCommandHandler) pickup(
	ctx context.Context,
	uow UoW,
	current *order.Order,
	rows []*order.Order,
	cmd AdvanceOrderCommand,
	now time.Time,
) (*order.Order, error) {
	if cmd.UserID() == nil {
		return nil, ErrDriverRequired
	}

	driver, err := uow.DirectoryRepository().GetUser(ctx, cmd.Actor().OwnerID(), *cmd.UserID())
	if err != nil {
		return nil, err
	}

	result, err := h.fanOut.Pickup(current, rows, driver, cmd.Actor(), now)
	if err != nil {
		return nil, err
	}

	if err = h.changeService(result, cmd); err != nil {
		return nil, err
	}

	return result, nil
}

// ownRow picks the acting owner's oldest row out of the package group.
func ownRow(rows []*order.Order, cmd AdvanceOrderCommand) (*order.Order, error) {
	ownerID := cmd.Actor().OwnerID()
	for _, row := range rows {
		if row.BelongsTo(ownerID) {
			return row, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause(
		"package code", cmd.PackageCode(),
		fmt.Errorf("owner %s has no order for this package", ownerID),
	)
}

func (h AdvanceOrderCommandHandler) changeService(o *order.Order, cmd AdvanceOrderCommand) error {
	if cmd.Service() == nil {
		return nil
	}
	return o.ChangeService(*cmd.Service())
}
