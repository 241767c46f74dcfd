package services

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/pkg/errs"
)

// ErrNoEligibleOrder is returned when none of a package's rows is out for delivery.
var ErrNoEligibleOrder = errors.New("no order eligible for delivery")

// PackageFanOut applies a status change to every owner's copy of a physical
// package. The same package code can be held by several owners (a marketplace
// order relayed through intermediaries); pickup and delivery must leave all
// copies in the same status, while assignment stays local to the acting owner.
//
// rows must hold every row of the package, loaded and locked in one unit of
// work, in store order. PackageFanOut never reads or writes the store itself.
//
// Example usage:
//
//	rows, _ := repo.FindAllByCode(ctx, code)
//	updated, err := services.NewPackageFanOut().Deliver(code, rows, driver, now)
//	if errors.Is(err, services.ErrNoEligibleOrder) {
//	    // nothing was picked up yet
//	}
type PackageFanOut struct{}

func NewPackageFanOut() PackageFanOut {
	return PackageFanOut{}
}

// Pickup hands a SelfAssigned package over to a driver.
//
// Parameters:
//   - initiator: the acting owner's row, must be SelfAssigned
//   - rows: every row sharing the initiator's package code
//   - driver: an ENTREGADOR of the acting owner
//   - by: the acting principal, recorded on every event
//   - at: transition time
//
// Every row moves to DriverAssigned whatever its status. Rows held by the
// acting owner get the driver as handler; other owners' rows keep theirs.
// One event is recorded per row, scoped to the row's owner.
//
// Returns the initiator's instance among rows.
func (f PackageFanOut) Pickup(
	initiator *order.Order,
	rows []*order.Order,
	driver *party.User,
	by actor.Actor,
	at time.Time,
) (*order.Order, error) {
	if err := errors.Join(initiator.Validate(), driver.Validate()); err != nil {
		return nil, err
	}
	if initiator.Status() != order.SelfAssigned {
		return nil, order.UnsupportedTransitionError(initiator.Status())
	}
	if err := driver.CheckDriverOf(by.OwnerID()); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("package code", initiator.PackageCode())
	}

	var result *order.Order
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}
		if row.IsEqual(initiator) {
			result = row
		}
	}
	if result == nil {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"order", initiator.ID(),
			fmt.Errorf("row is not part of package %s", initiator.PackageCode()),
		)
	}

	driverID := driver.ID().Ptr()
	for _, row := range rows {
		if row.BelongsTo(by.OwnerID()) {
			row.MarkPickedUp(driverID, by, at)
			continue
		}
		row.MarkPickedUp(nil, by, at)
	}

	return result, nil
}

// Deliver registers the delivery of a package by a driver.
//
// Only ENTREGADOR actors may deliver; the role is checked before anything
// else. At least one row must be ProviderAssigned or DriverAssigned, but once
// that holds every row is closed, including rows in other statuses.
//
// Returns the first row held by the acting owner, or the first row when the
// acting owner holds none.
func (f PackageFanOut) Deliver(
	code kernel.PackageCode,
	rows []*order.Order,
	by actor.Actor,
	at time.Time,
) (*order.Order, error) {
	if err := by.RequireRole(actor.Driver); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("package code", code)
	}

	eligible := false
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}
		if row.Status().IsOutForDelivery() {
			eligible = true
		}
	}
	if !eligible {
		return nil, fmt.Errorf("%w: package %s", ErrNoEligibleOrder, code)
	}

	for _, row := range rows {
		row.MarkDelivered(by, at)
	}

	return Representative(rows, by), nil
}

// Representative picks the row reported back to the actor after a fan-out:
// the first row of the actor's owner, else the first row.
func Representative(rows []*order.Order, by actor.Actor) *order.Order {
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		if row.BelongsTo(by.OwnerID()) {
			return row
		}
	}
	return rows[0]
}
