package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery reads the status history of one of the acting owner's orders.
type GetOrderEventsQuery struct {
	ownerID kernel.ID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderEventsQuery(ownerID kernel.ID, orderID string) (GetOrderEventsQuery, error) {
	id, idErr := kernel.UUIDFromString(orderID)
	if err := errors.Join(ownerID.Validate(), idErr); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return GetOrderEventsQuery{ownerID: ownerID, orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

func (q GetOrderEventsQuery) OwnerID() kernel.ID {
	return q.ownerID
}

func (q GetOrderEventsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// EventView is the read model of one status-change event.
type EventView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OwnerID     kernel.ID
	Status      int
	ActorUserID *kernel.ID
	Payload     map[string]any
	OccurredAt  time.Time
}
