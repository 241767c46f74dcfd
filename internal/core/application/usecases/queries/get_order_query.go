package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order of the acting owner by its identifier.
// Orders of other owners are reported as not found.
type GetOrderQuery struct {
	ownerID kernel.ID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(ownerID kernel.ID, orderID string) (GetOrderQuery, error) {
	id, idErr := kernel.UUIDFromString(orderID)
	if err := errors.Join(ownerID.Validate(), idErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{ownerID: ownerID, orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OwnerID() kernel.ID {
	return q.ownerID
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
