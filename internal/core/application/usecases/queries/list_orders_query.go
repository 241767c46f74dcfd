package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders of one owner, newest first, optionally
// narrowed to a single status.
type ListOrdersQuery struct {
	ownerID kernel.ID
	status  *order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(ownerID kernel.ID, status *int) (ListOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}
	if status != nil {
		s := order.Status(*status)
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &s
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) OwnerID() kernel.ID {
	return q.ownerID
}

// Status is the filter, nil for every status.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}
