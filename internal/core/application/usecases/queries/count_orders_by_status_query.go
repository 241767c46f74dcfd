package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts rows per status across every owner.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}
