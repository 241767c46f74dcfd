package party

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// DefaultFlowSlug is used for owners that never configured a flow.
const DefaultFlowSlug = "1"

var ErrOwnerIsNotConstructed = errors.New("Owner must be created via RestoreOwner")

// Owner is a tenant. Its slug selects the status flow applied by the
// flow-driven advance operation.
type Owner struct {
	id    kernel.ID
	slug  string
	guard guard.ConstructorGuard
}

// RestoreOwner falls back to DefaultFlowSlug only when slug is nil or empty.
// Any other slug is trimmed, so a whitespace-only slug selects no flow.
func RestoreOwner(id kernel.ID, slug *string) (*Owner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s := DefaultFlowSlug
	if slug != nil && *slug != "" {
		s = strings.TrimSpace(*slug)
	}

	return &Owner{id: id, slug: s, guard: guard.NewConstructorGuard()}, nil
}

func (o *Owner) Validate() error {
	if o == nil {
		return ErrOwnerIsNotConstructed
	}
	return o.guard.Validate(ErrOwnerIsNotConstructed)
}

func (o *Owner) ID() kernel.ID {
	return o.id
}

func (o *Owner) Slug() string {
	return o.slug
}
