package actor

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	// ErrForbidden is returned when the actor's role may not perform an operation.
	ErrForbidden = errors.New("forbidden")
	// ErrActorIsNotConstructed is returned for a zero-value Actor.
	ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")
)

// Actor is the authenticated principal driving a command. Identity is
// established upstream; this package only models what the tracking core
// consumes from it: the owner scope, the user and the role.
type Actor struct { //nolint:recvcheck //using for validation
	ownerID kernel.ID
	userID  kernel.ID
	role    Role
	guard   guard.ConstructorGuard
}

func NewActor(ownerID, userID kernel.ID, role Role) (Actor, error) {
	if err := errors.Join(
		ownerID.Validate(),
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		ownerID: ownerID,
		userID:  userID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) OwnerID() kernel.ID {
	return a.ownerID
}

func (a Actor) UserID() kernel.ID {
	return a.userID
}

func (a Actor) Role() Role {
	return a.role
}

// RequireRole fails with ErrForbidden unless the actor holds one of roles.
func (a Actor) RequireRole(roles ...Role) error {
	for _, r := range roles {
		if a.role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s is not allowed", ErrForbidden, a.role)
}

func (a Actor) String() string {
	return fmt.Sprintf("owner=%s user=%s role=%s", a.ownerID, a.userID, a.role)
}
