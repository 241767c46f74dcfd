package party

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using an improperly initialized User.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser")

// User is the read model of a person registered under an owner. Users are
// managed by the account subsystem; the tracking core only needs to know which
// owner a user belongs to and the user's role, to decide whether the user can
// take a package as a driver.
type User struct {
	id      kernel.ID
	ownerID kernel.ID
	role    actor.Role
	guard   guard.ConstructorGuard
}

// RestoreUser rebuilds a User from the directory store.
//
// Parameters:
//   - id: the user's identifier (users.user_id)
//   - ownerID: the tenant the user is registered under
//   - role: the stored user type, kept as given; the column is nullable and
//     anything other than ENTREGADOR simply makes the user a non-driver
//
// Returns the user or the joined validation errors of both ids.
func RestoreUser(id, ownerID kernel.ID, role actor.Role) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}

	return &User{
		id:      id,
		ownerID: ownerID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) OwnerID() kernel.ID {
	return u.ownerID
}

func (u *User) Role() actor.Role {
	return u.role
}

// IsDriverOf reports whether the user is an ENTREGADOR registered under ownerID.
func (u *User) IsDriverOf(ownerID kernel.ID) bool {
	return u.ownerID == ownerID && u.role.IsDriver()
}

// CheckDriverOf returns nil when the user may take packages for ownerID.
// A user of another tenant is reported as not found, so that the
// existence of users outside the caller's scope does not leak.
func (u *User) CheckDriverOf(ownerID kernel.ID) error {
	if u.ownerID != ownerID {
		return errs.NewObjectNotFoundError("user", u.id)
	}
	if !u.role.IsDriver() {
		return fmt.Errorf("%w: user %s has role %q", ErrInvalidUserType, u.id, u.role)
	}
	return nil
}
