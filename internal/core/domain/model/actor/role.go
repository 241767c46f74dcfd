package actor

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// Role is the user type ("users.tipo") carried by an authenticated principal.
type Role string

const (
	Admin    Role = "ADMIN"
	Operator Role = "OPERADOR"
	Driver   Role = "ENTREGADOR"
)

// ParseRole accepts the stored role names, ignoring case and surrounding blanks.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case Admin, Operator, Driver:
		return nil
	case "":
		return errs.NewValueIsRequiredError("role")
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsDriver() bool {
	return r == Driver
}
