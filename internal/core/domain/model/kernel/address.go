package kernel

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned for a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is the delivery destination of an order: a free-form street line
// and a postal code. Neither part is checked; both are stored as sent.
//
//	addr := kernel.NewAddress("Rua Augusta, 100", "01305-000")
//	addr.CEP() // "01305-000"
type Address struct { //nolint:recvcheck //using for validation
	street string
	cep    string
	guard  guard.ConstructorGuard
}

// NewAddress trims surrounding whitespace off both parts. Empty values are kept.
func NewAddress(street, cep string) Address {
	return Address{
		street: strings.TrimSpace(street),
		cep:    strings.TrimSpace(cep),
		guard:  guard.NewConstructorGuard(),
	}
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) CEP() string {
	return a.cep
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.street, a.cep)
}

// RestoreAddress rebuilds an Address read from storage exactly as stored.
func RestoreAddress(street, cep string) Address {
	return Address{street: street, cep: cep, guard: guard.NewConstructorGuard()}
}
