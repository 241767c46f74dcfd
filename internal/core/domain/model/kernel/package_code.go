package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// PackageCodeMaxLength bounds the carrier code printed on the physical label.
const PackageCodeMaxLength = 64

// ErrPackageCodeIsNotConstructed is returned for a zero-value PackageCode.
var ErrPackageCodeIsNotConstructed = errs.NewValueIsRequiredError("package code must be created via NewPackageCode")

// PackageCode identifies a physical package. The same code may appear in the
// order tables of several owners at once; it is the grouping key for status
// propagation across tenants.
type PackageCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPackageCode trims surrounding whitespace and rejects empty or oversized codes.
// Codes are case sensitive.
func NewPackageCode(raw string) (PackageCode, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return PackageCode{}, errs.NewValueIsRequiredError("package code")
	}
	if n := utf8.RuneCountInString(value); n > PackageCodeMaxLength {
		return PackageCode{}, errs.NewValueIsInvalidErrorWithCause(
			"package code",
			fmt.Errorf("%d characters exceeds the limit of %d", n, PackageCodeMaxLength),
		)
	}

	return PackageCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c PackageCode) Validate() error {
	return c.guard.Validate(ErrPackageCodeIsNotConstructed)
}

func (c PackageCode) String() string {
	return c.value
}

func (c PackageCode) IsEqual(other PackageCode) bool {
	return c.value == other.value
}
