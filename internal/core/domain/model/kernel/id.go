package kernel

import (
	"strconv"

	"tracking/internal/pkg/errs"
)

// ID references a record owned by a collaborating subsystem: owners, users and
// clients are keyed by positive 64-bit integers.
type ID int64

// NewID validates raw and returns it as an ID.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal ID, as found in headers and path parameters.
func ParseID(paramName, raw string) (ID, error) {
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(paramName)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return NewID(v)
}

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, "max int64")
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Ptr returns a pointer to a copy of id, for optional references.
func (id ID) Ptr() *ID {
	return &id
}

// IDFromPtr converts an optional raw value coming from storage or a request body.
func IDFromPtr(raw *int64) (*ID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// EqualIDs reports whether two optional references point to the same ID.
func EqualIDs(a, b *ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
