package order

import (
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"
)

// ErrUnsupportedTransition is returned when no rule moves an order out of its current status.
var ErrUnsupportedTransition = errors.New("unsupported status transition")

// Status is the numeric lifecycle code stored in orders.status and in the
// "tipo" of every event.
//
//	Intake ──> Triaged ──┬──> ProviderAssigned ──┐
//	                     └──> DriverAssigned ────┴──> Delivered
//	SelfAssigned ──> DriverAssigned (propagated to every row of the package)
//
// Delivered is terminal.
type Status int

const (
	// Intake is an order captured by the marketplace sweep, not yet looked at.
	Intake Status = 0
	// Triaged orders were accepted by an operator and wait for an assignee.
	Triaged Status = 1
	// ProviderAssigned orders were handed over to a PRESTADOR client.
	ProviderAssigned Status = 2
	// SelfAssigned orders were created directly by the owner that will deliver them.
	SelfAssigned Status = 3
	// DriverAssigned orders are with an ENTREGADOR.
	DriverAssigned Status = 4
	// Delivered orders are closed.
	Delivered Status = 5
)

var statusNames = map[Status]string{
	Intake:           "Intake",
	Triaged:          "Triaged",
	ProviderAssigned: "ProviderAssigned",
	SelfAssigned:     "SelfAssigned",
	DriverAssigned:   "DriverAssigned",
	Delivered:        "Delivered",
}

// Statuses lists every valid status in code order.
func Statuses() []Status {
	return []Status{Intake, Triaged, ProviderAssigned, SelfAssigned, DriverAssigned, Delivered}
}

// Validate rejects codes outside 0..5, e.g. when reading a row or parsing a filter.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Intake), int(Delivered))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) Int() int {
	return int(s)
}

func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsOutForDelivery reports whether a package in this status can be registered as delivered.
func (s Status) IsOutForDelivery() bool {
	return s == ProviderAssigned || s == DriverAssigned
}

// expect fails with ErrUnsupportedTransition unless s is one of allowed.
func (s Status) expect(allowed ...Status) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return UnsupportedTransitionError(s)
}

// UnsupportedTransitionError wraps ErrUnsupportedTransition with the offending status.
func UnsupportedTransitionError(current Status) error {
	return fmt.Errorf("%w: no rule for status %d (%s)", ErrUnsupportedTransition, int(current), current)
}
