package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves the acting owner's order for a package one step
// forward. Which optional fields matter depends on the current status:
//
//	Intake:       none
//	Triaged:      exactly one of clientID (provider) or userID (driver)
//	SelfAssigned: userID (driver), required
//
// service, when set, replaces the order's service type together with the transition.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	packageCode kernel.PackageCode
	clientID    *kernel.ID
	userID      *kernel.ID
	service     *string

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(
	by actor.Actor,
	packageCode string,
	clientID *int64,
	userID *int64,
	service *string,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	code, codeErr := kernel.NewPackageCode(packageCode)
	client, clientErr := kernel.IDFromPtr(clientID)
	user, userErr := kernel.IDFromPtr(userID)

	if err := errors.Join(by.Validate(), codeErr, clientErr, userErr, cmd.setService(service)); err != nil {
		return AdvanceOrderCommand{}, err
	}

	cmd.actor = by
	cmd.packageCode = code
	cmd.clientID = client
	cmd.userID = user
	return cmd, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c AdvanceOrderCommand) PackageCode() kernel.PackageCode {
	return c.packageCode
}

// ClientID is the provider to hand a Triaged order to, nil if not requested.
func (c AdvanceOrderCommand) ClientID() *kernel.ID {
	return c.clientID
}

// UserID is the driver to assign, nil if not requested.
func (c AdvanceOrderCommand) UserID() *kernel.ID {
	return c.userID
}

// Service is the replacement service type, nil to keep the current one.
func (c AdvanceOrderCommand) Service() *string {
	return c.service
}

func (c *AdvanceOrderCommand) setService(service *string) error {
	if service == nil {
		return nil
	}
	s := strings.TrimSpace(*service)
	if s == "" {
		return errs.NewValueIsRequiredError("service")
	}
	c.service = &s
	return nil
}
