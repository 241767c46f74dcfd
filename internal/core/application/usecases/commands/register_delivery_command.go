package commands

import (
	"errors"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrRegisterDeliveryCommandIsNotConstructed = errors.New(
	"RegisterDeliveryCommand must be created via NewRegisterDeliveryCommand constructor",
)

// RegisterDeliveryCommand records that a driver handed a package to its recipient.
type RegisterDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	packageCode kernel.PackageCode

	guard guard.ConstructorGuard
}

func NewRegisterDeliveryCommand(by actor.Actor, packageCode string) (RegisterDeliveryCommand, error) {
	code, err := kernel.NewPackageCode(packageCode)
	if err = errors.Join(by.Validate(), err); err != nil {
		return RegisterDeliveryCommand{}, err
	}

	return RegisterDeliveryCommand{
		actor:       by,
		packageCode: code,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeliveryCommandIsNotConstructed)
}

func (c RegisterDeliveryCommand) Actor() actor.Actor {
	return c.actor
}

func (c RegisterDeliveryCommand) PackageCode() kernel.PackageCode {
	return c.packageCode
}
