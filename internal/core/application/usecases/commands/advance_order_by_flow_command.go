package commands

import (
	"errors"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrAdvanceOrderByFlowCommandIsNotConstructed = errors.New(
	"AdvanceOrderByFlowCommand must be created via NewAdvanceOrderByFlowCommand constructor",
)

// AdvanceOrderByFlowCommand advances the acting owner's order along the flow
// configured for that owner.
type AdvanceOrderByFlowCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	packageCode kernel.PackageCode

	guard guard.ConstructorGuard
}

func NewAdvanceOrderByFlowCommand(by actor.Actor, packageCode string) (AdvanceOrderByFlowCommand, error) {
	code, err := kernel.NewPackageCode(packageCode)
	if err = errors.Join(by.Validate(), err); err != nil {
		return AdvanceOrderByFlowCommand{}, err
	}

	return AdvanceOrderByFlowCommand{
		actor:       by,
		packageCode: code,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderByFlowCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderByFlowCommandIsNotConstructed)
}

func (c AdvanceOrderByFlowCommand) Actor() actor.Actor {
	return c.actor
}

func (c AdvanceOrderByFlowCommand) PackageCode() kernel.PackageCode {
	return c.packageCode
}
