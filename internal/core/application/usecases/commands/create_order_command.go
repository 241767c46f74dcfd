package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand carries the data of a new order. The same command feeds
// both creation policies; the handler picks the initial status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(by, 10, "BR123", "FLEX", "Rua Augusta, 100", "01305-000")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := NewCreateDirectOrderCommandHandler(uowFactory, time.Now).Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	clientID    kernel.ID
	packageCode kernel.PackageCode
	service     string
	address     kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	by actor.Actor,
	clientID int64,
	packageCode string,
	service string,
	street string,
	cep string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(by),
		cmd.setClientID(clientID),
		cmd.setPackageCode(packageCode),
		cmd.setService(service),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.address = kernel.NewAddress(street, cep)

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c CreateOrderCommand) ClientID() kernel.ID {
	return c.clientID
}

func (c CreateOrderCommand) PackageCode() kernel.PackageCode {
	return c.packageCode
}

func (c CreateOrderCommand) Service() string {
	return c.service
}

func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateOrderCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	c.actor = by
	return nil
}

func (c *CreateOrderCommand) setClientID(raw int64) error {
	id, err := kernel.NewID(raw)
	if err != nil {
		return err
	}
	c.clientID = id
	return nil
}

func (c *CreateOrderCommand) setPackageCode(raw string) error {
	code, err := kernel.NewPackageCode(raw)
	if err != nil {
		return err
	}
	c.packageCode = code
	return nil
}

func (c *CreateOrderCommand) setService(service string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errs.NewValueIsRequiredError("service")
	}
	c.service = service
	return nil
}
