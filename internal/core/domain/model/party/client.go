package party

import (
	"errors"
	"fmt"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via RestoreClient")
	// ErrInvalidClientType is returned when a client of the wrong type is picked for a provider assignment.
	ErrInvalidClientType = errors.New("invalid client type")
	// ErrInvalidUserType is returned when a user who is not a driver is picked for a driver assignment.
	ErrInvalidUserType = errors.New("invalid user type")
)

// ClientType is the stored "tipo_cliente".
type ClientType string

const (
	// Seller is a client that ships packages.
	Seller ClientType = "VENDEDOR"
	// Provider is a downstream fulfilment partner an order can be handed over to.
	Provider ClientType = "PRESTADOR"
)

// NormalizeClientType trims and upper-cases a stored "tipo_cliente". Unknown
// and empty types are kept; such a client is simply not a provider.
func NormalizeClientType(raw string) ClientType {
	return ClientType(strings.ToUpper(strings.TrimSpace(raw)))
}

func (t ClientType) String() string {
	return string(t)
}

// Client is the read model of a client company registered under an owner.
type Client struct {
	id      kernel.ID
	ownerID kernel.ID
	typ     ClientType
	guard   guard.ConstructorGuard
}

func RestoreClient(id, ownerID kernel.ID, typ ClientType) (*Client, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	return &Client{
		id:      id,
		ownerID: ownerID,
		typ:     typ,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.ID {
	return c.id
}

func (c *Client) OwnerID() kernel.ID {
	return c.ownerID
}

func (c *Client) Type() ClientType {
	return c.typ
}

func (c *Client) IsProvider() bool {
	return c.typ == Provider
}

// CheckProviderOf returns nil when the client can receive orders handed over by ownerID.
// Clients of another tenant are reported as not found.
func (c *Client) CheckProviderOf(ownerID kernel.ID) error {
	if c.ownerID != ownerID {
		return errs.NewObjectNotFoundError("client", c.id)
	}
	if !c.IsProvider() {
		return fmt.Errorf("%w: client %s has type %q", ErrInvalidClientType, c.id, c.typ)
	}
	return nil
}
