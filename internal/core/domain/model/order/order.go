package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through one of
	// the constructors of this package.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewIntakeOrder, NewDirectOrder or RestoreOrder")
	// ErrDuplicateOrder is returned when the owner already holds an order for the
	// same client and package code.
	ErrDuplicateOrder = errors.New("order already exists for this client and package code")
	// ErrServiceIsRequired is returned for a blank service type.
	ErrServiceIsRequired = errs.NewValueIsRequiredError("service")
)

// PayloadPropagatedFrom is the event payload key holding the owner whose
// action moved a row belonging to another owner.
const PayloadPropagatedFrom = "propagated_from_owner_id"

// Flow picks the status that follows current. Implementations are
// owner-configurable tables; see services.SlugFlowTable.
type Flow interface {
	Next(current Status) (Status, error)
}

// Order is one owner's record of a physical package. It is the aggregate root
// of the tracking core: every status change goes through its methods, and
// every status change records exactly one Event that the repository appends
// to the history in the same transaction as the row itself.
//
// The same package code may be held by several owners at once. Changes that
// must reach every copy of a package are coordinated by services.PackageFanOut;
// Order itself only ever touches its own row.
//
// Invariants:
//   - status is always one of the six Status values
//   - updatedAt strictly advances on every mutation
//   - (ownerID, clientID, packageCode) is unique at creation time (enforced by the store)
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	ownerID     kernel.ID
	clientID    *kernel.ID
	packageCode kernel.PackageCode
	service     string
	address     kernel.Address
	status      Status

	// handlerID is the user currently responsible for the package (nil if none)
	handlerID *kernel.ID

	createdAt time.Time
	updatedAt time.Time

	// events are recorded but not yet persisted
	events []Event

	guard guard.ConstructorGuard
}

// NewIntakeOrder creates an order captured by the marketplace sweep.
// The order starts in Intake with no handler and records an event without
// an actor.
//
// Parameters:
//   - by: the principal whose owner scope the order is created in
//   - clientID: the client that shipped the package
//   - code: the package code printed on the label
//   - service: the service type, must not be blank
//   - address: delivery destination
//   - at: creation time, used for createdAt, updatedAt and the first event
//
// Example:
//
//	code, _ := kernel.NewPackageCode("BR123")
//	addr := kernel.NewAddress("Rua Augusta, 100", "01305000")
//	o, err := order.NewIntakeOrder(by, 10, code, "FLEX", addr, time.Now())
func NewIntakeOrder(
	by actor.Actor,
	clientID kernel.ID,
	code kernel.PackageCode,
	service string,
	address kernel.Address,
	at time.Time,
) (*Order, error) {
	o, err := newOrder(by, clientID, code, service, address, Intake, nil, at)
	if err != nil {
		return nil, err
	}

	o.record(nil, nil)
	return o, nil
}

// NewDirectOrder creates an order registered by the owner that will deliver it
// itself. The order starts in SelfAssigned with the creating user as handler,
// and the first event is attributed to that user.
func NewDirectOrder(
	by actor.Actor,
	clientID kernel.ID,
	code kernel.PackageCode,
	service string,
	address kernel.Address,
	at time.Time,
) (*Order, error) {
	o, err := newOrder(by, clientID, code, service, address, SelfAssigned, by.UserID().Ptr(), at)
	if err != nil {
		return nil, err
	}

	o.record(by.UserID().Ptr(), nil)
	return o, nil
}

func newOrder(
	by actor.Actor,
	clientID kernel.ID,
	code kernel.PackageCode,
	service string,
	address kernel.Address,
	initial Status,
	handlerID *kernel.ID,
	at time.Time,
) (*Order, error) {
	o := &Order{
		id:        kernel.NewUUID(),
		status:    initial,
		handlerID: handlerID,
		createdAt: normalize(at),
		guard:     guard.NewConstructorGuard(),
	}
	o.updatedAt = o.createdAt

	if err := errors.Join(
		by.Validate(),
		clientID.Validate(),
		o.setPackageCode(code),
		o.setService(service),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	o.ownerID = by.OwnerID()
	o.clientID = clientID.Ptr()
	return o, nil
}

// Snapshot is the persisted state of an order, as read by the repositories.
type Snapshot struct {
	ID          kernel.UUID
	OwnerID     kernel.ID
	ClientID    *kernel.ID
	PackageCode kernel.PackageCode
	Service     string
	Address     kernel.Address
	Status      Status
	HandlerID   *kernel.ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreOrder reconstructs an Order from persistent storage. No event is recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.OwnerID.Validate(),
		s.PackageCode.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:          s.ID,
		ownerID:     s.OwnerID,
		clientID:    s.ClientID,
		packageCode: s.PackageCode,
		service:     s.Service,
		address:     s.Address,
		status:      s.Status,
		handlerID:   s.HandlerID,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OwnerID() kernel.ID {
	return o.ownerID
}

func (o *Order) ClientID() *kernel.ID {
	return o.clientID
}

func (o *Order) PackageCode() kernel.PackageCode {
	return o.packageCode
}

func (o *Order) Service() string {
	return o.service
}

func (o *Order) Address() kernel.Address {
	return o.address
}

func (o *Order) Status() Status {
	return o.status
}

// HandlerID returns the user responsible for the package, nil if none.
func (o *Order) HandlerID() *kernel.ID {
	return o.handlerID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// BelongsTo reports whether the row is held by ownerID.
func (o *Order) BelongsTo(ownerID kernel.ID) bool {
	return o.ownerID == ownerID
}

// PendingEvents returns a copy of the events not yet handed to the store.
func (o *Order) PendingEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// PullEvents returns the recorded events and forgets them.
func (o *Order) PullEvents() []Event {
	out := o.events
	o.events = nil
	return out
}

// ChangeService overrides the service type. It does not touch the status nor
// record an event; the change is persisted together with the next transition.
func (o *Order) ChangeService(service string) error {
	return o.setService(service)
}

// Triage accepts an Intake order: Intake -> Triaged, the acting user becomes
// the handler.
func (o *Order) Triage(by actor.Actor, at time.Time) error {
	if err := o.status.expect(Intake); err != nil {
		return err
	}

	o.status = Triaged
	o.handlerID = by.UserID().Ptr()
	o.touch(at)
	o.record(by.UserID().Ptr(), nil)
	return nil
}

// AssignProvider hands a Triaged order over to a PRESTADOR client of the same
// owner: Triaged -> ProviderAssigned. The acting user stays the handler.
//
// Returns:
//   - ErrUnsupportedTransition if the order is not Triaged
//   - errs.ObjectNotFoundError if the client belongs to another owner
//   - party.ErrInvalidClientType if the client is not a provider
func (o *Order) AssignProvider(client *party.Client, by actor.Actor, at time.Time) error {
	if err := o.status.expect(Triaged); err != nil {
		return err
	}
	if err := client.Validate(); err != nil {
		return err
	}
	if err := client.CheckProviderOf(o.ownerID); err != nil {
		return err
	}

	o.clientID = client.ID().Ptr()
	o.status = ProviderAssigned
	o.handlerID = by.UserID().Ptr()
	o.touch(at)
	o.record(by.UserID().Ptr(), nil)
	return nil
}

// AssignDriver hands a Triaged order to an ENTREGADOR of the same owner:
// Triaged -> DriverAssigned, the driver becomes the handler.
func (o *Order) AssignDriver(driver *party.User, by actor.Actor, at time.Time) error {
	if err := o.status.expect(Triaged); err != nil {
		return err
	}
	if err := driver.Validate(); err != nil {
		return err
	}
	if err := driver.CheckDriverOf(o.ownerID); err != nil {
		return err
	}

	o.status = DriverAssigned
	o.handlerID = driver.ID().Ptr()
	o.touch(at)
	o.record(by.UserID().Ptr(), nil)
	return nil
}

// MarkPickedUp moves the row to DriverAssigned whatever its current status.
// It is the per-row step of a package-wide pickup; callers decide which rows
// qualify. driverID is set as handler only when non-nil, so copies held by
// other owners keep their own handler.
func (o *Order) MarkPickedUp(driverID *kernel.ID, by actor.Actor, at time.Time) {
	o.status = DriverAssigned
	if driverID != nil {
		o.handlerID = driverID
	}
	o.touch(at)
	o.record(by.UserID().Ptr(), o.propagationPayload(by))
}

// MarkDelivered closes the row whatever its current status; the acting driver
// becomes the handler.
func (o *Order) MarkDelivered(by actor.Actor, at time.Time) {
	o.status = Delivered
	o.handlerID = by.UserID().Ptr()
	o.touch(at)
	o.record(by.UserID().Ptr(), o.propagationPayload(by))
}

// AdvanceWith moves the order to the status flow picks for its current one.
// The acting user becomes the handler.
func (o *Order) AdvanceWith(flow Flow, by actor.Actor, at time.Time) error {
	if flow == nil {
		return errs.NewValueIsRequiredError("flow")
	}

	next, err := flow.Next(o.status)
	if err != nil {
		return err
	}
	if err = next.Validate(); err != nil {
		return err
	}

	o.status = next
	o.handlerID = by.UserID().Ptr()
	o.touch(at)
	o.record(by.UserID().Ptr(), nil)
	return nil
}

func (o *Order) String() string {
	return fmt.Sprintf("order %s (owner %s, package %s, status %d)", o.id, o.ownerID, o.packageCode, o.status)
}

func (o *Order) propagationPayload(by actor.Actor) map[string]any {
	if o.ownerID == by.OwnerID() {
		return nil
	}
	return map[string]any{PayloadPropagatedFrom: by.OwnerID().Int64()}
}

func (o *Order) record(actorUserID *kernel.ID, payload map[string]any) {
	o.events = append(o.events, newEvent(o, actorUserID, payload))
}

// touch advances updatedAt to at, or by one microsecond when the clock has
// not moved past the stored value.
func (o *Order) touch(at time.Time) {
	at = normalize(at)
	if !at.After(o.updatedAt) {
		at = o.updatedAt.Add(time.Microsecond)
	}
	o.updatedAt = at
}

// normalize drops sub-microsecond precision, which the store does not keep.
func normalize(at time.Time) time.Time {
	return at.Truncate(time.Microsecond)
}

func (o *Order) setPackageCode(code kernel.PackageCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.packageCode = code
	return nil
}

func (o *Order) setService(service string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return ErrServiceIsRequired
	}
	o.service = service
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
