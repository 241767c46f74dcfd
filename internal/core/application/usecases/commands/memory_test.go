package commands_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// memoryStore is a transactional in-memory store: a unit of work works on a
// copy of the committed rows and publishes it on Commit only.
type memoryStore struct {
	orders  []*order.Order
	events  []order.Event
	users   []*party.User
	clients []*party.Client
	owners  []*party.Owner
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

// orderFactory exposes the store through the narrower OrderUoWFactory.
func (s *memoryStore) orderFactory() commands.OrderUoWFactory {
	return orderUoWFactoryFunc(func() commands.OrderUoW { return s.Create() })
}

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW {
	return f()
}

func (s *memoryStore) seed(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	s.orders = append(s.orders, clone(t, o))
	s.events = append(s.events, o.PullEvents()...)
	return o
}

func (s *memoryStore) row(id kernel.UUID) *order.Order {
	for _, o := range s.orders {
		if o.ID().IsEqual(id) {
			return o
		}
	}
	return nil
}

func (s *memoryStore) eventsOf(id kernel.UUID) []order.Event {
	var out []order.Event
	for _, e := range s.events {
		if e.OrderID().IsEqual(id) {
			out = append(out, e)
		}
	}
	return out
}

type memoryUoW struct {
	store  *memoryStore
	active bool
	orders []*order.Order
	events []order.Event
}

func (u *memoryUoW) Begin(context.Context) error {
	if u.active {
		return nil
	}
	u.active = true
	u.orders = make([]*order.Order, 0, len(u.store.orders))
	for _, o := range u.store.orders {
		u.orders = append(u.orders, mustClone(o))
	}
	u.events = nil
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if !u.active {
		return errors.New("no transaction")
	}
	u.store.orders = u.orders
	u.store.events = append(u.store.events, u.events...)
	u.active = false
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if !u.active {
		return errors.New("no transaction")
	}
	u.active = false
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository {
	return memoryOrders{u}
}

func (u *memoryUoW) DirectoryRepository() ports.DirectoryRepository {
	return memoryDirectory{u.store}
}

type memoryOrders struct{ u *memoryUoW }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	for _, existing := range r.u.orders {
		if existing.OwnerID() == o.OwnerID() &&
			kernel.EqualIDs(existing.ClientID(), o.ClientID()) &&
			existing.PackageCode().IsEqual(o.PackageCode()) {
			return order.ErrDuplicateOrder
		}
	}
	r.u.orders = append(r.u.orders, mustClone(o))
	r.u.events = append(r.u.events, o.PullEvents()...)
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	for i, existing := range r.u.orders {
		if existing.ID().IsEqual(o.ID()) {
			r.u.orders[i] = mustClone(o)
			r.u.events = append(r.u.events, o.PullEvents()...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order", o.ID())
}

func (r memoryOrders) Get(_ context.Context, ownerID kernel.ID, id kernel.UUID) (*order.Order, error) {
	for _, o := range r.u.orders {
		if o.OwnerID() == ownerID && o.ID().IsEqual(id) {
			return mustClone(o), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

func (r memoryOrders) FindByOwnerAndCode(_ context.Context, ownerID kernel.ID, code kernel.PackageCode) (*order.Order, error) {
	for _, o := range r.sorted() {
		if o.OwnerID() == ownerID && o.PackageCode().IsEqual(code) {
			return mustClone(o), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("package code", code)
}

func (r memoryOrders) FindAllByCode(_ context.Context, code kernel.PackageCode) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range r.sorted() {
		if o.PackageCode().IsEqual(code) {
			out = append(out, mustClone(o))
		}
	}
	return out, nil
}

func (r memoryOrders) FindByOwnerClientAndCode(
	_ context.Context,
	ownerID kernel.ID,
	clientID kernel.ID,
	code kernel.PackageCode,
) (*order.Order, error) {
	for _, o := range r.u.orders {
		if o.OwnerID() == ownerID && kernel.EqualIDs(o.ClientID(), &clientID) && o.PackageCode().IsEqual(code) {
			return mustClone(o), nil
		}
	}
	return nil, nil
}

func (r memoryOrders) ListByOwner(_ context.Context, ownerID kernel.ID) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range r.sorted() {
		if o.OwnerID() == ownerID {
			out = append(out, mustClone(o))
		}
	}
	slices.Reverse(out)
	return out, nil
}

func (r memoryOrders) sorted() []*order.Order {
	out := slices.Clone(r.u.orders)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

type memoryDirectory struct{ s *memoryStore }

func (d memoryDirectory) GetUser(_ context.Context, ownerID kernel.ID, userID kernel.ID) (*party.User, error) {
	for _, u := range d.s.users {
		if u.ID() == userID && u.OwnerID() == ownerID {
			return u, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("user", userID)
}

func (d memoryDirectory) GetClient(_ context.Context, ownerID kernel.ID, clientID kernel.ID) (*party.Client, error) {
	for _, c := range d.s.clients {
		if c.ID() == clientID && c.OwnerID() == ownerID {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("client", clientID)
}

func (d memoryDirectory) GetOwner(_ context.Context, ownerID kernel.ID) (*party.Owner, error) {
	for _, o := range d.s.owners {
		if o.ID() == ownerID {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("owner", ownerID)
}

func snapshotOf(o *order.Order) order.Snapshot {
	return order.Snapshot{
		ID:          o.ID(),
		OwnerID:     o.OwnerID(),
		ClientID:    o.ClientID(),
		PackageCode: o.PackageCode(),
		Service:     o.Service(),
		Address:     o.Address(),
		Status:      o.Status(),
		HandlerID:   o.HandlerID(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func mustClone(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(snapshotOf(o))
	if err != nil {
		panic(err)
	}
	return c
}

func clone(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	c, err := order.RestoreOrder(snapshotOf(o))
	require.NoError(t, err)
	return c
}

// fixtures

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) commands.Clock {
	return func() time.Time { return at }
}

func newActor(t *testing.T, ownerID, userID kernel.ID, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(ownerID, userID, role)
	require.NoError(t, err)
	return a
}

func newUser(t *testing.T, id, ownerID kernel.ID, role actor.Role) *party.User {
	t.Helper()
	u, err := party.RestoreUser(id, ownerID, role)
	require.NoError(t, err)
	return u
}

func newClient(t *testing.T, id, ownerID kernel.ID, typ party.ClientType) *party.Client {
	t.Helper()
	c, err := party.RestoreClient(id, ownerID, typ)
	require.NoError(t, err)
	return c
}

func newOwner(t *testing.T, id kernel.ID, slug *string) *party.Owner {
	t.Helper()
	o, err := party.RestoreOwner(id, slug)
	require.NoError(t, err)
	return o
}

func code(t *testing.T, raw string) kernel.PackageCode {
	t.Helper()
	c, err := kernel.NewPackageCode(raw)
	require.NoError(t, err)
	return c
}

// row builds a stored order; offset orders rows of the same package by creation time.
func row(t *testing.T, ownerID kernel.ID, pkg string, status order.Status, offset time.Duration) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		OwnerID:     ownerID,
		ClientID:    kernel.ID(10).Ptr(),
		PackageCode: code(t, pkg),
		Service:     "FLEX",
		Address:     kernel.RestoreAddress("Rua Augusta, 100", "01305-000"),
		Status:      status,
		CreatedAt:   t0.Add(offset),
		UpdatedAt:   t0.Add(offset),
	})
	require.NoError(t, err)
	return o
}
