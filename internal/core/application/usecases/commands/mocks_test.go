package commands_test

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, ownerID kernel.ID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, ownerID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByOwnerAndCode(
	ctx context.Context,
	ownerID kernel.ID,
	code kernel.PackageCode,
) (*order.Order, error) {
	args := m.Called(ctx, ownerID, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindAllByCode(ctx context.Context, code kernel.PackageCode) ([]*order.Order, error) {
	args := m.Called(ctx, code)
	rows, _ := args.Get(0).([]*order.Order)
	return rows, args.Error(1)
}

func (m *MockOrderRepository) FindByOwnerClientAndCode(
	ctx context.Context,
	ownerID kernel.ID,
	clientID kernel.ID,
	code kernel.PackageCode,
) (*order.Order, error) {
	args := m.Called(ctx, ownerID, clientID, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, ownerID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*order.Order)
	return rows, args.Error(1)
}

type MockDirectoryRepository struct{ mock.Mock }

func (m *MockDirectoryRepository) GetUser(ctx context.Context, ownerID kernel.ID, userID kernel.ID) (*party.User, error) {
	args := m.Called(ctx, ownerID, userID)
	u, _ := args.Get(0).(*party.User)
	return u, args.Error(1)
}

func (m *MockDirectoryRepository) GetClient(ctx context.Context, ownerID kernel.ID, clientID kernel.ID) (*party.Client, error) {
	args := m.Called(ctx, ownerID, clientID)
	c, _ := args.Get(0).(*party.Client)
	return c, args.Error(1)
}

func (m *MockDirectoryRepository) GetOwner(ctx context.Context, ownerID kernel.ID) (*party.Owner, error) {
	args := m.Called(ctx, ownerID)
	o, _ := args.Get(0).(*party.Owner)
	return o, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DirectoryRepository() ports.DirectoryRepository {
	args := m.Called()
	return args.Get(0).(ports.DirectoryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
