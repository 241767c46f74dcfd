package commands_test

import (
	"context"
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCommand(t *testing.T, by actor.Actor, pkg string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(by, 10, pkg, "FLEX", "Rua Augusta, 100", "01305-000")
	require.NoError(t, err)
	return cmd
}

func TestCreateLegacyOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	by := newActor(t, 1, 7, actor.Operator)

	t.Run("successful creation follows the unit of work protocol", func(t *testing.T) {
		cmd := newCreateCommand(t, by, "BR1")

		uow := &MockUoW{}
		repo := &MockOrderRepository{}
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("FindByOwnerClientAndCode", ctx, kernel.ID(1), kernel.ID(10), cmd.PackageCode()).
				Return(nil, nil).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
				return o.Status() == order.Intake && o.HandlerID() == nil && len(o.PendingEvents()) == 1
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		o, err := commands.NewCreateLegacyOrderCommandHandler(factory, fixedClock(t0)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Intake, o.Status())
		assert.Equal(t, t0, o.CreatedAt())
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate is rejected before insert", func(t *testing.T) {
		cmd := newCreateCommand(t, by, "BR1")
		existing := row(t, 1, "BR1", order.Intake, 0)

		uow := &MockUoW{}
		repo := &MockOrderRepository{}
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("FindByOwnerClientAndCode", ctx, kernel.ID(1), kernel.ID(10), cmd.PackageCode()).
			Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		o, err := commands.NewCreateLegacyOrderCommandHandler(factory, fixedClock(t0)).Handle(ctx, cmd)

		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrDuplicateOrder)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("begin error", func(t *testing.T) {
		cmd := newCreateCommand(t, by, "BR1")
		beginErr := errors.New("connection refused")

		uow := &MockUoW{}
		factory := &MockOrderUoWFactory{}
		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(beginErr).Once()

		_, err := commands.NewCreateLegacyOrderCommandHandler(factory, fixedClock(t0)).Handle(ctx, cmd)

		require.ErrorIs(t, err, beginErr)
		uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("commit error is returned", func(t *testing.T) {
		cmd := newCreateCommand(t, by, "BR1")
		commitErr := errors.New("serialization failure")

		uow := &MockUoW{}
		repo := &MockOrderRepository{}
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil)
		repo.On("FindByOwnerClientAndCode", ctx, kernel.ID(1), kernel.ID(10), cmd.PackageCode()).Return(nil, nil)
		repo.On("Add", ctx, mock.Anything).Return(nil)
		uow.On("Commit", ctx).Return(commitErr)
		uow.On("Rollback", ctx).Return(nil)

		o, err := commands.NewCreateLegacyOrderCommandHandler(factory, fixedClock(t0)).Handle(ctx, cmd)

		assert.Nil(t, o)
		require.ErrorIs(t, err, commitErr)
	})

	t.Run("unconstructed command never opens a transaction", func(t *testing.T) {
		factory := &MockOrderUoWFactory{}

		_, err := commands.NewCreateLegacyOrderCommandHandler(factory, fixedClock(t0)).
			Handle(ctx, commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestCreateDirectOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	by := newActor(t, 1, 7, actor.Operator)

	t.Run("starts self assigned with the creator as handler", func(t *testing.T) {
		store := &memoryStore{}
		handler := commands.NewCreateDirectOrderCommandHandler(store.orderFactory(), fixedClock(t0))

		o, err := handler.Handle(ctx, newCreateCommand(t, by, "BR9"))

		require.NoError(t, err)
		assert.Equal(t, order.SelfAssigned, o.Status())
		require.NotNil(t, o.HandlerID())
		assert.Equal(t, kernel.ID(7), *o.HandlerID())

		events := store.eventsOf(o.ID())
		require.Len(t, events, 1)
		assert.Equal(t, order.SelfAssigned, events[0].Type())
		require.NotNil(t, events[0].ActorUserID())
		assert.Equal(t, kernel.ID(7), *events[0].ActorUserID())
	})

	t.Run("same package for another client of the owner is allowed", func(t *testing.T) {
		store := &memoryStore{}
		handler := commands.NewCreateDirectOrderCommandHandler(store.orderFactory(), fixedClock(t0))

		_, err := handler.Handle(ctx, newCreateCommand(t, by, "BR9"))
		require.NoError(t, err)

		other, err := commands.NewCreateOrderCommand(by, 11, "BR9", "FLEX", "Rua B", "01305000")
		require.NoError(t, err)
		_, err = handler.Handle(ctx, other)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, newCreateCommand(t, by, "BR9"))
		require.ErrorIs(t, err, order.ErrDuplicateOrder)

		assert.Len(t, store.orders, 2)
		assert.Len(t, store.events, 2)
	})
}
