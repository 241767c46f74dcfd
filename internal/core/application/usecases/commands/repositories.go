// Package commands contains the operations that change order state.
// Every handler runs inside one unit of work: validate the command, Begin,
// read with row locks, mutate aggregates, write, Commit. Any failure rolls the
// whole transaction back.
package commands

import (
	"context"
	"time"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DirectoryRepoFactory provides access to users, clients and owners within a transaction.
	DirectoryRepoFactory interface {
		DirectoryRepository() ports.DirectoryRepository
	}

	// OrderUoW manages transactions for operations that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for operations that also look up the directory.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   row, err := uow.OrderRepository().FindByOwnerAndCode(ctx, ownerID, code)
	//   driver, err := uow.DirectoryRepository().GetUser(ctx, ownerID, userID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DirectoryRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// Clock supplies transition timestamps.
type Clock func() time.Time
