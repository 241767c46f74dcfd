// Package ports defines the contracts between the tracking core and its
// infrastructure: the order store, the directory of users, clients and
// owners, and the unit of work that binds them to one transaction.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. After Commit there is
	// nothing left to roll back and it only reports that.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DirectoryRepository returns a DirectoryRepository bound to the current transaction.
	DirectoryRepository() DirectoryRepository
}
