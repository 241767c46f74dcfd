package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Add and Update drain the aggregate's pending events into the event log in
// the same transaction as the row.
type OrderRepository interface {
	// Add persists a new order and its creation event.
	// A second row with the same (owner, client, package code) fails with a duplicate error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and appends its pending events.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves one of ownerID's orders by id.
	Get(ctx context.Context, ownerID kernel.ID, id kernel.UUID) (*order.Order, error)

	// FindByOwnerAndCode retrieves ownerID's row for a package, locking it for
	// the rest of the transaction. When the owner holds several rows for the
	// code, the oldest is returned.
	FindByOwnerAndCode(ctx context.Context, ownerID kernel.ID, code kernel.PackageCode) (*order.Order, error)

	// FindAllByCode retrieves every owner's row for a package, ordered by
	// creation time then id, locking all of them. An unknown code yields an
	// empty slice.
	//
	// Example:
	//   rows, err := repo.FindAllByCode(ctx, code)
	//   if err != nil {
	//       return fmt.Errorf("failed to load package rows: %w", err)
	//   }
	//   for _, row := range rows {
	//       fmt.Printf("owner %s holds %s in status %d\n", row.OwnerID(), code, row.Status())
	//   }
	FindAllByCode(ctx context.Context, code kernel.PackageCode) ([]*order.Order, error)

	// FindByOwnerClientAndCode looks for an existing order with the same
	// creation key. It returns (nil, nil) when there is none.
	FindByOwnerClientAndCode(
		ctx context.Context,
		ownerID kernel.ID,
		clientID kernel.ID,
		code kernel.PackageCode,
	) (*order.Order, error)

	// ListByOwner retrieves ownerID's orders, newest first.
	ListByOwner(ctx context.Context, ownerID kernel.ID) ([]*order.Order, error)
}
