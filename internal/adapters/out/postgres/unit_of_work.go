// Package postgres provides the GORM-based unit of work of the tracking core.
// A unit of work wraps one database transaction; the repositories it hands
// out share that transaction, so a fan-out across every row of a package and
// the matching history entries commit or roll back together.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db, observer).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	rows, err := uow.OrderRepository().FindAllByCode(ctx, code)
//	// mutate rows, Update each one
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is single-use per goroutine; create one per command.
package postgres

import (
	"context"

	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/partyrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// CommitObserver is told about the events of a unit of work once its
// transaction has committed.
type CommitObserver interface {
	EventsCommitted(ctx context.Context, events []order.Event)
}

// trackedAggregate represents an aggregate written during the unit of work
// together with the events drained from it.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
	Events    []order.Event
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory; observer may be nil.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, metrics.New(registry))
func NewGormUnitOfWorkFactory(db *gorm.DB, observer CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and, on success, hands every drained event
// to the observer.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	if uow.observer != nil {
		if events := uow.committedEvents(); len(events) > 0 {
			uow.observer.EventsCommitted(ctx, events)
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. Handlers defer it unconditionally, so
// after Commit it only reports gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns a repository bound to the current transaction, or to
// the connection pool when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DirectoryRepository() ports.DirectoryRepository {
	return partyrepo.NewGormDirectoryRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any, events []order.Event) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
		Events:    events,
	})
}

// TrackedAggregates returns the ids of the aggregates written since Begin.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) committedEvents() []order.Event {
	var events []order.Event
	for _, t := range uow.trackedAggregates {
		events = append(events, t.Events...)
	}
	return events
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
