package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives the aggregates and drained events written through the repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any, events []order.Event)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its pending events.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", order.ErrDuplicateOrder, aggregate.PackageCode())
		}
		return err
	}

	return r.appendEvents(ctx, aggregate)
}

// Update writes every column except the identity and creation fields, then
// appends the pending events.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", dto.ID).
		Select("*").
		Omit("order_id", "owner_id", "criado_em").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return r.appendEvents(ctx, aggregate)
}

func (r *GormOrderRepository) Get(ctx context.Context, ownerID kernel.ID, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND order_id = ?", ownerID.Int64(), id.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) FindByOwnerAndCode(
	ctx context.Context,
	ownerID kernel.ID,
	code kernel.PackageCode,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("owner_id = ? AND codigo_pacote = ?", ownerID.Int64(), code.String()).
		Order("criado_em, order_id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause(
				"package code", code,
				fmt.Errorf("owner %s has no order for this package", ownerID),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) FindAllByCode(ctx context.Context, code kernel.PackageCode) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("codigo_pacote = ?", code.String()).
		Order("criado_em, order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) FindByOwnerClientAndCode(
	ctx context.Context,
	ownerID kernel.ID,
	clientID kernel.ID,
	code kernel.PackageCode,
) (*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND cliente_id = ? AND codigo_pacote = ?", ownerID.Int64(), clientID.Int64(), code.String()).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}

func (r *GormOrderRepository) ListByOwner(ctx context.Context, ownerID kernel.ID) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Int64()).
		Order("criado_em DESC, order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) appendEvents(ctx context.Context, aggregate *order.Order) error {
	events := aggregate.PullEvents()
	if len(events) > 0 {
		dtos := make([]EventDTO, 0, len(events))
		for _, e := range events {
			dtos = append(dtos, eventFromDomain(e))
		}
		if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, events)
	return nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
