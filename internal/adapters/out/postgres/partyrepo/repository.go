package partyrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements ports.DirectoryRepository using GORM.
// Every lookup is scoped by owner.
type GormDirectoryRepository struct {
	db *gorm.DB
}

func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

func (r *GormDirectoryRepository) GetUser(ctx context.Context, ownerID kernel.ID, userID kernel.ID) (*party.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND owner_id = ?", userID.Int64(), ownerID.Int64()).
		First(&dto).Error
	if err != nil {
		return nil, notFound(err, "user", userID)
	}

	return userToDomain(dto)
}

func (r *GormDirectoryRepository) GetClient(ctx context.Context, ownerID kernel.ID, clientID kernel.ID) (*party.Client, error) {
	var dto ClientDTO
	err := r.db.WithContext(ctx).
		Where("id_cliente = ? AND owner_id = ?", clientID.Int64(), ownerID.Int64()).
		First(&dto).Error
	if err != nil {
		return nil, notFound(err, "client", clientID)
	}

	return clientToDomain(dto)
}

func (r *GormDirectoryRepository) GetOwner(ctx context.Context, ownerID kernel.ID) (*party.Owner, error) {
	var dto OwnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id_owner = ?", ownerID.Int64()).Error; err != nil {
		return nil, notFound(err, "owner", ownerID)
	}

	return ownerToDomain(dto)
}

func notFound(err error, param string, id kernel.ID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}
