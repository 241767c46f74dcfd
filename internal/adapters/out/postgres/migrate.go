package postgres

import (
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/partyrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables the tracking core reads and writes.
// In production the directory tables already exist and are left untouched
// apart from missing indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&partyrepo.OwnerDTO{},
		&partyrepo.UserDTO{},
		&partyrepo.ClientDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.EventDTO{},
	)
}
