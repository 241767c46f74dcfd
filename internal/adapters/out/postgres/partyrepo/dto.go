// Package partyrepo reads users, clients and owners from the tables maintained
// by the account subsystem.
package partyrepo

import (
	"strings"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
)

// UserDTO maps the columns of users the tracking core reads.
type UserDTO struct {
	ID      int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	OwnerID int64  `gorm:"column:owner_id;not null;index"`
	Type    string `gorm:"column:tipo;type:text"`
}

func (UserDTO) TableName() string {
	return "users"
}

// ClientDTO maps the columns of cliente the tracking core reads.
type ClientDTO struct {
	ID      int64  `gorm:"column:id_cliente;primaryKey;autoIncrement"`
	OwnerID int64  `gorm:"column:owner_id;not null;index"`
	Type    string `gorm:"column:tipo_cliente;type:text"`
}

func (ClientDTO) TableName() string {
	return "cliente"
}

// OwnerDTO maps the columns of owner the tracking core reads.
type OwnerDTO struct {
	ID   int64   `gorm:"column:id_owner;primaryKey;autoIncrement"`
	Slug *string `gorm:"column:slug;type:text"`
}

func (OwnerDTO) TableName() string {
	return "owner"
}

// userToDomain keeps a blank or unknown tipo; such a user is just not a driver.
func userToDomain(dto UserDTO) (*party.User, error) {
	role := actor.Role(strings.ToUpper(strings.TrimSpace(dto.Type)))
	return party.RestoreUser(kernel.ID(dto.ID), kernel.ID(dto.OwnerID), role)
}

func clientToDomain(dto ClientDTO) (*party.Client, error) {
	return party.RestoreClient(kernel.ID(dto.ID), kernel.ID(dto.OwnerID), party.NormalizeClientType(dto.Type))
}

func ownerToDomain(dto OwnerDTO) (*party.Owner, error) {
	return party.RestoreOwner(kernel.ID(dto.ID), dto.Slug)
}
