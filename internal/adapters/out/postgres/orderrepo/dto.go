// Package orderrepo persists order aggregates and their event history with GORM.
package orderrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO is a row of the orders table. Column names follow the schema
// shared with the account subsystem.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"column:order_id;type:uuid;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;not null;uniqueIndex:ux_orders_owner_client_code,priority:1;index:ix_orders_owner_code,priority:1"`
	ClientID    *int64    `gorm:"column:cliente_id;uniqueIndex:ux_orders_owner_client_code,priority:2"`
	PackageCode string    `gorm:"column:codigo_pacote;type:text;not null;uniqueIndex:ux_orders_owner_client_code,priority:3;index:ix_orders_owner_code,priority:2;index:ix_orders_code"`
	Service     string    `gorm:"column:servico;type:text;not null"`
	Status      int16     `gorm:"column:status;type:smallint;not null;default:0;index"`
	Street      *string   `gorm:"column:orders_rua;type:text"`
	CEP         *string   `gorm:"column:orders_cep;type:text"`
	HandlerID   *int64    `gorm:"column:user_id"`
	Created     time.Time `gorm:"column:criado_em;type:timestamptz;not null"`
	Updated     time.Time `gorm:"column:atualizado_em;type:timestamptz;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// EventDTO is a row of the append-only order_events table.
type EventDTO struct {
	ID          uuid.UUID         `gorm:"column:event_id;type:uuid;primaryKey"`
	OrderID     uuid.UUID         `gorm:"column:order_id;type:uuid;not null;index"`
	Type        int16             `gorm:"column:tipo;type:smallint;not null"`
	ActorUserID *int64            `gorm:"column:actor_user_id"`
	Payload     datatypes.JSONMap `gorm:"column:payload;type:jsonb"`
	OccurredAt  time.Time         `gorm:"column:data_hora;type:timestamptz;not null"`
	OwnerID     int64             `gorm:"column:owner_id;not null;index"`
}

func (EventDTO) TableName() string {
	return "order_events"
}

func fromDomain(o *order.Order) OrderDTO {
	street := o.Address().Street()
	cep := o.Address().CEP()

	return OrderDTO{
		ID:          o.ID().Bytes(),
		OwnerID:     o.OwnerID().Int64(),
		ClientID:    int64Ptr(o.ClientID()),
		PackageCode: o.PackageCode().String(),
		Service:     o.Service(),
		Status:      int16(o.Status()),
		Street:      &street,
		CEP:         &cep,
		HandlerID:   int64Ptr(o.HandlerID()),
		Created:     o.CreatedAt(),
		Updated:     o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewPackageCode(dto.PackageCode)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.IDFromPtr(dto.ClientID)
	if err != nil {
		return nil, err
	}

	handlerID, err := kernel.IDFromPtr(dto.HandlerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		OwnerID:     kernel.ID(dto.OwnerID),
		ClientID:    clientID,
		PackageCode: code,
		Service:     dto.Service,
		Address:     kernel.RestoreAddress(deref(dto.Street), deref(dto.CEP)),
		Status:      order.Status(dto.Status),
		HandlerID:   handlerID,
		CreatedAt:   dto.Created,
		UpdatedAt:   dto.Updated,
	})
}

func eventFromDomain(e order.Event) EventDTO {
	var payload datatypes.JSONMap
	if p := e.Payload(); len(p) > 0 {
		payload = datatypes.JSONMap(p)
	}

	return EventDTO{
		ID:          e.ID().Bytes(),
		OrderID:     e.OrderID().Bytes(),
		Type:        int16(e.Type()),
		ActorUserID: int64Ptr(e.ActorUserID()),
		Payload:     payload,
		OccurredAt:  e.OccurredAt(),
		OwnerID:     e.OwnerID().Int64(),
	}
}

// EventToDomain converts a history row back into a domain event.
func EventToDomain(dto EventDTO) (order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Event{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Event{}, err
	}
	actorID, err := kernel.IDFromPtr(dto.ActorUserID)
	if err != nil {
		return order.Event{}, err
	}

	var payload map[string]any
	if len(dto.Payload) > 0 {
		payload = map[string]any(dto.Payload)
	}

	return order.RestoreEvent(id, orderID, kernel.ID(dto.OwnerID), order.Status(dto.Type), actorID, payload, dto.OccurredAt)
}

func int64Ptr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
