package http

import (
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateOrderRequest struct {
	ClientID    int64  `json:"cliente_id"`
	PackageCode string `json:"codigo_pacote"`
	Service     string `json:"servico"`
	Street      string `json:"orders_rua"`
	CEP         string `json:"orders_cep"`
}

type AdvanceOrderRequest struct {
	PackageCode string  `json:"codigo_pacote"`
	ClientID    *int64  `json:"cliente_id"`
	UserID      *int64  `json:"user_id"`
	Service     *string `json:"servico"`
}

// PackageRequest carries only the package code: delivery registration and
// flow-driven advance.
type PackageRequest struct {
	PackageCode string `json:"codigo_pacote"`
}

type Order struct {
	ID          string    `json:"order_id"`
	OwnerID     int64     `json:"owner_id"`
	ClientID    *int64    `json:"cliente_id"`
	PackageCode string    `json:"codigo_pacote"`
	Service     string    `json:"servico"`
	Status      int       `json:"status"`
	Street      string    `json:"orders_rua"`
	CEP         string    `json:"orders_cep"`
	UserID      *int64    `json:"user_id"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

type Event struct {
	ID          string         `json:"event_id"`
	OrderID     string         `json:"order_id"`
	OwnerID     int64          `json:"owner_id"`
	Type        int            `json:"tipo"`
	ActorUserID *int64         `json:"actor_user_id"`
	Payload     map[string]any `json:"payload,omitempty"`
	OccurredAt  time.Time      `json:"data_hora"`
}

func orderFromDomain(o *order.Order) Order {
	return Order{
		ID:          o.ID().String(),
		OwnerID:     o.OwnerID().Int64(),
		ClientID:    idPtr(o.ClientID()),
		PackageCode: o.PackageCode().String(),
		Service:     o.Service(),
		Status:      o.Status().Int(),
		Street:      o.Address().Street(),
		CEP:         o.Address().CEP(),
		UserID:      idPtr(o.HandlerID()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func orderFromView(v queries.OrderView) Order {
	return Order{
		ID:          v.ID.String(),
		OwnerID:     v.OwnerID.Int64(),
		ClientID:    idPtr(v.ClientID),
		PackageCode: v.PackageCode,
		Service:     v.Service,
		Status:      v.Status.Int(),
		Street:      v.Street,
		CEP:         v.CEP,
		UserID:      idPtr(v.HandlerID),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func eventFromView(v queries.EventView) Event {
	return Event{
		ID:          v.ID.String(),
		OrderID:     v.OrderID.String(),
		OwnerID:     v.OwnerID.Int64(),
		Type:        v.Status,
		ActorUserID: idPtr(v.ActorUserID),
		Payload:     v.Payload,
		OccurredAt:  v.OccurredAt,
	}
}

func idPtr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
