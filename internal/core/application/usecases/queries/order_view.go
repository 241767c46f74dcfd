// Package queries contains read operations over orders and their events.
// Handlers read straight from the database with raw SQL and return flat read
// models; they never load aggregates nor take row locks.
package queries

import (
	"database/sql"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is the read model of one order row.
type OrderView struct {
	ID          kernel.UUID
	OwnerID     kernel.ID
	ClientID    *kernel.ID
	PackageCode string
	Service     string
	Street      string
	CEP         string
	Status      order.Status
	HandlerID   *kernel.ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const orderViewColumns = `
	order_id,
	owner_id,
	cliente_id,
	codigo_pacote,
	servico,
	COALESCE(orders_rua, ''),
	COALESCE(orders_cep, ''),
	status,
	user_id,
	criado_em,
	atualizado_em`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view     OrderView
		id       uuid.UUID
		ownerID  int64
		clientID sql.NullInt64
		status   int16
		handler  sql.NullInt64
	)

	if err := rows.Scan(
		&id,
		&ownerID,
		&clientID,
		&view.PackageCode,
		&view.Service,
		&view.Street,
		&view.CEP,
		&status,
		&handler,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	view.ID = orderID
	view.OwnerID = kernel.ID(ownerID)
	view.ClientID = nullID(clientID)
	view.Status = order.Status(status)
	view.HandlerID = nullID(handler)
	return view, nil
}

func nullID(v sql.NullInt64) *kernel.ID {
	if !v.Valid {
		return nil
	}
	return kernel.ID(v.Int64).Ptr()
}
