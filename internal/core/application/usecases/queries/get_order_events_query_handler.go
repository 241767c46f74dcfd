package queries

import (
	"context"
	"database/sql"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetOrderEventsQueryHandler returns events oldest first. An order of another
// owner is reported as not found, so its history never leaks.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

func (h GetOrderEventsQueryHandler) Handle(ctx context.Context, query GetOrderEventsQuery) ([]EventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var found int64
	if err := db.Raw(
		`SELECT COUNT(*) FROM orders WHERE order_id = ? AND owner_id = ?`,
		query.OrderID().String(), query.OwnerID().Int64(),
	).Scan(&found).Error; err != nil {
		return nil, err
	}
	if found == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			event_id,
			order_id,
			owner_id,
			tipo,
			actor_user_id,
			payload,
			data_hora
		FROM order_events
		WHERE order_id = ? AND owner_id = ?
		ORDER BY data_hora, event_id
	`, query.OrderID().String(), query.OwnerID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]EventView, 0)
	for rows.Next() {
		var (
			view    EventView
			eventID uuid.UUID
			orderID uuid.UUID
			ownerID int64
			typ     int16
			actorID sql.NullInt64
			payload datatypes.JSONMap
		)

		if err = rows.Scan(&eventID, &orderID, &ownerID, &typ, &actorID, &payload, &view.OccurredAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(eventID[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		view.OwnerID = kernel.ID(ownerID)
		view.Status = int(typ)
		view.ActorUserID = nullID(actorID)
		view.Payload = map[string]any(payload)
		events = append(events, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
