package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads an owner's orders.
//
// Example:
//
//	q, _ := NewListOrdersQuery(ownerID, nil)
//	views, err := NewListOrdersQueryHandler(db).Handle(ctx, q)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when the owner has no orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `SELECT` + orderViewColumns + `
		FROM orders
		WHERE owner_id = ?`
	args := []any{query.OwnerID().Int64()}
	if query.Status() != nil {
		sqlText += ` AND status = ?`
		args = append(args, query.Status().Int())
	}
	sqlText += ` ORDER BY criado_em DESC, order_id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
