package queries

import (
	"context"

	"tracking/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle returns a count for every known status, zero included.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status int16
		Total  int64
	}
	if err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS total
		FROM orders
		GROUP BY status
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}
	for _, r := range rows {
		counts[order.Status(r.Status)] = r.Total
	}

	return counts, nil
}
