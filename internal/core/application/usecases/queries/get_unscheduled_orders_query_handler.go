package queries

import (
	"context"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnscheduledOrdersQueryHandler reads orders in Created status straight from the
// orders table, oldest first.
type GetUnscheduledOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUnscheduledOrdersQueryHandler(db *gorm.DB) GetUnscheduledOrdersQueryHandler {
	return GetUnscheduledOrdersQueryHandler{db: db}
}

func (h GetUnscheduledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnscheduledOrdersQuery,
) ([]GetUnscheduledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnscheduledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			placed_at
		FROM orders
		WHERE status = ?
		ORDER BY placed_at, id
	`, int(order.Created)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var placedAt time.Time

		if err = rows.Scan(&id, &placedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetUnscheduledOrdersQueryResponse{
			ID:       orderID,
			PlacedAt: placedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
