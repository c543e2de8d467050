package ports

import (
	"context"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/order"
)

// OrderDeliveryTimeWriter is the narrow view of the order store needed to set a
// delivery timestamp on an existing order.
type OrderDeliveryTimeWriter interface {
	// Get retrieves an order by id or returns errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderDeliveryTimeWriter

	// Add persists a new order. The order must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetAllInCreatedStatus retrieves orders still waiting for a delivery timestamp,
	// oldest placement first.
	GetAllInCreatedStatus(ctx context.Context) ([]*order.Order, error)
}
