// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The rule reference is a plain column without a foreign key: deleting a rule leaves
// the delivery times it produced untouched.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PlacedAt     time.Time  `gorm:"not null;index"`
	Status       int        `gorm:"not null;index"`
	DeliveryTime *time.Time `gorm:"type:timestamptz"`
	RuleID       *uuid.UUID `gorm:"type:uuid;index"`
	Overridden   bool       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var ruleID *uuid.UUID
	if id := aggregate.Rule(); id != nil {
		raw := id.Bytes()
		ruleID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		PlacedAt:     aggregate.PlacedAt(),
		Status:       int(aggregate.Status()),
		DeliveryTime: aggregate.DeliveryTime(),
		RuleID:       ruleID,
		Overridden:   aggregate.IsOverridden(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var ruleID *kernel.UUID
	if dto.RuleID != nil {
		rID, ruleErr := kernel.UUIDFromBytes((*dto.RuleID)[:])
		if ruleErr != nil {
			return nil, ruleErr
		}

		ruleID = &rID
	}

	return order.RestoreOrder(id, dto.PlacedAt, order.Status(dto.Status), dto.DeliveryTime, ruleID, dto.Overridden)
}
