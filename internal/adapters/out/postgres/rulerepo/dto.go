// Package rulerepo persists delivery rule aggregates in PostgreSQL through GORM.
// Times of day are stored as normalized "HH:mm" text, so text order equals clock order.
package rulerepo

import (
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"

	"github.com/google/uuid"
)

// RuleDTO is the database shape of a rule. The (active, priority) index serves the
// estimation read path; the unique name index backs duplicate detection.
type RuleDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_delivery_rules_name"`
	StartTime          string     `gorm:"type:varchar(5);not null"`
	EndTime            string     `gorm:"type:varchar(5);not null"`
	DeliveryDateMode   string     `gorm:"type:varchar(16);not null"`
	CustomDeliveryDate *time.Time `gorm:"type:date"`
	DeliveryTime       string     `gorm:"type:varchar(5);not null"`
	Priority           int        `gorm:"not null;index:idx_delivery_rules_active_priority,priority:2"`
	Active             bool       `gorm:"not null;index:idx_delivery_rules_active_priority,priority:1"`
	Description        string     `gorm:"type:text;not null"`
	CreatedAt          time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          time.Time  `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for rule entities.
func (RuleDTO) TableName() string {
	return "delivery_rules"
}

func fromDomain(aggregate *rule.Rule) RuleDTO {
	var customDate *time.Time
	if date := aggregate.CustomDeliveryDate(); date != nil {
		at := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		customDate = &at
	}

	return RuleDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		StartTime:          aggregate.StartTime().String(),
		EndTime:            aggregate.EndTime().String(),
		DeliveryDateMode:   aggregate.DateMode().String(),
		CustomDeliveryDate: customDate,
		DeliveryTime:       aggregate.DeliveryTime().String(),
		Priority:           aggregate.Priority(),
		Active:             aggregate.IsActive(),
		Description:        aggregate.Description(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate through the same validation used for API input, so
// rows written by hand or by older versions cannot smuggle in an invalid rule.
func toDomain(dto RuleDTO) (*rule.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	raw := rule.RawDefinition{
		Name:             dto.Name,
		StartTime:        dto.StartTime,
		EndTime:          dto.EndTime,
		DeliveryDateMode: dto.DeliveryDateMode,
		DeliveryTime:     dto.DeliveryTime,
		Priority:         &dto.Priority,
		Active:           &dto.Active,
		Description:      dto.Description,
	}
	if dto.CustomDeliveryDate != nil {
		raw.CustomDeliveryDate = kernel.DateOf(dto.CustomDeliveryDate.UTC()).String()
	}

	def, err := rule.ParseDefinition(raw)
	if err != nil {
		return nil, err
	}

	return rule.RestoreRule(id, def, dto.CreatedAt, dto.UpdatedAt)
}
