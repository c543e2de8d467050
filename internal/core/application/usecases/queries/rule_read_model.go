package queries

import (
	"database/sql"
	"time"

	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"

	"github.com/google/uuid"
)

// RuleResponse is the read model of a delivery rule shared by the rule queries.
// CustomDeliveryDate is nil unless DeliveryDateMode is rule.Custom.
type RuleResponse struct {
	ID                 kernel.UUID
	Name               string
	StartTime          kernel.TimeOfDay
	EndTime            kernel.TimeOfDay
	DeliveryDateMode   rule.DateMode
	CustomDeliveryDate *kernel.Date
	DeliveryTime       kernel.TimeOfDay
	Priority           int
	Active             bool
	Description        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const selectRuleColumns = `
	SELECT
		id,
		name,
		start_time,
		end_time,
		delivery_date_mode,
		custom_delivery_date,
		delivery_time,
		priority,
		active,
		description,
		created_at,
		updated_at
	FROM delivery_rules`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (RuleResponse, error) {
	var (
		id                               uuid.UUID
		startTime, endTime, deliveryTime string
		dateMode                         string
		customDate                       sql.NullTime
		response                         RuleResponse
	)

	err := row.Scan(
		&id,
		&response.Name,
		&startTime,
		&endTime,
		&dateMode,
		&customDate,
		&deliveryTime,
		&response.Priority,
		&response.Active,
		&response.Description,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return RuleResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RuleResponse{}, err
	}
	if response.StartTime, err = kernel.ParseTimeOfDay(startTime); err != nil {
		return RuleResponse{}, err
	}
	if response.EndTime, err = kernel.ParseTimeOfDay(endTime); err != nil {
		return RuleResponse{}, err
	}
	if response.DeliveryTime, err = kernel.ParseTimeOfDay(deliveryTime); err != nil {
		return RuleResponse{}, err
	}
	if response.DeliveryDateMode, err = rule.ParseDateMode(dateMode); err != nil {
		return RuleResponse{}, err
	}
	if customDate.Valid && response.DeliveryDateMode == rule.Custom {
		date := kernel.DateOf(customDate.Time.UTC())
		response.CustomDeliveryDate = &date
	}

	return response, nil
}
