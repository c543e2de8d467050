// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	AdminKeyScopes = "adminKey.Scopes"
)

// Defines values for EstimateOutcome.
const (
	Matched           EstimateOutcome = "matched"
	NoMatchingRule    EstimateOutcome = "no_matching_rule"
	NoRulesConfigured EstimateOutcome = "no_rules_configured"
)

// Defines values for EstimateDeliveryDateType.
const (
	EstimateDeliveryDateTypeCustom   EstimateDeliveryDateType = "custom"
	EstimateDeliveryDateTypeToday    EstimateDeliveryDateType = "today"
	EstimateDeliveryDateTypeTomorrow EstimateDeliveryDateType = "tomorrow"
)

// Defines values for RuleDeliveryDate.
const (
	RuleDeliveryDateCustom   RuleDeliveryDate = "custom"
	RuleDeliveryDateToday    RuleDeliveryDate = "today"
	RuleDeliveryDateTomorrow RuleDeliveryDate = "tomorrow"
)

// DeliveryTimeOverride defines model for DeliveryTimeOverride.
type DeliveryTimeOverride struct {
	DeliveryDate *string `json:"deliveryDate,omitempty"`
	DeliveryTime *string `json:"deliveryTime,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Estimate defines model for Estimate.
type Estimate struct {
	DeliveryDate     *time.Time                `json:"deliveryDate,omitempty"`
	DeliveryDateType *EstimateDeliveryDateType `json:"deliveryDateType,omitempty"`
	DeliveryTime     *string                   `json:"deliveryTime,omitempty"`

	// EstimatedDeliveryTime Milliseconds since the Unix epoch.
	EstimatedDeliveryTime *int64          `json:"estimatedDeliveryTime,omitempty"`
	Message               string          `json:"message"`
	OrderTime             string          `json:"orderTime"`
	Outcome               EstimateOutcome `json:"outcome"`
	Rule                  *RuleSummary    `json:"rule,omitempty"`
	Success               bool            `json:"success"`
}

// EstimateOutcome defines model for Estimate.Outcome.
type EstimateOutcome string

// EstimateDeliveryDateType defines model for Estimate.DeliveryDateType.
type EstimateDeliveryDateType string

// EstimateRequest defines model for EstimateRequest.
type EstimateRequest struct {
	// OrderTime Order time as HH:mm. Defaults to the current local time.
	OrderTime *string `json:"orderTime,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	OrderId  *openapi_types.UUID `json:"orderId,omitempty"`
	PlacedAt *time.Time          `json:"placedAt,omitempty"`
}

// OrderDeliveryTime defines model for OrderDeliveryTime.
type OrderDeliveryTime struct {
	DeliveryDate          time.Time          `json:"deliveryDate"`
	EstimatedDeliveryTime int64              `json:"estimatedDeliveryTime"`
	OrderId               openapi_types.UUID `json:"orderId"`
}

// OrderRef defines model for OrderRef.
type OrderRef struct {
	OrderId openapi_types.UUID `json:"orderId"`
}

// Rule defines model for Rule.
type Rule struct {
	CreatedAt          time.Time           `json:"createdAt"`
	CustomDeliveryDate *openapi_types.Date `json:"customDeliveryDate,omitempty"`
	DeliveryDate       RuleDeliveryDate    `json:"deliveryDate"`
	DeliveryTime       string              `json:"deliveryTime"`
	Description        string              `json:"description"`
	EndTime            string              `json:"endTime"`
	Id                 openapi_types.UUID  `json:"id"`
	IsActive           bool                `json:"isActive"`
	Name               string              `json:"name"`
	Priority           int                 `json:"priority"`
	StartTime          string              `json:"startTime"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// RuleDeliveryDate defines model for Rule.DeliveryDate.
type RuleDeliveryDate string

// RuleInput defines model for RuleInput.
type RuleInput struct {
	CustomDeliveryDate *string `json:"customDeliveryDate,omitempty"`

	// DeliveryDate today, tomorrow or custom
	DeliveryDate *string `json:"deliveryDate,omitempty"`
	DeliveryTime *string `json:"deliveryTime,omitempty"`
	Description  *string `json:"description,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
	Name         *string `json:"name,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
}

// RuleSummary defines model for RuleSummary.
type RuleSummary struct {
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
}

// UnscheduledOrder defines model for UnscheduledOrder.
type UnscheduledOrder struct {
	OrderId  openapi_types.UUID `json:"orderId"`
	PlacedAt time.Time          `json:"placedAt"`
}

// BadRequest defines model for BadRequest.
type BadRequest = Error

// Conflict defines model for Conflict.
type Conflict = Error

// NotFound defines model for NotFound.
type NotFound = Error

// EstimateDeliveryTimeJSONRequestBody defines body for EstimateDeliveryTime for application/json ContentType.
type EstimateDeliveryTimeJSONRequestBody = EstimateRequest

// CreateRuleJSONRequestBody defines body for CreateRule for application/json ContentType.
type CreateRuleJSONRequestBody = RuleInput

// UpdateRuleJSONRequestBody defines body for UpdateRule for application/json ContentType.
type UpdateRuleJSONRequestBody = RuleInput

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// SetOrderDeliveryTimeJSONRequestBody defines body for SetOrderDeliveryTime for application/json ContentType.
type SetOrderDeliveryTimeJSONRequestBody = DeliveryTimeOverride
