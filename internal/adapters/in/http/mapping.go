package http

import (
	"time"

	"deliverytime/internal/core/application/usecases/queries"
	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toRawDefinition(input servers.RuleInput) rule.RawDefinition {
	return rule.RawDefinition{
		Name:               deref(input.Name),
		StartTime:          deref(input.StartTime),
		EndTime:            deref(input.EndTime),
		DeliveryDateMode:   deref(input.DeliveryDate),
		DeliveryTime:       deref(input.DeliveryTime),
		CustomDeliveryDate: deref(input.CustomDeliveryDate),
		Priority:           input.Priority,
		Active:             input.IsActive,
		Description:        deref(input.Description),
	}
}

func (s *Server) toRule(r queries.RuleResponse) servers.Rule {
	response := servers.Rule{
		Id:           r.ID.Bytes(),
		Name:         r.Name,
		StartTime:    r.StartTime.String(),
		EndTime:      r.EndTime.String(),
		DeliveryDate: servers.RuleDeliveryDate(r.DeliveryDateMode.String()),
		DeliveryTime: r.DeliveryTime.String(),
		Priority:     r.Priority,
		IsActive:     r.Active,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt.In(s.location),
		UpdatedAt:    r.UpdatedAt.In(s.location),
	}
	if r.CustomDeliveryDate != nil {
		response.CustomDeliveryDate = toOpenAPIDate(*r.CustomDeliveryDate)
	}
	return response
}

func (s *Server) toEstimate(e queries.EstimateDeliveryTimeQueryResponse) servers.Estimate {
	response := servers.Estimate{
		Outcome:   servers.EstimateOutcome(e.Outcome.String()),
		Success:   e.Outcome == queries.Matched,
		Message:   e.Message,
		OrderTime: e.OrderTime.String(),
	}
	if e.Outcome != queries.Matched {
		return response
	}

	deliveryDate := e.DeliveryTimestamp.In(s.location)
	epochMillis := deliveryDate.UnixMilli()
	deliveryTime := e.DeliveryTime.String()
	dateType := servers.EstimateDeliveryDateType(e.DeliveryDateMode.String())

	response.Rule = &servers.RuleSummary{
		Id:          e.RuleID.Bytes(),
		Name:        e.RuleName,
		Description: e.RuleDescription,
	}
	response.DeliveryDate = &deliveryDate
	response.EstimatedDeliveryTime = &epochMillis
	response.DeliveryTime = &deliveryTime
	response.DeliveryDateType = &dateType
	return response
}

func toOpenAPIDate(d kernel.Date) *openapi_types.Date {
	return &openapi_types.Date{Time: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
