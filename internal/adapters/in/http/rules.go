package http

import (
	"net/http"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/application/usecases/queries"
	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListRules handles GET /api/v1/delivery-time-rules.
func (s *Server) ListRules(ctx echo.Context) error {
	rules, err := s.handlers.GetAllRules.Handle(ctx.Request().Context(), queries.NewGetAllRulesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Rule, len(rules))
	for i, r := range rules {
		response[i] = s.toRule(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRule handles POST /api/v1/delivery-time-rules.
func (s *Server) CreateRule(ctx echo.Context) error {
	var input servers.CreateRuleJSONRequestBody
	if err := ctx.Bind(&input); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ruleID := kernel.NewUUID()
	cmd, err := commands.NewCreateRuleCommand(ruleID, toRawDefinition(input), s.currentInstant())
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.writeRule(ctx, http.StatusCreated, ruleID)
}

// GetRule handles GET /api/v1/delivery-time-rules/{ruleId}.
func (s *Server) GetRule(ctx echo.Context, ruleId openapi_types.UUID) error {
	ruleID, err := kernel.UUIDFromBytes(ruleId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.writeRule(ctx, http.StatusOK, ruleID)
}

// UpdateRule handles PUT /api/v1/delivery-time-rules/{ruleId}. The body replaces the
// whole definition.
func (s *Server) UpdateRule(ctx echo.Context, ruleId openapi_types.UUID) error {
	var input servers.UpdateRuleJSONRequestBody
	if err := ctx.Bind(&input); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ruleID, err := kernel.UUIDFromBytes(ruleId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRuleCommand(ruleID, toRawDefinition(input), s.currentInstant())
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.writeRule(ctx, http.StatusOK, ruleID)
}

// DeleteRule handles DELETE /api/v1/delivery-time-rules/{ruleId}.
func (s *Server) DeleteRule(ctx echo.Context, ruleId openapi_types.UUID) error {
	ruleID, err := kernel.UUIDFromBytes(ruleId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteRuleCommand(ruleID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) writeRule(ctx echo.Context, status int, ruleID kernel.UUID) error {
	query, err := queries.NewGetRuleQuery(ruleID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	r, err := s.handlers.GetRule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(status, s.toRule(r))
}
