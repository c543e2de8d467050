package http

import (
	"net/http"

	"deliverytime/internal/core/application/usecases/queries"
	"deliverytime/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// EstimateDeliveryTime handles POST /api/v1/delivery-time-rules/estimate. The body is
// optional; without orderTime the current local time is used. "No rule" outcomes are
// answered with 200 and success=false.
func (s *Server) EstimateDeliveryTime(ctx echo.Context) error {
	var request servers.EstimateRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&request); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	query, err := queries.NewEstimateDeliveryTimeQuery(deref(request.OrderTime), s.currentInstant())
	if err != nil {
		return s.respondError(ctx, err)
	}

	estimate, err := s.handlers.Estimate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toEstimate(estimate))
}
