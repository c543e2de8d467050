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

// CreateOrder handles POST /api/v1/orders. Missing orderId and placedAt default to a
// fresh id and the current time.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var input servers.CreateOrderJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&input); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	orderID := kernel.NewUUID()
	if input.OrderId != nil {
		parsed, err := kernel.UUIDFromBytes(input.OrderId[:])
		if err != nil {
			return s.respondError(ctx, err)
		}
		orderID = parsed
	}

	placedAt := s.currentInstant()
	if input.PlacedAt != nil {
		placedAt = *input.PlacedAt
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, placedAt)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderRef{OrderId: orderID.Bytes()})
}

// GetUnscheduledOrders handles GET /api/v1/orders/unscheduled.
func (s *Server) GetUnscheduledOrders(ctx echo.Context) error {
	orders, err := s.handlers.UnscheduledOrders.Handle(ctx.Request().Context(), queries.NewGetUnscheduledOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.UnscheduledOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.UnscheduledOrder{
			OrderId:  o.ID.Bytes(),
			PlacedAt: o.PlacedAt.In(s.location),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetOrderDeliveryTime handles PUT /api/v1/orders/{orderId}/delivery-time.
func (s *Server) SetOrderDeliveryTime(ctx echo.Context, orderId openapi_types.UUID) error {
	var input servers.SetOrderDeliveryTimeJSONRequestBody
	if err := ctx.Bind(&input); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSetOrderDeliveryTimeCommand(orderID, deref(input.DeliveryDate), deref(input.DeliveryTime))
	if err != nil {
		return s.respondError(ctx, err)
	}

	deliveryTimestamp, err := s.handlers.SetDeliveryTime.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderDeliveryTime{
		OrderId:               orderID.Bytes(),
		EstimatedDeliveryTime: deliveryTimestamp.UnixMilli(),
		DeliveryDate:          deliveryTimestamp.In(s.location),
	})
}
