package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all delivery rules in evaluation order
	// (GET /api/v1/delivery-time-rules)
	ListRules(ctx echo.Context) error
	// Create a delivery rule
	// (POST /api/v1/delivery-time-rules)
	CreateRule(ctx echo.Context) error
	// Estimate the delivery time for an order time
	// (POST /api/v1/delivery-time-rules/estimate)
	EstimateDeliveryTime(ctx echo.Context) error
	// Delete a delivery rule
	// (DELETE /api/v1/delivery-time-rules/{ruleId})
	DeleteRule(ctx echo.Context, ruleId openapi_types.UUID) error
	// Get a delivery rule
	// (GET /api/v1/delivery-time-rules/{ruleId})
	GetRule(ctx echo.Context, ruleId openapi_types.UUID) error
	// Replace a delivery rule
	// (PUT /api/v1/delivery-time-rules/{ruleId})
	UpdateRule(ctx echo.Context, ruleId openapi_types.UUID) error
	// Register an order waiting for a delivery estimate
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// List orders still waiting for a delivery timestamp
	// (GET /api/v1/orders/unscheduled)
	GetUnscheduledOrders(ctx echo.Context) error
	// Set an order's delivery time manually
	// (PUT /api/v1/orders/{orderId}/delivery-time)
	SetOrderDeliveryTime(ctx echo.Context, orderId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListRules converts echo context to params.
func (w *ServerInterfaceWrapper) ListRules(ctx echo.Context) error {
	var err error

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.ListRules(ctx)
	return err
}

// CreateRule converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRule(ctx echo.Context) error {
	var err error

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.CreateRule(ctx)
	return err
}

// EstimateDeliveryTime converts echo context to params.
func (w *ServerInterfaceWrapper) EstimateDeliveryTime(ctx echo.Context) error {
	var err error

	err = w.Handler.EstimateDeliveryTime(ctx)
	return err
}

// DeleteRule converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteRule(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "ruleId" -------------
	var ruleId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "ruleId", ctx.Param("ruleId"), &ruleId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter ruleId: %s", err))
	}

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.DeleteRule(ctx, ruleId)
	return err
}

// GetRule converts echo context to params.
func (w *ServerInterfaceWrapper) GetRule(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "ruleId" -------------
	var ruleId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "ruleId", ctx.Param("ruleId"), &ruleId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter ruleId: %s", err))
	}

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.GetRule(ctx, ruleId)
	return err
}

// UpdateRule converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateRule(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "ruleId" -------------
	var ruleId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "ruleId", ctx.Param("ruleId"), &ruleId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter ruleId: %s", err))
	}

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.UpdateRule(ctx, ruleId)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetUnscheduledOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetUnscheduledOrders(ctx echo.Context) error {
	var err error

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.GetUnscheduledOrders(ctx)
	return err
}

// SetOrderDeliveryTime converts echo context to params.
func (w *ServerInterfaceWrapper) SetOrderDeliveryTime(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(AdminKeyScopes, []string{})

	err = w.Handler.SetOrderDeliveryTime(ctx, orderId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/delivery-time-rules", wrapper.ListRules)
	router.POST(baseURL+"/api/v1/delivery-time-rules", wrapper.CreateRule)
	router.POST(baseURL+"/api/v1/delivery-time-rules/estimate", wrapper.EstimateDeliveryTime)
	router.DELETE(baseURL+"/api/v1/delivery-time-rules/:ruleId", wrapper.DeleteRule)
	router.GET(baseURL+"/api/v1/delivery-time-rules/:ruleId", wrapper.GetRule)
	router.PUT(baseURL+"/api/v1/delivery-time-rules/:ruleId", wrapper.UpdateRule)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/unscheduled", wrapper.GetUnscheduledOrders)
	router.PUT(baseURL+"/api/v1/orders/:orderId/delivery-time", wrapper.SetOrderDeliveryTime)
}

//go:embed openapi.yml
var swaggerSpec []byte

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return swaggerSpec
}

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. External references are not resolved.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
