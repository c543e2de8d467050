package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"deliverytime/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const estimatePath = "/api/v1/delivery-time-rules/estimate"

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	// AdminAPIKey protects rule management and order endpoints. Empty disables the check.
	AdminAPIKey string
}

// NewRouter builds the echo instance with its middleware chain, the API routes, /health
// and /swagger/*.
func NewRouter(server *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(accessLogConfig(logger)))
	e.Use(middleware.Recover())

	if cfg.AdminAPIKey != "" {
		e.Use(middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			Skipper: isPublicPath,
			Validator: func(key string, _ echo.Context) (bool, error) {
				return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.AdminAPIKey)) == 1, nil
			},
		}))
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIRequestValidator(swagger)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func isPublicPath(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == estimatePath || path == "/health" || strings.HasPrefix(path, "/swagger/")
}

func accessLogConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	accessLog := logger.With("component", "http_access")

	return middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			accessLog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
