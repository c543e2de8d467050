package http

import (
	"context"
	"log/slog"
	"time"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/application/usecases/queries"
	"deliverytime/internal/generated/servers"
)

type (
	estimateHandler interface {
		Handle(ctx context.Context, query queries.EstimateDeliveryTimeQuery) (queries.EstimateDeliveryTimeQueryResponse, error)
	}
	allRulesHandler interface {
		Handle(ctx context.Context, query queries.GetAllRulesQuery) ([]queries.RuleResponse, error)
	}
	ruleHandler interface {
		Handle(ctx context.Context, query queries.GetRuleQuery) (queries.RuleResponse, error)
	}
	unscheduledOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUnscheduledOrdersQuery) ([]queries.GetUnscheduledOrdersQueryResponse, error)
	}
	createRuleHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRuleCommand) error
	}
	updateRuleHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRuleCommand) error
	}
	deleteRuleHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteRuleCommand) error
	}
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	setDeliveryTimeHandler interface {
		Handle(ctx context.Context, cmd commands.SetOrderDeliveryTimeCommand) (time.Time, error)
	}
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	Estimate          estimateHandler
	GetAllRules       allRulesHandler
	GetRule           ruleHandler
	UnscheduledOrders unscheduledOrdersHandler
	CreateRule        createRuleHandler
	UpdateRule        updateRuleHandler
	DeleteRule        deleteRuleHandler
	CreateOrder       createOrderHandler
	SetDeliveryTime   setDeliveryTimeHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces time.Now, which supplies estimate evaluation instants and
// rule/order timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates the HTTP server. Timestamps are rendered in location; nil means time.Local.
func NewServer(handlers Handlers, location *time.Location, logger *slog.Logger, opts ...Option) *Server {
	if location == nil {
		location = time.Local
	}

	s := &Server{
		handlers: handlers,
		location: location,
		now:      time.Now,
		logger:   logger.With("component", "http_server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) currentInstant() time.Time {
	return s.now().In(s.location)
}
