package http_test

import (
	"context"
	"time"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockEstimateHandler struct{ mock.Mock }

func (m *MockEstimateHandler) Handle(
	ctx context.Context,
	query queries.EstimateDeliveryTimeQuery,
) (queries.EstimateDeliveryTimeQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.EstimateDeliveryTimeQueryResponse), args.Error(1)
}

type MockAllRulesHandler struct{ mock.Mock }

func (m *MockAllRulesHandler) Handle(ctx context.Context, query queries.GetAllRulesQuery) ([]queries.RuleResponse, error) {
	args := m.Called(ctx, query)
	rules, _ := args.Get(0).([]queries.RuleResponse)
	return rules, args.Error(1)
}

type MockRuleHandler struct{ mock.Mock }

func (m *MockRuleHandler) Handle(ctx context.Context, query queries.GetRuleQuery) (queries.RuleResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.RuleResponse), args.Error(1)
}

type MockUnscheduledOrdersHandler struct{ mock.Mock }

func (m *MockUnscheduledOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetUnscheduledOrdersQuery,
) ([]queries.GetUnscheduledOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.GetUnscheduledOrdersQueryResponse)
	return orders, args.Error(1)
}

type MockCreateRuleHandler struct{ mock.Mock }

func (m *MockCreateRuleHandler) Handle(ctx context.Context, cmd commands.CreateRuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateRuleHandler struct{ mock.Mock }

func (m *MockUpdateRuleHandler) Handle(ctx context.Context, cmd commands.UpdateRuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteRuleHandler struct{ mock.Mock }

func (m *MockDeleteRuleHandler) Handle(ctx context.Context, cmd commands.DeleteRuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSetDeliveryTimeHandler struct{ mock.Mock }

func (m *MockSetDeliveryTimeHandler) Handle(ctx context.Context, cmd commands.SetOrderDeliveryTimeCommand) (time.Time, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(time.Time), args.Error(1)
}
