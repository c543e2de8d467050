package commands_test

import (
	"context"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/domain/model/kernel"
	"deliverytime/internal/core/domain/model/order"
	"deliverytime/internal/core/domain/model/rule"
	"deliverytime/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRuleRepository struct{ mock.Mock }

func (m *MockRuleRepository) Add(ctx context.Context, r *rule.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRuleRepository) Update(ctx context.Context, r *rule.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRuleRepository) Get(ctx context.Context, id kernel.UUID) (*rule.Rule, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*rule.Rule)
	return r, args.Error(1)
}

func (m *MockRuleRepository) GetByName(ctx context.Context, name string) (*rule.Rule, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*rule.Rule)
	return r, args.Error(1)
}

func (m *MockRuleRepository) ListActiveByPriority(ctx context.Context) ([]*rule.Rule, error) {
	args := m.Called(ctx)
	rules, _ := args.Get(0).([]*rule.Rule)
	return rules, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllInCreatedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

// MockUoW satisfies RuleUoW, OrderUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) RuleRepository() ports.RuleRepository {
	return m.Called().Get(0).(ports.RuleRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type ruleUoWFactory struct{ uow *MockUoW }

func (f ruleUoWFactory) Create() commands.RuleUoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }
