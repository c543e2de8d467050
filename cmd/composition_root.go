package cmd

import (
	"log/slog"
	"time"

	httpadapter "deliverytime/internal/adapters/in/http"
	"deliverytime/internal/adapters/in/seed"
	"deliverytime/internal/adapters/out/postgres"
	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/application/usecases/queries"
	"deliverytime/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	location   *time.Location
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, location *time.Location, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		location:   location,
		logger:     logger,
	}
}

func (c *CompositionRoot) ruleUoWFactory() commands.RuleUoWFactory {
	return FuncRuleUoWFactory(func() commands.RuleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRuleCommandHandler() commands.CreateRuleCommandHandler {
	return commands.NewCreateRuleCommandHandler(c.ruleUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRuleCommandHandler() commands.UpdateRuleCommandHandler {
	return commands.NewUpdateRuleCommandHandler(c.ruleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRuleCommandHandler() commands.DeleteRuleCommandHandler {
	return commands.NewDeleteRuleCommandHandler(c.ruleUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderDeliveryTimeCommandHandler() commands.SetOrderDeliveryTimeCommandHandler {
	return commands.NewSetOrderDeliveryTimeCommandHandler(c.orderUoWFactory(), c.location)
}

func (c *CompositionRoot) CreateScheduleOrderDeliveriesCommandHandler() commands.ScheduleOrderDeliveriesCommandHandler {
	return commands.NewScheduleOrderDeliveriesCommandHandler(c.uowFactoryForAll(), c.location)
}

func (c *CompositionRoot) CreateEstimateDeliveryTimeQueryHandler() queries.EstimateDeliveryTimeQueryHandler {
	return queries.NewEstimateDeliveryTimeQueryHandler(c.uowFactory.ActiveRuleSource())
}

func (c *CompositionRoot) CreateGetAllRulesQueryHandler() queries.GetAllRulesQueryHandler {
	return queries.NewGetAllRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRuleQueryHandler() queries.GetRuleQueryHandler {
	return queries.NewGetRuleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnscheduledOrdersQueryHandler() queries.GetUnscheduledOrdersQueryHandler {
	return queries.NewGetUnscheduledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		Estimate:          c.CreateEstimateDeliveryTimeQueryHandler(),
		GetAllRules:       c.CreateGetAllRulesQueryHandler(),
		GetRule:           c.CreateGetRuleQueryHandler(),
		UnscheduledOrders: c.CreateGetUnscheduledOrdersQueryHandler(),
		CreateRule:        c.CreateCreateRuleCommandHandler(),
		UpdateRule:        c.CreateUpdateRuleCommandHandler(),
		DeleteRule:        c.CreateDeleteRuleCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		SetDeliveryTime:   c.CreateSetOrderDeliveryTimeCommandHandler(),
	}, c.location, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateScheduleOrderDeliveriesCommandHandler(), c.config.OrderSchedulingCron, c.logger)
}

func (c *CompositionRoot) CreateRuleSeeder() *seed.Seeder {
	return seed.NewSeeder(c.CreateCreateRuleCommandHandler(), func() time.Time {
		return time.Now().In(c.location)
	}, c.logger)
}

type FuncRuleUoWFactory func() commands.RuleUoW

func (f FuncRuleUoWFactory) Create() commands.RuleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
