package queries_test

import (
	"context"
	"time"

	"deliverytime/internal/adapters/out/postgres/orderrepo"
	"deliverytime/internal/adapters/out/postgres/rulerepo"
	"deliverytime/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// postgresSuite starts one PostgreSQL container per read-model suite and empties the
// tables before every test.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	ruleRepo  *rulerepo.GormRuleRepository
}

func (suite *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &rulerepo.RuleDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopAggregateTracker{})
	suite.ruleRepo = rulerepo.NewGormRuleRepository(db, noopAggregateTracker{})
}

func (suite *postgresSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *postgresSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, delivery_rules").Error)
}
