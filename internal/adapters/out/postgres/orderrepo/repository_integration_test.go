package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/testpg"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any, events []order.Event) {
	m.Called(id, aggregate, events)
}

// OrderRepositoryIntegrationTestSuite verifies persistence of orders and
// their event history against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *testpg.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	base       time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := testpg.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.EventDTO{}))
	suite.base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("order_events", "orders"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsRowAndFirstEvent() {
	ctx := context.Background()
	o := suite.newOrder(1, 10, "BR1", 0)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", o.ID(), o, mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 && events[0].Type() == order.Intake
	})).Once()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Empty(o.PendingEvents())
	suite.assertCount("orders", 1)
	suite.assertCount("order_events", 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOwnerClientCode() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(1, 10, "BR1", 0)))

	err := suite.repository.Add(ctx, suite.newOrder(1, 10, "BR1", time.Minute))

	suite.Require().ErrorIs(err, order.ErrDuplicateOrder)
	suite.NoError(suite.repository.Add(ctx, suite.newOrder(1, 11, "BR1", 0)))
	suite.NoError(suite.repository.Add(ctx, suite.newOrder(2, 10, "BR1", 0)))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder(1, 10, "BR1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, 1, o.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(o.PackageCode(), got.PackageCode())
	suite.Equal("FLEX", got.Service())
	suite.Equal(o.Address().CEP(), got.Address().CEP())
	suite.Equal(o.Address().Street(), got.Address().Street())
	suite.Equal(kernel.ID(10), *got.ClientID())
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))
	suite.Empty(got.PendingEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_IsScopedByOwner() {
	ctx := context.Background()
	o := suite.newOrder(1, 10, "BR1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := suite.repository.Get(ctx, 2, o.ID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesStatusHandlerAndEvent() {
	ctx := context.Background()
	o := suite.newOrder(1, 10, "BR1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Triage(suite.actor(1, 7, actor.Operator), suite.base.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, 1, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Triaged, got.Status())
	suite.Equal(kernel.ID(7), *got.HandlerID())
	suite.True(got.UpdatedAt().Equal(suite.base.Add(time.Hour)))
	suite.True(got.CreatedAt().Equal(suite.base))
	suite.assertCount("order_events", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	o := suite.newOrder(1, 10, "BR1", 0)

	err := suite.repository.Update(context.Background(), o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount("order_events", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByOwnerAndCode_ReturnsOldest() {
	ctx := context.Background()
	later := suite.newOrder(1, 11, "BR1", time.Minute)
	oldest := suite.newOrder(1, 10, "BR1", 0)
	foreign := suite.newOrder(2, 10, "BR1", -time.Hour)
	for _, o := range []*order.Order{later, oldest, foreign} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	code, _ := kernel.NewPackageCode("BR1")
	err := suite.pg.DB.Transaction(func(tx *gorm.DB) error {
		got, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).FindByOwnerAndCode(ctx, 1, code)
		suite.Require().NoError(err)
		suite.True(got.IsEqual(oldest))
		return nil
	})
	suite.Require().NoError(err)

	_, err = suite.repository.FindByOwnerAndCode(ctx, 3, code)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAllByCode_AcrossOwnersInCreationOrder() {
	ctx := context.Background()
	second := suite.newOrder(2, 20, "BR1", time.Minute)
	first := suite.newOrder(1, 10, "BR1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(1, 10, "BR2", 0)))

	code, _ := kernel.NewPackageCode("BR1")
	rows, err := suite.repository.FindAllByCode(ctx, code)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].IsEqual(first))
	suite.True(rows[1].IsEqual(second))

	none, _ := kernel.NewPackageCode("NOPE")
	rows, err = suite.repository.FindAllByCode(ctx, none)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByOwnerClientAndCode() {
	ctx := context.Background()
	o := suite.newOrder(1, 10, "BR1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	code, _ := kernel.NewPackageCode("BR1")

	got, err := suite.repository.FindByOwnerClientAndCode(ctx, 1, 10, code)
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))

	got, err = suite.repository.FindByOwnerClientAndCode(ctx, 1, 11, code)
	suite.Require().NoError(err)
	suite.Nil(got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByOwner_NewestFirst() {
	ctx := context.Background()
	older := suite.newOrder(1, 10, "BR1", 0)
	newer := suite.newOrder(1, 10, "BR2", time.Minute)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(2, 10, "BR3", 0)))

	rows, err := suite.repository.ListByOwner(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].IsEqual(newer))
	suite.True(rows[1].IsEqual(older))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEvents_PayloadRoundTrip() {
	ctx := context.Background()
	foreign := suite.newOrder(2, 20, "BR1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	foreign.MarkPickedUp(nil, suite.actor(1, 7, actor.Operator), suite.base.Add(time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, foreign))

	var dtos []orderrepo.EventDTO
	suite.Require().NoError(suite.pg.DB.Where("order_id = ?", foreign.ID().String()).Order("data_hora").Find(&dtos).Error)
	suite.Require().Len(dtos, 2)

	e, err := orderrepo.EventToDomain(dtos[1])
	suite.Require().NoError(err)
	suite.Equal(order.DriverAssigned, e.Type())
	suite.Equal(kernel.ID(2), e.OwnerID())
	suite.Equal(kernel.ID(7), *e.ActorUserID())
	suite.EqualValues(1, e.Payload()[order.PayloadPropagatedFrom])
}

func (suite *OrderRepositoryIntegrationTestSuite) actor(ownerID, userID kernel.ID, role actor.Role) actor.Actor {
	a, err := actor.NewActor(ownerID, userID, role)
	suite.Require().NoError(err)
	return a
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(
	ownerID kernel.ID,
	clientID kernel.ID,
	pkg string,
	offset time.Duration,
) *order.Order {
	code, err := kernel.NewPackageCode(pkg)
	suite.Require().NoError(err)
	address := kernel.NewAddress("Rua Augusta, 100", "01305-000")

	o, err := order.NewIntakeOrder(suite.actor(ownerID, 7, actor.Operator), clientID, code, "FLEX", address, suite.base.Add(offset))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.pg.DB.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
