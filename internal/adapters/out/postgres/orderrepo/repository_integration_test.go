package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence
// behavior, the optimistic lock included.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithItems()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresAggregate() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithItems()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(testOrder.TotalAmount().Subunits(), retrieved.TotalAmount().Subunits())
	suite.Len(retrieved.Items(), 2)
	suite.Nil(retrieved.RiderID())
	suite.Equal(int64(1), retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsItemAndTotalChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithItems()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	items := loaded.Items()
	suite.Require().NoError(loaded.UpdateItemQuantity(items[0].ID(), 5))
	suite.Require().NoError(loaded.RemoveItem(items[1].ID()))

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(loaded.TotalAmount().Subunits(), reloaded.TotalAmount().Subunits())
	suite.Len(reloaded.Items(), 1)
	suite.Equal(5, reloaded.Items()[0].Quantity())
	suite.Equal(int64(2), reloaded.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionIsInvalidError() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithItems()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two writers load the same version.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	price, err := kernel.NewPositiveMoney(300)
	suite.Require().NoError(err)
	_, err = first.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, price)
	suite.Require().NoError(err)
	_, err = second.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, first))

	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	// The losing write must not have leaked any state.
	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(first.TotalAmount().Subunits(), reloaded.TotalAmount().Subunits())
	suite.Len(reloaded.Items(), 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrderWithItems())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_ReturnsOwningOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithItems()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[1].ID()

	owner, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	suite.True(owner.ID().IsEqual(testOrder.ID()))

	_, err = suite.repository.GetByItemID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstUnassigned_SkipsAssignedAndTerminalOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	assigned := suite.createTestOrderWithItems()
	suite.Require().NoError(assigned.AssignRider(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	cancelled := suite.createTestOrderWithItems()
	suite.Require().NoError(cancelled.ChangeStatus(order.Cancelled))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	pending := suite.createTestOrderWithItems()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	found, err := suite.repository.GetFirstUnassigned(ctx)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(pending.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstUnassigned_NoCandidates_ReturnsNotFoundError() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	assigned := suite.createTestOrderWithItems()
	suite.Require().NoError(assigned.AssignRider(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	found, err := suite.repository.GetFirstUnassigned(ctx)
	suite.Nil(found)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByRider_ReturnsOnlyActiveOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	riderID := kernel.NewUUID()

	active := suite.createTestOrderWithItems()
	suite.Require().NoError(active.AssignRider(riderID))
	suite.Require().NoError(suite.repository.Add(ctx, active))

	delivered := suite.createTestOrderWithItems()
	suite.Require().NoError(delivered.AssignRider(riderID))
	suite.Require().NoError(delivered.ChangeStatus(order.Delivered))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	other := suite.createTestOrderWithItems()
	suite.Require().NoError(other.AssignRider(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByRider(ctx, riderID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(active.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrderWithItems creates a Pending order carrying two line items
// (2 x 10.00 + 1 x 5.00 = 25.00).
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithItems() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	price1, err := kernel.NewPositiveMoney(1000)
	suite.Require().NoError(err)
	price2, err := kernel.NewPositiveMoney(500)
	suite.Require().NoError(err)

	_, err = testOrder.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, price1)
	suite.Require().NoError(err)
	_, err = testOrder.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, price2)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
