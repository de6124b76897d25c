package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderboard/internal/adapters/out/postgres/orderrepo"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	createdAt := time.Now().UTC().Truncate(time.Second)
	originalOrder := suite.createTestOrder(createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.Equal(originalOrder.OrderCode(), retrievedOrder.OrderCode())
	suite.Equal("walk-in", retrievedOrder.Customer())
	suite.Equal("walk-in", retrievedOrder.CustomerName())
	suite.Equal("dine-in", retrievedOrder.OrderType())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.InDelta(originalOrder.Total(), retrievedOrder.Total(), 0.001)
	suite.Nil(retrievedOrder.ProcessingTime())
	suite.Len(retrievedOrder.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConfirmPersistsProcessingTime() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC().Add(-90 * time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Confirm(time.Now().UTC()))
	err := suite.repository.Update(ctx, testOrder, order.Pending)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.ProcessingTime())
	suite.Equal(testOrder.ProcessingTime().String(), retrievedOrder.ProcessingTime().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StalePrecondition_ReturnsVersionError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First transition wins.
	suite.Require().NoError(testOrder.Confirm(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.Pending))

	// A second writer still holding the pending snapshot loses.
	staleOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(staleOrder.Serve(time.Now().UTC()))

	err = suite.repository.Update(ctx, staleOrder, order.Pending)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghostOrder := suite.createTestOrder(time.Now().UTC())

	err := suite.repository.Update(ctx, ghostOrder, order.Pending)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_OrderedByCreation() {
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	second := suite.createTestOrder(base.Add(10 * time.Minute))
	first := suite.createTestOrder(base)
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))

	confirmed := suite.createTestOrder(base)
	suite.Require().NoError(confirmed.Confirm(base.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))

	pending, err := suite.repository.GetAllInStatus(ctx, order.Pending)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 2)
	suite.True(first.ID().IsEqual(pending[0].ID()))
	suite.True(second.ID().IsEqual(pending[1].ID()))
	for _, o := range pending {
		suite.Len(o.Items(), 2)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)
	suite.assertItemCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteItem_RemovesSingleRow() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[0].ID()
	suite.Require().NoError(suite.repository.DeleteItem(ctx, testOrder.ID(), itemID))

	suite.assertItemCount(1)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(retrievedOrder.Items(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteItem_WrongOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.DeleteItem(ctx, kernel.NewUUID(), testOrder.Items()[0].ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertItemCount(2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteServedBefore_PurgesOnlyAgedServedOrders() {
	ctx := context.Background()

	now := time.Now().UTC()

	agedServed := suite.createTestOrder(now.Add(-48 * time.Hour))
	suite.Require().NoError(agedServed.Confirm(now.Add(-47 * time.Hour)))
	suite.Require().NoError(agedServed.Serve(now.Add(-46 * time.Hour)))
	suite.Require().NoError(suite.repository.Add(ctx, agedServed))

	freshServed := suite.createTestOrder(now.Add(-time.Hour))
	suite.Require().NoError(freshServed.Confirm(now.Add(-50 * time.Minute)))
	suite.Require().NoError(freshServed.Serve(now.Add(-10 * time.Minute)))
	suite.Require().NoError(suite.repository.Add(ctx, freshServed))

	agedPending := suite.createTestOrder(now.Add(-48 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, agedPending))

	purged, err := suite.repository.DeleteServedBefore(ctx, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	_, err = suite.repository.Get(ctx, agedServed.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, freshServed.ID())
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, agedPending.ID())
	suite.Require().NoError(err)
}

// createTestOrder creates a pending two-item order created at the given time.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(createdAt time.Time) *order.Order {
	rice, err := order.NewItem(kernel.NewUUID(), "Rice", 20, 2, nil)
	suite.Require().NoError(err)
	tea, err := order.NewItem(kernel.NewUUID(), "Tea", 5, 1, nil)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "walk-in", "", nil, "", "", []order.Item{rice, tea}, createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of item rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
