package parcel_test

import (
	"context"
	"testing"
	"time"

	"joyful-cargo/database"
	"joyful-cargo/errs"
	parcelModel "joyful-cargo/models/parcel"
	postponedModel "joyful-cargo/models/postponed"
	userModel "joyful-cargo/models/user"
	parcelService "joyful-cargo/services/parcel"
	parcelTypes "joyful-cargo/types/parcel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LifecycleIntegrationTestSuite exercises the parcel status state machine
// against a real PostgreSQL instance.
type LifecycleIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	service   *parcelService.Service
	actor     userModel.User
}

func (suite *LifecycleIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(database.AutoMigrate(db))
}

func (suite *LifecycleIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE postponed_orders, expenses, parcels, expense_categories, logs, users RESTART IDENTITY CASCADE",
	).Error)

	suite.service = parcelService.NewService(suite.db)
	suite.actor = suite.createTestUser()
}

func (suite *LifecycleIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LifecycleIntegrationTestSuite) createTestUser() userModel.User {
	user := userModel.User{
		Uuid:  uuid.NewString(),
		Name:  "Test Operator",
		Email: uuid.NewString() + "@example.com",
		Role:  userModel.RoleUser,
	}
	suite.Require().NoError(user.SetPassword("secret123"))
	suite.Require().NoError(suite.db.Create(&user).Error)
	return user
}

func (suite *LifecycleIntegrationTestSuite) createTestParcel(status parcelModel.Status, amount float64) *parcelModel.Parcel {
	created, err := suite.service.Create(parcelTypes.CreateRequest{
		CustomerName:   "Rahim Uddin",
		Phone:          "01712345678",
		Product:        "Ceramic dinner set",
		Destination:    "Chattogram",
		ExpectedAmount: &amount,
		Status:         status,
	}, suite.actor.ID)
	suite.Require().NoError(err)
	return created
}

func (suite *LifecycleIntegrationTestSuite) postponedOrderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&postponedModel.PostponedOrder{}).Count(&count).Error)
	return count
}

func (suite *LifecycleIntegrationTestSuite) TestCreate_DefaultsToPending() {
	created, err := suite.service.Create(parcelTypes.CreateRequest{
		CustomerName: "Rahim Uddin",
		Phone:        "01712345678",
		Product:      "Ceramic dinner set",
		Destination:  "Chattogram",
	}, suite.actor.ID)
	suite.Require().NoError(err)

	suite.Equal(parcelModel.StatusPending, created.Status)
	suite.Equal(float64(0), created.ExpectedAmount)
	suite.Equal(suite.actor.ID, created.UserID)
}

func (suite *LifecycleIntegrationTestSuite) TestCreate_MissingRequiredFields() {
	testCases := []struct {
		name string
		req  parcelTypes.CreateRequest
	}{
		{"missing customer name", parcelTypes.CreateRequest{Phone: "01712345678", Product: "TV", Destination: "Dhaka"}},
		{"missing phone", parcelTypes.CreateRequest{CustomerName: "Rahim", Product: "TV", Destination: "Dhaka"}},
		{"missing product", parcelTypes.CreateRequest{CustomerName: "Rahim", Phone: "01712345678", Destination: "Dhaka"}},
		{"missing destination", parcelTypes.CreateRequest{CustomerName: "Rahim", Phone: "01712345678", Product: "TV"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Create(tc.req, suite.actor.ID)
			suite.Require().ErrorIs(err, errs.ErrValidation)
		})
	}
}

func (suite *LifecycleIntegrationTestSuite) TestCreate_InvalidStatus() {
	_, err := suite.service.Create(parcelTypes.CreateRequest{
		CustomerName: "Rahim Uddin",
		Phone:        "01712345678",
		Product:      "Ceramic dinner set",
		Destination:  "Chattogram",
		Status:       "delivered",
	}, suite.actor.ID)
	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *LifecycleIntegrationTestSuite) TestCreate_PostponedStatus_DoesNotOpenOrder() {
	created := suite.createTestParcel(parcelModel.StatusPostponed, 1500)

	suite.Equal(parcelModel.StatusPostponed, created.Status)
	suite.Equal(int64(0), suite.postponedOrderCount())
}

func (suite *LifecycleIntegrationTestSuite) TestChangeStatus_Postponed_OpensOrderWithNotes() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	notes := "Customer travelling until next week"
	updated, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, &notes, suite.actor.ID)
	suite.Require().NoError(err)
	suite.Equal(parcelModel.StatusPostponed, updated.Status)

	var order postponedModel.PostponedOrder
	suite.Require().NoError(suite.db.Where("parcel_id = ?", created.ID).First(&order).Error)
	suite.False(order.IsResolved)
	suite.Require().NotNil(order.Notes)
	suite.Equal(notes, *order.Notes)
	suite.Nil(order.NewDeliveryDate)
}

func (suite *LifecycleIntegrationTestSuite) TestChangeStatus_Postponed_DefaultNotes() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)

	var order postponedModel.PostponedOrder
	suite.Require().NoError(suite.db.Where("parcel_id = ?", created.ID).First(&order).Error)
	suite.Require().NotNil(order.Notes)
	suite.Equal("Postponed manually", *order.Notes)
}

func (suite *LifecycleIntegrationTestSuite) TestChangeStatus_EmptyStatus() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, "", nil, suite.actor.ID)
	suite.Require().ErrorIs(err, errs.ErrValidation)

	reloaded, err := suite.service.Get(created.ID)
	suite.Require().NoError(err)
	suite.Equal(parcelModel.StatusPending, reloaded.Status)
}

func (suite *LifecycleIntegrationTestSuite) TestChangeStatus_AlreadyPostponed_NoDuplicateOrder() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)

	_, err = suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)

	suite.Equal(int64(1), suite.postponedOrderCount())
}

func (suite *LifecycleIntegrationTestSuite) TestChangeStatus_Repostpone_ReopensResolvedOrder() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)

	var order postponedModel.PostponedOrder
	suite.Require().NoError(suite.db.Where("parcel_id = ?", created.ID).First(&order).Error)
	order.IsResolved = true
	suite.Require().NoError(suite.db.Save(&order).Error)

	notes := "Postponed again"
	_, err = suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, &notes, suite.actor.ID)
	suite.Require().NoError(err)

	suite.Equal(int64(1), suite.postponedOrderCount())

	var reopened postponedModel.PostponedOrder
	suite.Require().NoError(suite.db.Where("parcel_id = ?", created.ID).First(&reopened).Error)
	suite.Equal(order.ID, reopened.ID)
	suite.False(reopened.IsResolved)
	suite.Require().NotNil(reopened.Notes)
	suite.Equal(notes, *reopened.Notes)
	suite.Nil(reopened.NewDeliveryDate)
}

func (suite *LifecycleIntegrationTestSuite) TestChangeStatus_NonExistentParcel() {
	_, err := suite.service.ChangeStatus(9999, parcelModel.StatusPaid, nil, suite.actor.ID)
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *LifecycleIntegrationTestSuite) TestUpdate_StatusChange_OpensOrderWithAutoNotes() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	newStatus := parcelModel.StatusPostponed
	_, err := suite.service.Update(created.ID, parcelTypes.UpdateRequest{Status: &newStatus}, suite.actor.ID)
	suite.Require().NoError(err)

	var order postponedModel.PostponedOrder
	suite.Require().NoError(suite.db.Where("parcel_id = ?", created.ID).First(&order).Error)
	suite.Require().NotNil(order.Notes)
	suite.Equal("Auto-created from status change", *order.Notes)
}

func (suite *LifecycleIntegrationTestSuite) TestUpdate_LeavingPostponed_OrderStaysOpen() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)

	newStatus := parcelModel.StatusPaid
	updated, err := suite.service.Update(created.ID, parcelTypes.UpdateRequest{Status: &newStatus}, suite.actor.ID)
	suite.Require().NoError(err)
	suite.Equal(parcelModel.StatusPaid, updated.Status)

	var order postponedModel.PostponedOrder
	suite.Require().NoError(suite.db.Where("parcel_id = ?", created.ID).First(&order).Error)
	suite.False(order.IsResolved, "the open order outlives the status change until explicitly resolved")
}

func (suite *LifecycleIntegrationTestSuite) TestUpdate_PatchesFields() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	newName := "Karim Ahmed"
	newAmount := 2500.0
	courier := "Pathao"
	updated, err := suite.service.Update(created.ID, parcelTypes.UpdateRequest{
		CustomerName:   &newName,
		ExpectedAmount: &newAmount,
		Courier:        &courier,
	}, suite.actor.ID)
	suite.Require().NoError(err)

	suite.Equal("Karim Ahmed", updated.CustomerName)
	suite.Equal(2500.0, updated.ExpectedAmount)
	suite.Require().NotNil(updated.Courier)
	suite.Equal("Pathao", *updated.Courier)
	suite.Equal("01712345678", updated.Phone, "untouched fields survive the patch")
}

func (suite *LifecycleIntegrationTestSuite) TestUpdate_NegativeAmount() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	bad := -10.0
	_, err := suite.service.Update(created.ID, parcelTypes.UpdateRequest{ExpectedAmount: &bad}, suite.actor.ID)
	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *LifecycleIntegrationTestSuite) TestUpdate_NonExistentParcel() {
	newName := "Nobody"
	_, err := suite.service.Update(9999, parcelTypes.UpdateRequest{CustomerName: &newName}, suite.actor.ID)
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *LifecycleIntegrationTestSuite) TestDelete_RemovesAttachedOrder() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), suite.postponedOrderCount())

	suite.Require().NoError(suite.service.Delete(created.ID, suite.actor.ID))

	suite.Equal(int64(0), suite.postponedOrderCount())
	_, err = suite.service.Get(created.ID)
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *LifecycleIntegrationTestSuite) TestDelete_NonExistentParcel() {
	err := suite.service.Delete(9999, suite.actor.ID)
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *LifecycleIntegrationTestSuite) TestList_StatusFilterAndSearch() {
	suite.createTestParcel(parcelModel.StatusPending, 100)
	suite.createTestParcel(parcelModel.StatusPaid, 200)

	other, err := suite.service.Create(parcelTypes.CreateRequest{
		CustomerName: "Karim Ahmed",
		Phone:        "01898765432",
		Product:      "Books",
		Destination:  "Sylhet",
	}, suite.actor.ID)
	suite.Require().NoError(err)

	paid, total, err := suite.service.List(parcelModel.StatusPaid, "", 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(paid, 1)

	found, total, err := suite.service.List("", "karim", 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(found, 1)
	suite.Equal(other.ID, found[0].ID)

	all, total, err := suite.service.List("", "", 1, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 2, "page size caps the result")
}

func (suite *LifecycleIntegrationTestSuite) TestListOverdue() {
	suite.createTestParcel(parcelModel.StatusPending, 100)
	overdue := suite.createTestParcel(parcelModel.StatusOverdue, 200)

	parcels, err := suite.service.ListOverdue()
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 1)
	suite.Equal(overdue.ID, parcels[0].ID)
}

func (suite *LifecycleIntegrationTestSuite) TestStats_PerStatusCounts() {
	suite.createTestParcel(parcelModel.StatusPending, 100)
	suite.createTestParcel(parcelModel.StatusPending, 100)
	suite.createTestParcel(parcelModel.StatusPaid, 200)
	suite.createTestParcel(parcelModel.StatusCancelled, 300)

	stats, err := suite.service.Stats()
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats["pending"])
	suite.Equal(int64(1), stats["paid"])
	suite.Equal(int64(1), stats["cancelled"])
}

func (suite *LifecycleIntegrationTestSuite) TestPostponedOrder_UniqueParcelConstraint() {
	created := suite.createTestParcel(parcelModel.StatusPending, 1500)

	_, err := suite.service.ChangeStatus(created.ID, parcelModel.StatusPostponed, nil, suite.actor.ID)
	suite.Require().NoError(err)

	duplicate := postponedModel.PostponedOrder{ParcelID: created.ID}
	err = suite.db.Create(&duplicate).Error
	suite.Require().ErrorIs(err, gorm.ErrDuplicatedKey)
}

func TestLifecycleIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleIntegrationTestSuite))
}
