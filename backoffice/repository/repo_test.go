package repository

import (
	"context"
	"testing"

	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/migration"
	"github.com/procargo/backoffice/config"
	"github.com/procargo/backoffice/pkg/container"
	"github.com/procargo/backoffice/pkg/logger"
	"github.com/procargo/backoffice/pkg/util"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

type RepositoryTestSuite struct {
	suite.Suite
	ctx            context.Context
	repo           *repo
	containerBuild *container.ContainerBuilder
	mongoCfg       config.MongoDBConfig
}

func (suite *RepositoryTestSuite) SetupSuite() {
	logger.InitLogger()
	suite.ctx = context.Background()

	builder, err := container.NewContainerBuilder("")
	suite.Require().NoError(err, "init container builder")
	suite.containerBuild = builder

	cfg, err := config.InitBackofficeConfig("backoffice_config.test.toml", config.GetAbsPath("config"))
	suite.Require().NoError(err, "load test config")

	spec, err := container.RunMongoContainer(builder, "backoffice_repo_test_mongo", container.MongoSpecFromConfig(cfg.MongoDB))
	suite.Require().NoError(err, "start mongo container")
	cfg.MongoDB = spec.Apply(cfg.MongoDB)
	suite.mongoCfg = cfg.MongoDB

	repoInst, err := NewRepository(Params{MongoConfig: cfg.MongoDB})
	suite.Require().NoError(err, "init repository")

	r, ok := repoInst.(*repo)
	suite.Require().True(ok, "repository type assertion")
	suite.repo = r
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.repo != nil {
		suite.NoError(suite.repo.Close(suite.ctx), "disconnect mongo")
	}
	if suite.containerBuild != nil {
		err := suite.containerBuild.PruneAll()
		suite.Require().NoError(err, "prune containers")
	}
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.Require().NotNil(suite.repo, "repository not initialized")
	err := util.MongoCleanup(suite.repo.client, suite.mongoCfg.Database)
	suite.Require().NoError(err, "cleanup database")
	err = migration.RunMongoMigration(suite.mongoCfg)
	suite.Require().NoError(err, "run migrations")
}

func (suite *RepositoryTestSuite) TestCreateAndQueryUser() {
	user := &domain.User{
		Name:     "Test Manager",
		Email:    "manager@example.com",
		Password: domain.EncryptedPassword("secret"),
		Entity:   domain.EntityPro,
		Role:     domain.RoleGeneralManager,
		Status:   domain.UserStatusActive,
	}
	err := suite.repo.CreateUser(suite.ctx, user)
	suite.Require().NoError(err, "create user")
	suite.NotZero(user.ID, "user id should be assigned")

	opts := &domain.QueryUserOptions{Emails: []string{user.Email}}
	err = suite.repo.QueryUsers(suite.ctx, opts)
	suite.Require().NoError(err, "query users")
	suite.Require().Len(opts.Result, 1, "expect one user")
	suite.Equal(user.Email, opts.Result[0].Email, "email should match")
	suite.Equal(domain.RoleGeneralManager, opts.Result[0].Role, "role should match")

	ok, err := opts.Result[0].Password.Cmp("secret")
	suite.Require().NoError(err)
	suite.True(ok, "stored password should be a hash of the plain text")
	suite.NotEqual("secret", string(opts.Result[0].Password))
}

func (suite *RepositoryTestSuite) TestDuplicateUserEmail() {
	first := &domain.User{Email: "dup@example.com", Password: "secret", Entity: domain.EntityPro, Role: domain.RoleDriver}
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, first))

	second := &domain.User{Email: "dup@example.com", Password: "secret", Entity: domain.EntityPro, Role: domain.RoleDriver}
	err := suite.repo.CreateUser(suite.ctx, second)
	suite.ErrorIs(err, domain.ErrDuplicate)
}

func (suite *RepositoryTestSuite) TestUpdateAndSoftDeleteUser() {
	user := &domain.User{
		Email:    "update@example.com",
		Password: domain.EncryptedPassword("secret"),
		Entity:   domain.EntityPro,
		Role:     domain.RoleAccountant,
		Status:   domain.UserStatusActive,
	}
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, user), "create user")

	user.Status = domain.UserStatusInactive
	suite.Require().NoError(suite.repo.UpdateUser(suite.ctx, user), "update user")

	opts := &domain.QueryUserOptions{IDs: []bson.ObjectID{user.ID}}
	suite.Require().NoError(suite.repo.QueryUsers(suite.ctx, opts), "query users by id")
	suite.Require().Len(opts.Result, 1, "expect one user after update")
	suite.Equal(domain.UserStatusInactive, opts.Result[0].Status, "status should be updated")

	user.DeletedTime = 1
	suite.Require().NoError(suite.repo.UpdateUser(suite.ctx, user), "soft delete user")

	opts = &domain.QueryUserOptions{IDs: []bson.ObjectID{user.ID}}
	suite.Require().NoError(suite.repo.QueryUsers(suite.ctx, opts))
	suite.Empty(opts.Result, "deleted users are hidden")

	opts = &domain.QueryUserOptions{IDs: []bson.ObjectID{user.ID}, IncludeDeleted: true}
	suite.Require().NoError(suite.repo.QueryUsers(suite.ctx, opts))
	suite.Len(opts.Result, 1, "deleted users are returned on request")

	missing := &domain.User{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}}
	suite.ErrorIs(suite.repo.UpdateUser(suite.ctx, missing), domain.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestCustomerSearchAndPagination() {
	names := []string{"Desert Logistics", "Red Sea Trading", "Desert Foods"}
	for i, name := range names {
		c := &domain.Customer{
			Name:  name,
			Email: []string{"a@example.com", "b@example.com", "c@example.com"}[i],
		}
		c.ApplyDefaults()
		suite.Require().NoError(suite.repo.CreateCustomer(suite.ctx, c), "create customer %s", name)
	}

	opts := &domain.QueryCustomerOptions{Search: "desert"}
	suite.Require().NoError(suite.repo.QueryCustomers(suite.ctx, opts))
	suite.Len(opts.Result, 2, "text search should match both desert customers")

	page := &domain.Pagination{Page: 2, Limit: 2}
	opts = &domain.QueryCustomerOptions{Pagination: page}
	suite.Require().NoError(suite.repo.QueryCustomers(suite.ctx, opts))
	suite.Len(opts.Result, 1, "second page holds the remainder")
	suite.EqualValues(3, page.Total)
	suite.EqualValues(2, page.Pages())
	suite.Equal(domain.DefaultCountry, opts.Result[0].Address.Country)
}

func (suite *RepositoryTestSuite) TestOrderMoneyRoundTripAndCounts() {
	customerID := bson.NewObjectID()
	otherID := bson.NewObjectID()
	base, err := domain.ParseMoney("1000.10")
	suite.Require().NoError(err)

	for i, owner := range []bson.ObjectID{customerID, customerID, otherID} {
		order := &domain.Order{
			OrderNumber: domain.FormatOrderNumber(2025, int64(i+1)),
			CustomerID:  owner,
			ServiceType: domain.ServiceSeaFreight,
			Pricing:     domain.Pricing{BasePrice: base},
		}
		order.ApplyDefaults()
		if i == 1 {
			order.Status = domain.OrderStatusDelivered
		}
		suite.Require().NoError(suite.repo.CreateOrder(suite.ctx, order))
	}

	opts := &domain.QueryOrderOptions{CustomerIDs: []bson.ObjectID{customerID}}
	suite.Require().NoError(suite.repo.QueryOrders(suite.ctx, opts))
	suite.Require().Len(opts.Result, 2)
	suite.Equal("1000.1", opts.Result[0].Pricing.TotalAmount.String(), "decimal survives the round trip")

	counts, err := suite.repo.CountOrdersByStatus(suite.ctx, domain.OrderScope{CustomerID: customerID})
	suite.Require().NoError(err)
	suite.EqualValues(1, counts[domain.OrderStatusPending])
	suite.EqualValues(1, counts[domain.OrderStatusDelivered])

	all, err := suite.repo.CountOrdersByStatus(suite.ctx, domain.OrderScope{All: true})
	suite.Require().NoError(err)
	suite.EqualValues(2, all[domain.OrderStatusPending])

	none, err := suite.repo.CountOrdersByStatus(suite.ctx, domain.OrderScope{})
	suite.Require().NoError(err)
	suite.Empty(none)

	dup := &domain.Order{OrderNumber: domain.FormatOrderNumber(2025, 1), CustomerID: customerID}
	suite.ErrorIs(suite.repo.CreateOrder(suite.ctx, dup), domain.ErrDuplicate)
}

func (suite *RepositoryTestSuite) TestNextSequence() {
	for want := int64(1); want <= 3; want++ {
		got, err := suite.repo.NextSequence(suite.ctx, "order")
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}
	got, err := suite.repo.NextSequence(suite.ctx, "invoice")
	suite.Require().NoError(err)
	suite.EqualValues(1, got, "counters are independent")
}

func (suite *RepositoryTestSuite) TestVehiclesActiveOnly() {
	active := &domain.Vehicle{PlateNumber: "ABC-123", Type: domain.VehicleTruck, Status: domain.VehicleAvailable, IsActive: true}
	retired := &domain.Vehicle{PlateNumber: "XYZ-999", Type: domain.VehicleVan, Status: domain.VehicleOutOfService}
	suite.Require().NoError(suite.repo.CreateVehicle(suite.ctx, active))
	suite.Require().NoError(suite.repo.CreateVehicle(suite.ctx, retired))

	opts := &domain.QueryVehicleOptions{ActiveOnly: true}
	suite.Require().NoError(suite.repo.QueryVehicles(suite.ctx, opts))
	suite.Require().Len(opts.Result, 1)
	suite.Equal("ABC-123", opts.Result[0].PlateNumber)
}

func (suite *RepositoryTestSuite) TestInvoiceAndAuditLog() {
	customerID := bson.NewObjectID()
	unit, err := domain.ParseMoney("100.25")
	suite.Require().NoError(err)
	inv := &domain.Invoice{
		InvoiceNumber: domain.FormatInvoiceNumber(2025, 1),
		CustomerID:    customerID,
		Items:         []domain.InvoiceItem{{Description: "freight", Quantity: 2, UnitPrice: unit}},
		Status:        domain.InvoiceIssued,
	}
	inv.Recalculate()
	suite.Require().NoError(suite.repo.CreateInvoice(suite.ctx, inv))

	opts := &domain.QueryInvoiceOptions{CustomerIDs: []bson.ObjectID{customerID}}
	suite.Require().NoError(suite.repo.QueryInvoices(suite.ctx, opts))
	suite.Require().Len(opts.Result, 1)
	suite.Equal("200.5", opts.Result[0].Total.String())

	userID := bson.NewObjectID()
	log := &domain.AuditLog{UserID: userID, Role: domain.RoleAccountant, Action: "invoice.create", Target: inv.ID.Hex()}
	suite.Require().NoError(suite.repo.CreateAuditLog(suite.ctx, log))

	logOpts := &domain.QueryAuditLogOptions{UserIDs: []bson.ObjectID{userID}, Actions: []string{"invoice.create"}}
	suite.Require().NoError(suite.repo.QueryAuditLogs(suite.ctx, logOpts))
	suite.Require().Len(logOpts.Result, 1)
	suite.Equal(inv.ID.Hex(), logOpts.Result[0].Target)
}
