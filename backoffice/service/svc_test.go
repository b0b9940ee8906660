package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/config"
	"github.com/procargo/backoffice/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newTestService(t *testing.T) (*Service, *domain.MockRepository) {
	t.Helper()
	repo := domain.NewMockRepository(t)
	s, err := NewService(Params{
		Repo:        repo,
		TokenConfig: config.TokenConfig{TTL: time.Hour, Issuer: "backoffice-test"},
		CacheConfig: config.CacheConfig{PrincipalTTL: time.Minute},
	})
	require.NoError(t, err)
	svc := s.(*Service)
	now := time.Now()
	svc.now = func() time.Time { return now }
	return svc, repo
}

func testPrincipal(t *testing.T, role domain.Role, entityID string) *domain.Principal {
	t.Helper()
	m, err := domain.MembershipForRole(role)
	require.NoError(t, err)
	p, err := domain.NewPrincipal(m, domain.PrincipalOptions{UserID: bson.NewObjectID().Hex(), Name: "tester", EntityID: entityID})
	require.NoError(t, err)
	return p
}

func testUser(t *testing.T, role domain.Role, password string) *domain.User {
	t.Helper()
	hash, err := util.CreateArgon2Hash(password)
	require.NoError(t, err)
	entity, ok := role.Entity()
	require.True(t, ok)
	return &domain.User{
		BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()},
		Name:       "Alice",
		Email:      "alice@example.com",
		Password:   domain.EncryptedPassword(hash),
		Entity:     entity,
		Role:       role,
		Status:     domain.UserStatusActive,
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok, "expected an HTTP status error, got %v", err)
	assert.Equal(t, status, httpErr.StatusCode, httpErr.Error())
}

func expectAudit(repo *domain.MockRepository) {
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func byEmail(o *domain.QueryUserOptions) bool { return len(o.Emails) == 1 }
func byID(o *domain.QueryUserOptions) bool    { return len(o.IDs) == 1 }

func TestLoginAndVerifyToken(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	user := testUser(t, domain.RoleAccountant, "s3cret!")

	repo.EXPECT().
		QueryUsers(mock.Anything, mock.MatchedBy(byEmail)).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) {
			assert.Equal(t, []string{"alice@example.com"}, opt.Emails)
			opt.Result = []*domain.User{user}
		}).
		Return(nil).
		Once()
	repo.EXPECT().
		UpdateUser(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) {
			assert.NotZero(t, u.LastLogin)
		}).
		Return(nil).
		Once()
	repo.EXPECT().
		QueryUsers(mock.Anything, mock.MatchedBy(byID)).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) {
			opt.Result = []*domain.User{user}
		}).
		Return(nil).
		Once()

	session, err := svc.Login(ctx, " Alice@Example.com ", "s3cret!")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, domain.RoleAccountant, session.User.Role())
	assert.ElementsMatch(t, []domain.Permission{domain.ViewInvoices, domain.CreateInvoice, domain.EditInvoice, domain.ManagePayments, domain.ViewReports}, session.User.Permissions())

	principal, err := svc.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), principal.UserID())

	// served from the principal cache, QueryUsers by id is expected once
	again, err := svc.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Same(t, principal, again)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	user := testUser(t, domain.RoleDriver, "right")
	inactive := testUser(t, domain.RoleDriver, "right")
	inactive.Status = domain.UserStatusInactive

	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) { opt.Result = []*domain.User{user} }).
		Return(nil).Once()
	_, err := svc.Login(ctx, "alice@example.com", "wrong")
	requireStatus(t, err, http.StatusUnauthorized)

	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) { opt.Result = nil }).
		Return(nil).Once()
	_, err = svc.Login(ctx, "nobody@example.com", "right")
	requireStatus(t, err, http.StatusUnauthorized)

	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) { opt.Result = []*domain.User{inactive} }).
		Return(nil).Once()
	_, err = svc.Login(ctx, "alice@example.com", "right")
	requireStatus(t, err, http.StatusUnauthorized)
	assert.Contains(t, err.Error(), "account is deactivated")
}

func TestVerifyTokenRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	other, _ := newTestService(t)
	user := testUser(t, domain.RoleDriver, "pw")

	foreign, err := other.genJWTToken(user, time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = svc.VerifyToken(ctx, foreign)
	requireStatus(t, err, http.StatusUnauthorized)

	hs := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UID: user.ID.Hex()})
	signed, err := hs.SignedString([]byte("shared"))
	require.NoError(t, err)
	_, err = svc.VerifyToken(ctx, signed)
	requireStatus(t, err, http.StatusUnauthorized)

	expired, err := svc.genJWTToken(user, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = svc.VerifyToken(ctx, expired)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRegisterCreatesCustomerAndClientUser(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	customerID := bson.NewObjectID()

	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		CreateCustomer(mock.Anything, mock.Anything).
		Run(func(_ context.Context, c *domain.Customer) {
			assert.Equal(t, "new@client.com", c.Email)
			assert.Equal(t, "Desert Traders", c.Company.Name)
			assert.Equal(t, domain.PartyTypeBusiness, c.CustomerType)
			c.ID = customerID
		}).
		Return(nil).
		Once()
	repo.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) {
			assert.Equal(t, domain.EntityClient, u.Entity)
			assert.Equal(t, domain.RoleClientManager, u.Role)
			assert.Equal(t, customerID, u.EntityID)
			u.ID = bson.NewObjectID()
		}).
		Return(nil).
		Once()
	repo.EXPECT().UpdateCustomer(mock.Anything, mock.Anything).Return(nil).Once()

	session, err := svc.Register(ctx, domain.RegisterOptions{
		Name: "New Client", Email: "New@Client.com", Password: "pw123456", Company: "Desert Traders",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClientManager, session.User.Role())
	assert.True(t, session.User.OwnsCustomer(customerID.Hex()))
}

func TestRegisterRejects(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	_, err := svc.Register(ctx, domain.RegisterOptions{Email: "a@b.c", Password: "pw", Role: "DRIVER"})
	requireStatus(t, err, http.StatusForbidden)

	_, err = svc.Register(ctx, domain.RegisterOptions{Email: "a@b.c", Password: "pw", Role: "client"})
	requireStatus(t, err, http.StatusBadRequest)

	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(domain.ErrDuplicate).Once()
	_, err = svc.Register(ctx, domain.RegisterOptions{Email: "a@b.c", Password: "pw"})
	requireStatus(t, err, http.StatusConflict)
}

func TestAccountantScope(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	accountant := testPrincipal(t, domain.RoleAccountant, "")

	err := svc.QueryCustomers(ctx, accountant, &domain.QueryCustomerOptions{})
	requireStatus(t, err, http.StatusForbidden)
	err = svc.QueryOrders(ctx, accountant, &domain.QueryOrderOptions{})
	requireStatus(t, err, http.StatusForbidden)

	repo.EXPECT().
		CountOrdersByStatus(mock.Anything, domain.OrderScope{}).
		Return(map[domain.OrderStatus]int64{}, nil).
		Once()
	repo.EXPECT().
		QueryInvoices(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryInvoiceOptions) {
			assert.NotContains(t, opt.Statuses, domain.InvoiceCancelled)
			opt.Result = []*domain.Invoice{
				{Total: domain.MoneyFromFloat(100), Status: domain.InvoiceIssued},
				{Total: domain.MoneyFromFloat(50.5), Status: domain.InvoicePartiallyPaid, Payments: []domain.Payment{{Amount: domain.MoneyFromFloat(20)}}},
			}
		}).
		Return(nil).
		Once()

	report, err := svc.GetSummaryReport(ctx, accountant)
	require.NoError(t, err)
	assert.Zero(t, report.TotalOrders)
	assert.Equal(t, int64(2), report.Invoices.Count)
	assert.Equal(t, "150.50", report.Invoices.Billed.StringFixed(2))
	assert.Equal(t, "130.50", report.Invoices.Outstanding.StringFixed(2))
}

func TestClientDataEntryCreatesOwnOrder(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	customerID := bson.NewObjectID()
	p := testPrincipal(t, domain.RoleClientDataEntry, customerID.Hex())
	expectAudit(repo)

	repo.EXPECT().
		QueryCustomers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryCustomerOptions) {
			assert.Equal(t, []bson.ObjectID{customerID}, opt.IDs)
			opt.Result = []*domain.Customer{{BaseEntity: domain.BaseEntity{ID: customerID}}}
		}).
		Return(nil).
		Once()
	repo.EXPECT().NextSequence(mock.Anything, orderCounter(svc.now().Year())).Return(int64(7), nil).Once()
	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()

	order := &domain.Order{
		CustomerID:    bson.NewObjectID(),
		ServiceType:   domain.ServiceAirFreight,
		Status:        domain.OrderStatusConfirmed,
		InternalNotes: "vip",
		AssignedTo:    bson.NewObjectID(),
	}
	err := svc.CreateOrder(ctx, p, order)
	require.NoError(t, err)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Empty(t, order.InternalNotes)
	assert.True(t, order.AssignedTo.IsZero())
	assert.Equal(t, domain.FormatOrderNumber(svc.now().Year(), 7), order.OrderNumber)
	require.Len(t, order.Tracking.Updates, 1)

	_, err = svc.ApproveOrder(ctx, p, bson.NewObjectID().Hex(), "")
	requireStatus(t, err, http.StatusForbidden)
	err = svc.QuerySuppliers(ctx, p, &domain.QuerySupplierOptions{})
	requireStatus(t, err, http.StatusForbidden)
}

func TestQueryOrdersScope(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	supplierID := bson.NewObjectID()
	supplier := testPrincipal(t, domain.RoleSupplierManager, supplierID.Hex())

	opt := &domain.QueryOrderOptions{SupplierIDs: []bson.ObjectID{bson.NewObjectID()}, Pagination: &domain.Pagination{}}
	require.NoError(t, svc.QueryOrders(ctx, supplier, opt))
	assert.Empty(t, opt.Result)
	assert.Zero(t, opt.Pagination.Total)

	repo.EXPECT().
		QueryOrders(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryOrderOptions) {
			assert.Equal(t, []bson.ObjectID{supplierID}, opt.SupplierIDs)
			opt.Result = []*domain.Order{{SupplierID: supplierID}}
		}).
		Return(nil).
		Once()
	opt = &domain.QueryOrderOptions{}
	require.NoError(t, svc.QueryOrders(ctx, supplier, opt))
	assert.Len(t, opt.Result, 1)

	unbound := testPrincipal(t, domain.RoleClientManager, "")
	opt = &domain.QueryOrderOptions{}
	require.NoError(t, svc.QueryOrders(ctx, unbound, opt))
	assert.Empty(t, opt.Result)
}

func TestApproveAndRejectOrder(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	expectAudit(repo)
	supplierID := bson.NewObjectID()
	supplier := testPrincipal(t, domain.RoleSupplierManager, supplierID.Hex())
	order := &domain.Order{
		BaseEntity:  domain.BaseEntity{ID: bson.NewObjectID()},
		SupplierID:  supplierID,
		Status:      domain.OrderStatusPending,
		CustomsInfo: domain.CustomsInfo{ClearanceStatus: domain.ClearancePending},
	}
	loadOrder := func(o *domain.Order) {
		repo.EXPECT().QueryOrders(mock.Anything, mock.Anything).
			Run(func(_ context.Context, opt *domain.QueryOrderOptions) { opt.Result = []*domain.Order{o} }).
			Return(nil).Once()
	}

	loadOrder(order)
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
	approved, err := svc.ApproveOrder(ctx, supplier, order.ID.Hex(), "docs ok")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, approved.Status)
	assert.Equal(t, domain.ClearanceCleared, approved.CustomsInfo.ClearanceStatus)
	require.Len(t, approved.Tracking.Updates, 1)
	assert.Equal(t, "Order approved: docs ok", approved.Tracking.Updates[0].Notes)

	_, err = svc.RejectOrder(ctx, supplier, order.ID.Hex(), "  ")
	requireStatus(t, err, http.StatusBadRequest)

	cancelled := &domain.Order{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}, SupplierID: supplierID, Status: domain.OrderStatusCancelled}
	loadOrder(cancelled)
	_, err = svc.RejectOrder(ctx, supplier, cancelled.ID.Hex(), "late")
	requireStatus(t, err, http.StatusConflict)

	foreign := &domain.Order{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}, SupplierID: bson.NewObjectID(), Status: domain.OrderStatusPending}
	loadOrder(foreign)
	_, err = svc.ApproveOrder(ctx, supplier, foreign.ID.Hex(), "")
	requireStatus(t, err, http.StatusForbidden)

	clearance := testPrincipal(t, domain.RoleClearanceManager, "")
	for _, status := range []domain.OrderStatus{domain.OrderStatusConfirmed, domain.OrderStatusInTransit} {
		moving := &domain.Order{
			BaseEntity:  domain.BaseEntity{ID: bson.NewObjectID()},
			Status:      status,
			CustomsInfo: domain.CustomsInfo{ClearanceStatus: domain.ClearancePending},
		}
		loadOrder(moving)
		_, err = svc.ApproveOrder(ctx, clearance, moving.ID.Hex(), "")
		requireStatus(t, err, http.StatusConflict)
		assert.Equal(t, status, moving.Status, "status %s must stay untouched", status)
	}

	held := &domain.Order{
		BaseEntity:  domain.BaseEntity{ID: bson.NewObjectID()},
		Status:      domain.OrderStatusOnHold,
		CustomsInfo: domain.CustomsInfo{ClearanceStatus: domain.ClearanceHeld},
	}
	loadOrder(held)
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
	rejected, err := svc.RejectOrder(ctx, clearance, held.ID.Hex(), "missing permit")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, rejected.Status)
	assert.Equal(t, domain.ClearanceRejected, rejected.CustomsInfo.ClearanceStatus)

	driver := testPrincipal(t, domain.RoleDriver, "")
	_, err = svc.RejectOrder(ctx, driver, held.ID.Hex(), "")
	requireStatus(t, err, http.StatusForbidden)
}

func TestTrackingUpdateStatusRules(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	expectAudit(repo)
	driver := testPrincipal(t, domain.RoleDriver, "")
	loadOrder := func(o *domain.Order) {
		repo.EXPECT().QueryOrders(mock.Anything, mock.Anything).
			Run(func(_ context.Context, opt *domain.QueryOrderOptions) { opt.Result = []*domain.Order{o} }).
			Return(nil).Once()
	}
	newOrder := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}, Status: status}
	}

	for _, status := range []domain.OrderStatus{domain.OrderStatusCancelled, domain.OrderStatusConfirmed, domain.OrderStatusPending, domain.OrderStatusOnHold} {
		order := newOrder(domain.OrderStatusInTransit)
		loadOrder(order)
		_, err := svc.AddTrackingUpdate(ctx, driver, order.ID.Hex(), domain.TrackingUpdateOptions{Status: util.Ptr(status)})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, domain.OrderStatusInTransit, order.Status, "tracking must not set %s", status)
	}

	_, err := svc.UpdateOrderStatus(ctx, driver, bson.NewObjectID().Hex(), domain.StatusUpdateOptions{Status: domain.OrderStatusCancelled})
	requireStatus(t, err, http.StatusForbidden)

	confirmed := newOrder(domain.OrderStatusConfirmed)
	loadOrder(confirmed)
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
	updated, err := svc.AddTrackingUpdate(ctx, driver, confirmed.ID.Hex(), domain.TrackingUpdateOptions{
		Status:   util.Ptr(domain.OrderStatusInTransit),
		Location: "Jeddah port",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusInTransit, updated.Status)
	assert.Equal(t, "Jeddah port", updated.Tracking.CurrentLocation)

	delivered := newOrder(domain.OrderStatusDelivered)
	loadOrder(delivered)
	_, err = svc.AddTrackingUpdate(ctx, driver, delivered.ID.Hex(), domain.TrackingUpdateOptions{Status: util.Ptr(domain.OrderStatusInTransit)})
	requireStatus(t, err, http.StatusConflict)

	loadOrder(delivered)
	repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
	noted, err := svc.AddTrackingUpdate(ctx, driver, delivered.ID.Hex(), domain.TrackingUpdateOptions{Notes: "signed by receiver"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, noted.Status)
	require.Len(t, noted.Tracking.Updates, 1)
}

func TestUpdateOwnOrderOnlyWhilePending(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	customerID := bson.NewObjectID()
	manager := testPrincipal(t, domain.RoleClientManager, customerID.Hex())
	order := &domain.Order{
		BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()},
		CustomerID: customerID,
		Status:     domain.OrderStatusInTransit,
	}
	repo.EXPECT().QueryOrders(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryOrderOptions) { opt.Result = []*domain.Order{order} }).
		Return(nil).Once()

	err := svc.UpdateOrder(ctx, manager, &domain.Order{BaseEntity: domain.BaseEntity{ID: order.ID}, Notes: "change"})
	requireStatus(t, err, http.StatusConflict)
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	expectAudit(repo)
	accountant := testPrincipal(t, domain.RoleAccountant, "")
	invoice := &domain.Invoice{
		BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()},
		Total:      domain.MoneyFromFloat(100),
		Status:     domain.InvoiceIssued,
	}
	repo.EXPECT().QueryInvoices(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryInvoiceOptions) { opt.Result = []*domain.Invoice{invoice} }).
		Return(nil)
	repo.EXPECT().UpdateInvoice(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.RecordPayment(ctx, accountant, invoice.ID.Hex(), domain.Payment{Amount: domain.MoneyFromFloat(150)})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = svc.RecordPayment(ctx, accountant, invoice.ID.Hex(), domain.Payment{Amount: domain.MoneyFromFloat(0)})
	requireStatus(t, err, http.StatusBadRequest)

	paid, err := svc.RecordPayment(ctx, accountant, invoice.ID.Hex(), domain.Payment{Amount: domain.MoneyFromFloat(40)})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePartiallyPaid, paid.Status)
	assert.Equal(t, "60.00", paid.Outstanding().StringFixed(2))

	err = svc.DeleteInvoice(ctx, testPrincipal(t, domain.RoleGeneralManager, ""), invoice.ID.Hex())
	requireStatus(t, err, http.StatusConflict)

	_, err = svc.RecordPayment(ctx, testPrincipal(t, domain.RoleClientManager, bson.NewObjectID().Hex()), invoice.ID.Hex(), domain.Payment{})
	requireStatus(t, err, http.StatusForbidden)
}

func TestCreateInvoiceFromOrder(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	expectAudit(repo)
	accountant := testPrincipal(t, domain.RoleAccountant, "")
	order := &domain.Order{
		BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()},
		CustomerID: bson.NewObjectID(),
		SupplierID: bson.NewObjectID(),
	}
	repo.EXPECT().QueryOrders(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryOrderOptions) { opt.Result = []*domain.Order{order} }).
		Return(nil).Once()
	repo.EXPECT().NextSequence(mock.Anything, invoiceCounter(svc.now().Year())).Return(int64(3), nil).Once()
	repo.EXPECT().CreateInvoice(mock.Anything, mock.Anything).Return(nil).Once()

	invoice := &domain.Invoice{
		OrderID: order.ID,
		Items:   []domain.InvoiceItem{{Description: "freight", Quantity: 2, UnitPrice: domain.MoneyFromFloat(10.25)}},
		Tax:     domain.MoneyFromFloat(3),
	}
	require.NoError(t, svc.CreateInvoice(ctx, accountant, invoice))
	assert.Equal(t, domain.FormatInvoiceNumber(svc.now().Year(), 3), invoice.InvoiceNumber)
	assert.Equal(t, order.CustomerID, invoice.CustomerID)
	assert.Equal(t, domain.InvoiceDraft, invoice.Status)
	assert.Equal(t, domain.DefaultCurrency, invoice.Currency)
	assert.Equal(t, "23.50", invoice.Total.StringFixed(2))
	assert.NotZero(t, invoice.DueDate)

	err := svc.CreateInvoice(ctx, accountant, &domain.Invoice{OrderID: order.ID})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestRenderInvoicePDF(t *testing.T) {
	invoice := &domain.Invoice{
		InvoiceNumber: "INV-2025-000001",
		Items:         []domain.InvoiceItem{{Description: "customs", Quantity: 1, UnitPrice: domain.MoneyFromFloat(50)}},
		Currency:      domain.DefaultCurrency,
		Status:        domain.InvoiceIssued,
	}
	invoice.Recalculate()
	out, err := renderInvoice(invoice, &domain.Customer{Name: "Desert Traders"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestUserManagementGuards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gm := testPrincipal(t, domain.RoleGeneralManager, "")

	err := svc.DeleteUser(ctx, gm, gm.UserID())
	requireStatus(t, err, http.StatusBadRequest)

	err = svc.CreateUser(ctx, gm, &domain.User{Email: "d@x.com", Password: "pw", Role: domain.RoleDriver, EntityID: bson.NewObjectID()})
	requireStatus(t, err, http.StatusBadRequest)

	err = svc.CreateUser(ctx, testPrincipal(t, domain.RoleOperationsManager, ""), &domain.User{Role: domain.RoleDriver})
	requireStatus(t, err, http.StatusForbidden)

	err = svc.QueryAuditLogs(ctx, testPrincipal(t, domain.RoleOperationsManager, ""), &domain.QueryAuditLogOptions{})
	requireStatus(t, err, http.StatusForbidden)

	_, err = svc.GetSelf(ctx, nil)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestCreateVehicle(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	expectAudit(repo)

	err := svc.CreateVehicle(ctx, testPrincipal(t, domain.RoleDriver, ""), &domain.Vehicle{})
	requireStatus(t, err, http.StatusForbidden)

	ops := testPrincipal(t, domain.RoleOperationsManager, "")
	err = svc.CreateVehicle(ctx, ops, &domain.Vehicle{PlateNumber: "abc", Type: "rocket"})
	requireStatus(t, err, http.StatusBadRequest)

	repo.EXPECT().CreateVehicle(mock.Anything, mock.Anything).Return(nil).Once()
	v := &domain.Vehicle{PlateNumber: " abc-123 ", Type: domain.VehicleTruck}
	require.NoError(t, svc.CreateVehicle(ctx, ops, v))
	assert.Equal(t, "ABC-123", v.PlateNumber)
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.True(t, v.IsActive)
}
