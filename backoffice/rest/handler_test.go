package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/backoffice/rest"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	Svc     *domain.MockService
	Handler *rest.Handler
	Engine  *echo.Echo
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.Svc = domain.NewMockService(suite.T())
	handler, err := rest.NewHandler(rest.Params{Svc: suite.Svc})
	suite.Require().NoError(err)
	suite.Handler = handler

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	suite.Engine = e
	suite.Handler.SetupRoutes(e)
}

func (suite *HandlerTestSuite) JSONDecode(r *httptest.ResponseRecorder, dst any) {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	suite.Require().NoError(err, "Failed to decode JSON response")
}

// loginAs makes token resolve to a principal of role bound to entityID.
func (suite *HandlerTestSuite) loginAs(token string, role domain.Role, entityID string) *domain.Principal {
	m, err := domain.MembershipForRole(role)
	suite.Require().NoError(err)
	p, err := domain.NewPrincipal(m, domain.PrincipalOptions{UserID: bson.NewObjectID().Hex(), Name: "tester", EntityID: entityID})
	suite.Require().NoError(err)
	suite.Svc.EXPECT().VerifyToken(mock.Anything, token).Return(p, nil)
	return p
}

func (suite *HandlerTestSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) TestHealthCheck() {
	rec := suite.do(http.MethodGet, "/health", "", "")

	suite.Equal(http.StatusOK, rec.Code, "Expected status OK")
	var resp map[string]any
	suite.JSONDecode(rec, &resp)
	suite.Equal("healthy", resp["status"].(string), "Expected status to be healthy")
}

func (suite *HandlerTestSuite) TestMissingTokenIsUnauthorized() {
	rec := suite.do(http.MethodGet, "/api/v1/customers", "", "")
	suite.Equal(http.StatusUnauthorized, rec.Code)

	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.False(resp.Success)
	suite.Equal("Missing Authorization header", resp.Error)
	suite.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (suite *HandlerTestSuite) TestMalformedAuthorizationHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *HandlerTestSuite) TestInvalidTokenIsUnauthorized() {
	suite.Svc.EXPECT().VerifyToken(mock.Anything, "expired").Return(nil, errs.Unauthorized("invalid token", nil))

	rec := suite.do(http.MethodGet, "/api/v1/orders", "expired", "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.Equal("invalid token", resp.Error)
}

func (suite *HandlerTestSuite) TestAccountantCannotListCustomers() {
	suite.loginAs("acct", domain.RoleAccountant, "")

	rec := suite.do(http.MethodGet, "/api/v1/customers", "acct", "")
	suite.Equal(http.StatusForbidden, rec.Code)

	metrics := httptest.NewRecorder()
	suite.Engine.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	suite.Equal(http.StatusOK, metrics.Code)
	suite.Contains(metrics.Body.String(), `backoffice_auth_denied_total{action="customer.list",code="403"} 1`)
}

func (suite *HandlerTestSuite) TestAccountantReadsSummaryReport() {
	suite.loginAs("acct", domain.RoleAccountant, "")
	billed, err := domain.ParseMoney("150.50")
	suite.Require().NoError(err)
	suite.Svc.EXPECT().GetSummaryReport(mock.Anything, mock.Anything).Return(&domain.SummaryReport{
		OrdersByStatus: map[domain.OrderStatus]int64{},
		Invoices:       domain.InvoiceTotals{Count: 1, Billed: billed},
	}, nil)

	rec := suite.do(http.MethodGet, "/api/v1/reports/summary", "acct", "")
	suite.Equal(http.StatusOK, rec.Code)

	var resp rest.SuccessResponse[domain.SummaryReport]
	suite.JSONDecode(rec, &resp)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Data)
	suite.Equal(int64(1), resp.Data.Invoices.Count)
	suite.Equal("150.5", resp.Data.Invoices.Billed.String())
}

func (suite *HandlerTestSuite) TestClientDataEntryCannotApprove() {
	suite.loginAs("cde", domain.RoleClientDataEntry, bson.NewObjectID().Hex())

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+bson.NewObjectID().Hex()+"/approve", "cde", "")
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *HandlerTestSuite) TestSupplierApprovesOrder() {
	supplierID := bson.NewObjectID()
	orderID := bson.NewObjectID()
	p := suite.loginAs("sup", domain.RoleSupplierManager, supplierID.Hex())
	suite.Svc.EXPECT().ApproveOrder(mock.Anything, p, orderID.Hex(), "looks good").Return(&domain.Order{
		BaseEntity: domain.BaseEntity{ID: orderID},
		SupplierID: supplierID,
		Status:     domain.OrderStatusConfirmed,
	}, nil)

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+orderID.Hex()+"/approve", "sup", `{"notes":"looks good"}`)
	suite.Equal(http.StatusOK, rec.Code)

	var resp rest.SuccessResponse[rest.OrderResponse]
	suite.JSONDecode(rec, &resp)
	suite.Require().NotNil(resp.Data)
	suite.Equal(orderID.Hex(), resp.Data.ID)
	suite.Equal(domain.OrderStatusConfirmed, resp.Data.Status)
}

func (suite *HandlerTestSuite) TestOrderHidesInternalNotesFromClients() {
	customerID := bson.NewObjectID()
	orderID := bson.NewObjectID()
	suite.loginAs("client", domain.RoleClientManager, customerID.Hex())
	suite.Svc.EXPECT().GetOrder(mock.Anything, mock.Anything, orderID.Hex()).Return(&domain.Order{
		BaseEntity:    domain.BaseEntity{ID: orderID},
		CustomerID:    customerID,
		Status:        domain.OrderStatusPending,
		InternalNotes: "margin is thin",
	}, nil)

	rec := suite.do(http.MethodGet, "/api/v1/orders/"+orderID.Hex(), "client", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.NotContains(rec.Body.String(), "margin is thin")
}

func (suite *HandlerTestSuite) TestOrderShowsInternalNotesToStaff() {
	orderID := bson.NewObjectID()
	suite.loginAs("ops", domain.RoleOperationsManager, "")
	suite.Svc.EXPECT().GetOrder(mock.Anything, mock.Anything, orderID.Hex()).Return(&domain.Order{
		BaseEntity:    domain.BaseEntity{ID: orderID},
		InternalNotes: "margin is thin",
	}, nil)

	rec := suite.do(http.MethodGet, "/api/v1/orders/"+orderID.Hex(), "ops", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "margin is thin")
}

func (suite *HandlerTestSuite) TestLoginBindErrors() {
	rec := suite.do(http.MethodPost, "/api/v1/auth/login", "", `{"email":`)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/auth/login", "", `{"email":"not-an-email","password":""}`)
	suite.Equal(http.StatusUnprocessableEntity, rec.Code)
	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.Contains(resp.Error, "Email email")
	suite.Contains(resp.Error, "Password required")
}

func (suite *HandlerTestSuite) TestLoginReturnsSession() {
	m, err := domain.MembershipForRole(domain.RoleDriver)
	suite.Require().NoError(err)
	p, err := domain.NewPrincipal(m, domain.PrincipalOptions{UserID: "u1", Name: "Sam"})
	suite.Require().NoError(err)
	suite.Svc.EXPECT().Login(mock.Anything, "sam@example.com", "pw").Return(&domain.Session{User: p, Token: "jwt"}, nil)

	rec := suite.do(http.MethodPost, "/api/v1/auth/login", "", `{"email":"sam@example.com","password":"pw"}`)
	suite.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Role        string   `json:"role"`
				Permissions []string `json:"permissions"`
			} `json:"user"`
		} `json:"data"`
	}
	suite.JSONDecode(rec, &resp)
	suite.Equal("jwt", resp.Data.Token)
	suite.Equal("DRIVER", resp.Data.User.Role)
	suite.ElementsMatch([]string{"VIEW_ALL_ORDERS", "DRIVE_VEHICLES"}, resp.Data.User.Permissions)
}

func (suite *HandlerTestSuite) TestLoginRejectedCredentials() {
	suite.Svc.EXPECT().Login(mock.Anything, "sam@example.com", "bad").Return(nil, errs.Unauthorized("invalid credentials", nil))

	rec := suite.do(http.MethodPost, "/api/v1/auth/login", "", `{"email":"sam@example.com","password":"bad"}`)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *HandlerTestSuite) TestListPermissionsExposesGuards() {
	suite.loginAs("driver", domain.RoleDriver, "")

	rec := suite.do(http.MethodGet, "/api/v1/auth/permissions", "driver", "")
	suite.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	suite.Contains(body, "GENERAL_MANAGER")
	suite.Contains(body, string(domain.ActionAuditLogRead))
}

func (suite *HandlerTestSuite) TestDriverCannotCreateVehicle() {
	suite.loginAs("driver", domain.RoleDriver, "")

	rec := suite.do(http.MethodPost, "/api/v1/vehicles", "driver", `{"plateNumber":"abc 123","type":"truck"}`)
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *HandlerTestSuite) TestInvoicePDFDownload() {
	invoiceID := bson.NewObjectID().Hex()
	suite.loginAs("acct", domain.RoleAccountant, "")
	suite.Svc.EXPECT().RenderInvoicePDF(mock.Anything, mock.Anything, invoiceID).Return([]byte("%PDF-1.3 test"), nil)

	rec := suite.do(http.MethodGet, "/api/v1/invoices/"+invoiceID+"/pdf", "acct", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("application/pdf", rec.Header().Get("Content-Type"))
	suite.Contains(rec.Header().Get("Content-Disposition"), invoiceID)
	suite.True(strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func (suite *HandlerTestSuite) TestRecordPaymentOverpayment() {
	invoiceID := bson.NewObjectID().Hex()
	suite.loginAs("acct", domain.RoleAccountant, "")
	suite.Svc.EXPECT().RecordPayment(mock.Anything, mock.Anything, invoiceID, mock.AnythingOfType("domain.Payment")).
		Return(nil, errs.Unprocessable("payment exceeds outstanding amount", domain.ErrOverpayment))

	rec := suite.do(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", "acct", `{"amount":"999","method":"cash"}`)
	suite.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (suite *HandlerTestSuite) TestListCustomersPaginates() {
	suite.loginAs("gm", domain.RoleGeneralManager, "")
	suite.Svc.EXPECT().QueryCustomers(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, operator *domain.Principal, opt *domain.QueryCustomerOptions) {
			suite.Equal([]domain.PartyStatus{domain.PartyStatusActive}, opt.Statuses)
			opt.Pagination.Total = 1
			opt.Result = []*domain.Customer{{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}, Name: "Acme"}}
		}).Return(nil)

	rec := suite.do(http.MethodGet, "/api/v1/customers?status=active&limit=5", "gm", "")
	suite.Equal(http.StatusOK, rec.Code)

	var resp rest.SuccessResponse[rest.PageResponse[rest.CustomerResponse]]
	suite.JSONDecode(rec, &resp)
	suite.Require().NotNil(resp.Data)
	suite.Equal(int64(1), resp.Data.Total)
	suite.Equal(int64(5), resp.Data.Limit)
	suite.Require().Len(resp.Data.Items, 1)
	suite.Equal("Acme", resp.Data.Items[0].Name)
}

func (suite *HandlerTestSuite) TestUnknownServiceErrorIsInternal() {
	suite.loginAs("gm", domain.RoleGeneralManager, "")
	suite.Svc.EXPECT().QueryVehicles(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	rec := suite.do(http.MethodGet, "/api/v1/vehicles", "gm", "")
	suite.Equal(http.StatusInternalServerError, rec.Code)
}
