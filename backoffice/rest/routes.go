package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/procargo/backoffice/backoffice/domain"
	docs "github.com/procargo/backoffice/docs/backoffice"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(h.Metrics.Handler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware), h.Metrics.Middleware)
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		guard := func(action domain.Action) echo.MiddlewareFunc {
			return echo.WrapMiddleware(h.GetAuthMiddleware(action))
		}

		// auth routes
		apiV1.POST("/auth/login", h.echoHandler(h.Login))
		apiV1.POST("/auth/register", h.echoHandler(h.Register))
		apiV1.GET("/auth/me", h.echoHandler(h.GetSelf), guard(domain.ActionSelfRead))
		apiV1.GET("/auth/permissions", h.echoHandler(h.ListPermissions), guard(domain.ActionPermissionRead))

		// user routes
		apiV1.PUT("/users/self/password", h.echoHandler(h.ChangePassword), guard(domain.ActionSelfPassword))
		apiV1.GET("/users", h.echoHandler(h.ListUsers), guard(domain.ActionUserList))
		apiV1.POST("/users", h.echoHandler(h.CreateUser), guard(domain.ActionUserCreate))
		apiV1.GET("/users/:id", h.echoHandlerWithParams(h.GetUser), guard(domain.ActionUserList))
		apiV1.PUT("/users/:id", h.echoHandlerWithParams(h.UpdateUser), guard(domain.ActionUserUpdate))
		apiV1.DELETE("/users/:id", h.echoHandlerWithParams(h.DeleteUser), guard(domain.ActionUserDelete))

		// customer routes
		apiV1.GET("/customers", h.echoHandler(h.ListCustomers), guard(domain.ActionCustomerList))
		apiV1.POST("/customers", h.echoHandler(h.CreateCustomer), guard(domain.ActionCustomerCreate))
		apiV1.GET("/customers/:id", h.echoHandlerWithParams(h.GetCustomer), guard(domain.ActionCustomerRead))
		apiV1.PUT("/customers/:id", h.echoHandlerWithParams(h.UpdateCustomer), guard(domain.ActionCustomerUpdate))
		apiV1.DELETE("/customers/:id", h.echoHandlerWithParams(h.DeleteCustomer), guard(domain.ActionCustomerDelete))

		// supplier routes
		apiV1.GET("/suppliers", h.echoHandler(h.ListSuppliers), guard(domain.ActionSupplierList))
		apiV1.POST("/suppliers", h.echoHandler(h.CreateSupplier), guard(domain.ActionSupplierCreate))
		apiV1.GET("/suppliers/:id", h.echoHandlerWithParams(h.GetSupplier), guard(domain.ActionSupplierRead))
		apiV1.PUT("/suppliers/:id", h.echoHandlerWithParams(h.UpdateSupplier), guard(domain.ActionSupplierUpdate))
		apiV1.DELETE("/suppliers/:id", h.echoHandlerWithParams(h.DeleteSupplier), guard(domain.ActionSupplierDelete))

		// order routes
		apiV1.GET("/orders", h.echoHandler(h.ListOrders), guard(domain.ActionOrderList))
		apiV1.POST("/orders", h.echoHandler(h.CreateOrder), guard(domain.ActionOrderCreate))
		apiV1.GET("/orders/:id", h.echoHandlerWithParams(h.GetOrder), guard(domain.ActionOrderList))
		apiV1.PUT("/orders/:id", h.echoHandlerWithParams(h.UpdateOrder), guard(domain.ActionOrderUpdate))
		apiV1.DELETE("/orders/:id", h.echoHandlerWithParams(h.DeleteOrder), guard(domain.ActionOrderDelete))
		apiV1.PUT("/orders/:id/status", h.echoHandlerWithParams(h.UpdateOrderStatus), guard(domain.ActionOrderStatus))
		apiV1.POST("/orders/:id/approve", h.echoHandlerWithParams(h.ApproveOrder), guard(domain.ActionOrderApprove))
		apiV1.POST("/orders/:id/reject", h.echoHandlerWithParams(h.RejectOrder), guard(domain.ActionOrderReject))
		apiV1.POST("/orders/:id/tracking", h.echoHandlerWithParams(h.AddTrackingUpdate), guard(domain.ActionOrderTracking))
		apiV1.POST("/orders/:id/documents", h.echoHandlerWithParams(h.AddOrderDocument), guard(domain.ActionOrderDocument))

		// vehicle routes
		apiV1.GET("/vehicles", h.echoHandler(h.ListVehicles), guard(domain.ActionVehicleList))
		apiV1.POST("/vehicles", h.echoHandler(h.CreateVehicle), guard(domain.ActionVehicleCreate))
		apiV1.GET("/vehicles/:id", h.echoHandlerWithParams(h.GetVehicle), guard(domain.ActionVehicleList))
		apiV1.PUT("/vehicles/:id", h.echoHandlerWithParams(h.UpdateVehicle), guard(domain.ActionVehicleUpdate))

		// invoice routes
		apiV1.GET("/invoices", h.echoHandler(h.ListInvoices), guard(domain.ActionInvoiceList))
		apiV1.POST("/invoices", h.echoHandler(h.CreateInvoice), guard(domain.ActionInvoiceCreate))
		apiV1.GET("/invoices/:id", h.echoHandlerWithParams(h.GetInvoice), guard(domain.ActionInvoiceList))
		apiV1.GET("/invoices/:id/pdf", h.echoHandlerWithParams(h.GetInvoicePDF), guard(domain.ActionInvoiceList))
		apiV1.PUT("/invoices/:id", h.echoHandlerWithParams(h.UpdateInvoice), guard(domain.ActionInvoiceUpdate))
		apiV1.DELETE("/invoices/:id", h.echoHandlerWithParams(h.DeleteInvoice), guard(domain.ActionInvoiceDelete))
		apiV1.POST("/invoices/:id/payments", h.echoHandlerWithParams(h.RecordPayment), guard(domain.ActionInvoicePayment))

		// report routes
		apiV1.GET("/reports/summary", h.echoHandler(h.GetSummaryReport), guard(domain.ActionReportRead))
		apiV1.GET("/audit-logs", h.echoHandler(h.ListAuditLogs), guard(domain.ActionAuditLogRead))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams copies echo path params into the request context.
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response(), r)
		return nil
	}
}

type pathParamKey string

func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
