package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type QueryUserOptions struct {
	IDs            []bson.ObjectID
	Emails         []string
	Roles          []Role
	Entities       []EntityType
	EntityIDs      []bson.ObjectID
	Statuses       []UserStatus
	IncludeDeleted bool
	Pagination     *Pagination
	Result         []*User
}

type QueryCustomerOptions struct {
	IDs            []bson.ObjectID
	Emails         []string
	Statuses       []PartyStatus
	Types          []PartyType
	Search         string
	IncludeDeleted bool
	Pagination     *Pagination
	Result         []*Customer
}

type QuerySupplierOptions struct {
	IDs            []bson.ObjectID
	Emails         []string
	Statuses       []PartyStatus
	Types          []PartyType
	Search         string
	IncludeDeleted bool
	Pagination     *Pagination
	Result         []*Supplier
}

type QueryOrderOptions struct {
	IDs            []bson.ObjectID
	OrderNumbers   []string
	CustomerIDs    []bson.ObjectID
	SupplierIDs    []bson.ObjectID
	Statuses       []OrderStatus
	ServiceTypes   []ServiceType
	IncludeDeleted bool
	Pagination     *Pagination
	Result         []*Order
}

type QueryVehicleOptions struct {
	IDs            []bson.ObjectID
	PlateNumbers   []string
	Types          []VehicleType
	Statuses       []VehicleStatus
	ActiveOnly     bool
	IncludeDeleted bool
	Result         []*Vehicle
}

type QueryInvoiceOptions struct {
	IDs            []bson.ObjectID
	InvoiceNumbers []string
	OrderIDs       []bson.ObjectID
	CustomerIDs    []bson.ObjectID
	SupplierIDs    []bson.ObjectID
	Statuses       []InvoiceStatus
	IncludeDeleted bool
	Pagination     *Pagination
	Result         []*Invoice
}

type QueryAuditLogOptions struct {
	TimestampGTE int64
	TimestampLTE int64
	UserIDs      []bson.ObjectID
	Actions      []string
	Pagination   *Pagination
	Result       []*AuditLog
}

// InvoiceTotals aggregates invoice amounts for reports.
type InvoiceTotals struct {
	Count       int64 `json:"count"`
	Billed      Money `json:"billed"`
	Paid        Money `json:"paid"`
	Outstanding Money `json:"outstanding"`
}

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	QueryUsers(ctx context.Context, opt *QueryUserOptions) error

	CreateCustomer(ctx context.Context, customer *Customer) error
	UpdateCustomer(ctx context.Context, customer *Customer) error
	QueryCustomers(ctx context.Context, opt *QueryCustomerOptions) error

	CreateSupplier(ctx context.Context, supplier *Supplier) error
	UpdateSupplier(ctx context.Context, supplier *Supplier) error
	QuerySuppliers(ctx context.Context, opt *QuerySupplierOptions) error

	CreateOrder(ctx context.Context, order *Order) error
	UpdateOrder(ctx context.Context, order *Order) error
	QueryOrders(ctx context.Context, opt *QueryOrderOptions) error
	CountOrdersByStatus(ctx context.Context, scope OrderScope) (map[OrderStatus]int64, error)

	CreateVehicle(ctx context.Context, vehicle *Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *Vehicle) error
	QueryVehicles(ctx context.Context, opt *QueryVehicleOptions) error

	CreateInvoice(ctx context.Context, invoice *Invoice) error
	UpdateInvoice(ctx context.Context, invoice *Invoice) error
	QueryInvoices(ctx context.Context, opt *QueryInvoiceOptions) error

	// NextSequence atomically increments and returns the named counter.
	NextSequence(ctx context.Context, name string) (int64, error)

	CreateAuditLog(ctx context.Context, log *AuditLog) error
	QueryAuditLogs(ctx context.Context, opt *QueryAuditLogOptions) error
}

// RegisterOptions is a public sign-up. Role defaults to CLIENT_MANAGER and
// must belong to the CLIENT entity.
type RegisterOptions struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
	Company  string
	Address  *Address
}

type UpdateUserOptions struct {
	Name     *string
	Phone    *string
	Role     *Role
	EntityID *bson.ObjectID
	Status   *UserStatus
}

type StatusUpdateOptions struct {
	Status OrderStatus
	Notes  string
}

type TrackingUpdateOptions struct {
	Status   *OrderStatus
	Location string
	Notes    string
}

// SummaryReport is the dashboard report.
type SummaryReport struct {
	OrdersByStatus map[OrderStatus]int64 `json:"ordersByStatus"`
	TotalOrders    int64                 `json:"totalOrders"`
	Invoices       InvoiceTotals         `json:"invoices"`
	GeneratedAt    int64                 `json:"generatedAt"`
}

type Service interface {
	Login(ctx context.Context, identifier, password string) (*Session, error)
	Register(ctx context.Context, opt RegisterOptions) (*Session, error)
	VerifyToken(ctx context.Context, tokenString string) (*Principal, error)
	GetSelf(ctx context.Context, operator *Principal) (*User, error)
	ChangePassword(ctx context.Context, operator *Principal, oldPassword, newPassword string) error
	CreateAdminUserIfNotExists(ctx context.Context, email, password string) error

	CreateUser(ctx context.Context, operator *Principal, user *User) error
	UpdateUser(ctx context.Context, operator *Principal, id string, opt UpdateUserOptions) (*User, error)
	DeleteUser(ctx context.Context, operator *Principal, id string) error
	GetUser(ctx context.Context, operator *Principal, id string) (*User, error)
	QueryUsers(ctx context.Context, operator *Principal, opt *QueryUserOptions) error

	CreateCustomer(ctx context.Context, operator *Principal, customer *Customer) error
	UpdateCustomer(ctx context.Context, operator *Principal, customer *Customer) error
	DeleteCustomer(ctx context.Context, operator *Principal, id string) error
	GetCustomer(ctx context.Context, operator *Principal, id string) (*Customer, error)
	QueryCustomers(ctx context.Context, operator *Principal, opt *QueryCustomerOptions) error

	CreateSupplier(ctx context.Context, operator *Principal, supplier *Supplier) error
	UpdateSupplier(ctx context.Context, operator *Principal, supplier *Supplier) error
	DeleteSupplier(ctx context.Context, operator *Principal, id string) error
	GetSupplier(ctx context.Context, operator *Principal, id string) (*Supplier, error)
	QuerySuppliers(ctx context.Context, operator *Principal, opt *QuerySupplierOptions) error

	CreateOrder(ctx context.Context, operator *Principal, order *Order) error
	UpdateOrder(ctx context.Context, operator *Principal, order *Order) error
	UpdateOrderStatus(ctx context.Context, operator *Principal, id string, opt StatusUpdateOptions) (*Order, error)
	ApproveOrder(ctx context.Context, operator *Principal, id string, notes string) (*Order, error)
	RejectOrder(ctx context.Context, operator *Principal, id string, reason string) (*Order, error)
	AddTrackingUpdate(ctx context.Context, operator *Principal, id string, opt TrackingUpdateOptions) (*Order, error)
	AddOrderDocument(ctx context.Context, operator *Principal, id string, doc OrderDocument) (*Order, error)
	DeleteOrder(ctx context.Context, operator *Principal, id string) error
	GetOrder(ctx context.Context, operator *Principal, id string) (*Order, error)
	QueryOrders(ctx context.Context, operator *Principal, opt *QueryOrderOptions) error

	CreateVehicle(ctx context.Context, operator *Principal, vehicle *Vehicle) error
	UpdateVehicle(ctx context.Context, operator *Principal, vehicle *Vehicle) error
	GetVehicle(ctx context.Context, operator *Principal, id string) (*Vehicle, error)
	QueryVehicles(ctx context.Context, operator *Principal, opt *QueryVehicleOptions) error

	CreateInvoice(ctx context.Context, operator *Principal, invoice *Invoice) error
	UpdateInvoice(ctx context.Context, operator *Principal, invoice *Invoice) error
	DeleteInvoice(ctx context.Context, operator *Principal, id string) error
	GetInvoice(ctx context.Context, operator *Principal, id string) (*Invoice, error)
	QueryInvoices(ctx context.Context, operator *Principal, opt *QueryInvoiceOptions) error
	RecordPayment(ctx context.Context, operator *Principal, id string, payment Payment) (*Invoice, error)
	RenderInvoicePDF(ctx context.Context, operator *Principal, id string) ([]byte, error)

	GetSummaryReport(ctx context.Context, operator *Principal) (*SummaryReport, error)
	QueryAuditLogs(ctx context.Context, operator *Principal, opt *QueryAuditLogOptions) error
}
