package domain

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// EntityType is the organizational category a user belongs to.
type EntityType string

const (
	EntityPro      EntityType = "PRO"
	EntityClient   EntityType = "CLIENT"
	EntitySupplier EntityType = "SUPPLIER"
)

var AllEntityTypes = []EntityType{EntityPro, EntityClient, EntitySupplier}

func (e EntityType) Valid() bool {
	return slices.Contains(AllEntityTypes, e)
}

func ParseEntityType(s string) (EntityType, error) {
	e := EntityType(strings.TrimSpace(s))
	if !e.Valid() {
		return "", errors.Wrapf(ErrUnknownEntity, "entity %q", s)
	}
	return e, nil
}

// Role is a job function within an entity type.
type Role string

const (
	RoleGeneralManager    Role = "GENERAL_MANAGER"
	RoleClearanceManager  Role = "CLEARANCE_MANAGER"
	RoleOperationsManager Role = "OPERATIONS_MANAGER"
	RoleTranslator        Role = "TRANSLATOR"
	RoleCustomsBroker     Role = "CUSTOMS_BROKER"
	RoleDriver            Role = "DRIVER"
	RoleAccountant        Role = "ACCOUNTANT"
	RoleDataEntry         Role = "DATA_ENTRY"

	RoleClientManager    Role = "CLIENT_MANAGER"
	RoleClientSupervisor Role = "CLIENT_SUPERVISOR"
	RoleClientDataEntry  Role = "CLIENT_DATA_ENTRY"

	RoleSupplierManager    Role = "SUPPLIER_MANAGER"
	RoleSupplierSupervisor Role = "SUPPLIER_SUPERVISOR"
	RoleSupplierDataEntry  Role = "SUPPLIER_DATA_ENTRY"
)

var AllRoles = []Role{
	RoleGeneralManager,
	RoleClearanceManager,
	RoleOperationsManager,
	RoleTranslator,
	RoleCustomsBroker,
	RoleDriver,
	RoleAccountant,
	RoleDataEntry,
	RoleClientManager,
	RoleClientSupervisor,
	RoleClientDataEntry,
	RoleSupplierManager,
	RoleSupplierSupervisor,
	RoleSupplierDataEntry,
}

// legacyRoles are role names from the previous server vocabulary. They are
// recognised only so that they can be rejected with a precise error.
var legacyRoles = map[string]struct{}{
	"admin":    {},
	"employee": {},
	"client":   {},
	"supplier": {},
}

// ParseRole accepts only the canonical role vocabulary.
func ParseRole(s string) (Role, error) {
	if _, ok := legacyRoles[strings.ToLower(strings.TrimSpace(s))]; ok {
		return "", errors.Wrapf(ErrLegacyRole, "role %q", s)
	}
	r := Role(s)
	if _, ok := roleEntity[r]; !ok {
		return "", errors.Wrapf(ErrUnknownRole, "role %q", s)
	}
	return r, nil
}

// Entity returns the entity type the role belongs to.
func (r Role) Entity() (EntityType, bool) {
	e, ok := roleEntity[r]
	return e, ok
}

func (r Role) Valid() bool {
	_, ok := roleEntity[r]
	return ok
}

// roleEntity scopes every role to exactly one entity type.
var roleEntity = map[Role]EntityType{
	RoleGeneralManager:     EntityPro,
	RoleClearanceManager:   EntityPro,
	RoleOperationsManager:  EntityPro,
	RoleTranslator:         EntityPro,
	RoleCustomsBroker:      EntityPro,
	RoleDriver:             EntityPro,
	RoleAccountant:         EntityPro,
	RoleDataEntry:          EntityPro,
	RoleClientManager:      EntityClient,
	RoleClientSupervisor:   EntityClient,
	RoleClientDataEntry:    EntityClient,
	RoleSupplierManager:    EntitySupplier,
	RoleSupplierSupervisor: EntitySupplier,
	RoleSupplierDataEntry:  EntitySupplier,
}

// RolesOf returns the roles of an entity type in declaration order.
func RolesOf(entity EntityType) []Role {
	roles := []Role{}
	for _, r := range AllRoles {
		if roleEntity[r] == entity {
			roles = append(roles, r)
		}
	}
	return roles
}

// Permission is an opaque capability token. There is no implication between tokens.
type Permission string

const (
	ViewAllOrders      Permission = "VIEW_ALL_ORDERS"
	CreateOrder        Permission = "CREATE_ORDER"
	EditOrder          Permission = "EDIT_ORDER"
	DeleteOrder        Permission = "DELETE_ORDER"
	ApproveOrder       Permission = "APPROVE_ORDER"
	RejectOrder        Permission = "REJECT_ORDER"
	ViewClients        Permission = "VIEW_CLIENTS"
	CreateClient       Permission = "CREATE_CLIENT"
	EditClient         Permission = "EDIT_CLIENT"
	DeleteClient       Permission = "DELETE_CLIENT"
	ViewSuppliers      Permission = "VIEW_SUPPLIERS"
	CreateSupplier     Permission = "CREATE_SUPPLIER"
	EditSupplier       Permission = "EDIT_SUPPLIER"
	DeleteSupplier     Permission = "DELETE_SUPPLIER"
	ViewUsers          Permission = "VIEW_USERS"
	CreateUser         Permission = "CREATE_USER"
	EditUser           Permission = "EDIT_USER"
	DeleteUser         Permission = "DELETE_USER"
	ViewInvoices       Permission = "VIEW_INVOICES"
	CreateInvoice      Permission = "CREATE_INVOICE"
	EditInvoice        Permission = "EDIT_INVOICE"
	DeleteInvoice      Permission = "DELETE_INVOICE"
	ViewReports        Permission = "VIEW_REPORTS"
	TranslateDocuments Permission = "TRANSLATE_DOCUMENTS"
	DriveVehicles      Permission = "DRIVE_VEHICLES"
	ManagePayments     Permission = "MANAGE_PAYMENTS"
	EnterData          Permission = "ENTER_DATA"
	ViewOwnOrders      Permission = "VIEW_OWN_ORDERS"
	EditOwnOrders      Permission = "EDIT_OWN_ORDERS"
)

var AllPermissions = []Permission{
	ViewAllOrders, CreateOrder, EditOrder, DeleteOrder, ApproveOrder, RejectOrder,
	ViewClients, CreateClient, EditClient, DeleteClient,
	ViewSuppliers, CreateSupplier, EditSupplier, DeleteSupplier,
	ViewUsers, CreateUser, EditUser, DeleteUser,
	ViewInvoices, CreateInvoice, EditInvoice, DeleteInvoice,
	ViewReports, TranslateDocuments, DriveVehicles, ManagePayments, EnterData,
	ViewOwnOrders, EditOwnOrders,
}

// rolePermissions is the only place the role to permission mapping is defined.
// GENERAL_MANAGER is absent on purpose: it receives AllPermissions.
var rolePermissions = map[Role][]Permission{
	RoleClearanceManager:  {ViewAllOrders, EditOrder, ApproveOrder, RejectOrder, ViewClients, ViewSuppliers, ViewInvoices, ViewReports},
	RoleOperationsManager: {ViewAllOrders, CreateOrder, EditOrder, ApproveOrder, RejectOrder, ViewClients, ViewSuppliers, ViewInvoices, ViewReports},
	RoleTranslator:        {ViewAllOrders, TranslateDocuments},
	RoleCustomsBroker:     {ViewAllOrders, EditOrder},
	RoleDriver:            {ViewAllOrders, DriveVehicles},
	RoleAccountant:        {ViewInvoices, CreateInvoice, EditInvoice, ManagePayments, ViewReports},
	RoleDataEntry:         {EnterData, ViewAllOrders, CreateOrder, EditOrder},

	RoleClientManager:    {ViewOwnOrders, CreateOrder, EditOwnOrders, ViewInvoices},
	RoleClientSupervisor: {ViewOwnOrders, CreateOrder, EditOwnOrders},
	RoleClientDataEntry:  {ViewOwnOrders, CreateOrder, EnterData},

	RoleSupplierManager:    {ViewOwnOrders, ApproveOrder, RejectOrder, ViewInvoices},
	RoleSupplierSupervisor: {ViewOwnOrders, EditOwnOrders},
	RoleSupplierDataEntry:  {ViewOwnOrders, EnterData},
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// HasAny reports whether at least one of perms is in the set.
func (s PermissionSet) HasAny(perms ...Permission) bool {
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// List returns the permissions in AllPermissions order.
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s))
	for _, p := range AllPermissions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s PermissionSet) IsSubsetOf(other PermissionSet) bool {
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

func (s PermissionSet) Equal(other PermissionSet) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// DerivePermissions returns a fresh permission set for role. An unknown role yields
// an empty set.
func DerivePermissions(role Role) PermissionSet {
	if role == RoleGeneralManager {
		return NewPermissionSet(AllPermissions...)
	}
	return NewPermissionSet(rolePermissions[role]...)
}

// RoleDefinition is one row of the exported role table.
type RoleDefinition struct {
	Role        Role         `json:"role"`
	Entity      EntityType   `json:"entity"`
	Permissions []Permission `json:"permissions"`
}

// RoleTable exports the role table for consumers outside the server process.
func RoleTable() []RoleDefinition {
	table := make([]RoleDefinition, 0, len(AllRoles))
	for _, r := range AllRoles {
		table = append(table, RoleDefinition{
			Role:        r,
			Entity:      roleEntity[r],
			Permissions: DerivePermissions(r).List(),
		})
	}
	return table
}
