package domain

import "slices"

// Action names a privileged operation. Every REST route and service call resolves
// its requirement through GuardFor, so the server and the UI read the same table.
type Action string

const (
	ActionSelfRead       Action = "self.read"
	ActionSelfPassword   Action = "self.password"
	ActionPermissionRead Action = "permission.read"

	ActionUserList   Action = "user.list"
	ActionUserCreate Action = "user.create"
	ActionUserUpdate Action = "user.update"
	ActionUserDelete Action = "user.delete"

	ActionCustomerList   Action = "customer.list"
	ActionCustomerRead   Action = "customer.read"
	ActionCustomerCreate Action = "customer.create"
	ActionCustomerUpdate Action = "customer.update"
	ActionCustomerDelete Action = "customer.delete"

	ActionSupplierList   Action = "supplier.list"
	ActionSupplierRead   Action = "supplier.read"
	ActionSupplierCreate Action = "supplier.create"
	ActionSupplierUpdate Action = "supplier.update"
	ActionSupplierDelete Action = "supplier.delete"

	ActionOrderList     Action = "order.list"
	ActionOrderCreate   Action = "order.create"
	ActionOrderUpdate   Action = "order.update"
	ActionOrderStatus   Action = "order.status"
	ActionOrderApprove  Action = "order.approve"
	ActionOrderReject   Action = "order.reject"
	ActionOrderTracking Action = "order.tracking"
	ActionOrderDocument Action = "order.document"
	ActionOrderDelete   Action = "order.delete"

	ActionVehicleList   Action = "vehicle.list"
	ActionVehicleCreate Action = "vehicle.create"
	ActionVehicleUpdate Action = "vehicle.update"

	ActionInvoiceList    Action = "invoice.list"
	ActionInvoiceCreate  Action = "invoice.create"
	ActionInvoiceUpdate  Action = "invoice.update"
	ActionInvoiceDelete  Action = "invoice.delete"
	ActionInvoicePayment Action = "invoice.payment"

	ActionReportRead   Action = "report.read"
	ActionAuditLogRead Action = "audit_log.read"
)

var guards = map[Action]Requirement{
	ActionSelfRead:       Authenticated,
	ActionSelfPassword:   Authenticated,
	ActionPermissionRead: Authenticated,

	ActionUserList:   RequirePermissions(ViewUsers),
	ActionUserCreate: RequirePermissions(CreateUser),
	ActionUserUpdate: RequirePermissions(EditUser),
	ActionUserDelete: RequirePermissions(DeleteUser),

	ActionCustomerList: RequirePermissions(ViewClients),
	// ownership for CLIENT principals is checked by the service
	ActionCustomerRead:   RequirePermissions(ViewClients, ViewOwnOrders),
	ActionCustomerCreate: RequirePermissions(CreateClient),
	ActionCustomerUpdate: RequirePermissions(EditClient),
	ActionCustomerDelete: RequirePermissions(DeleteClient),

	ActionSupplierList:   RequirePermissions(ViewSuppliers),
	ActionSupplierRead:   RequirePermissions(ViewSuppliers, ViewOwnOrders),
	ActionSupplierCreate: RequirePermissions(CreateSupplier),
	ActionSupplierUpdate: RequirePermissions(EditSupplier),
	ActionSupplierDelete: RequirePermissions(DeleteSupplier),

	ActionOrderList:     RequirePermissions(ViewAllOrders, ViewOwnOrders),
	ActionOrderCreate:   RequirePermissions(CreateOrder),
	ActionOrderUpdate:   RequirePermissions(EditOrder, EditOwnOrders),
	ActionOrderStatus:   RequirePermissions(EditOrder),
	ActionOrderApprove:  RequirePermissions(ApproveOrder),
	ActionOrderReject:   RequirePermissions(RejectOrder),
	ActionOrderTracking: RequirePermissions(DriveVehicles),
	ActionOrderDocument: RequirePermissions(EnterData, TranslateDocuments),
	ActionOrderDelete:   RequirePermissions(DeleteOrder),

	ActionVehicleList:   RequireEntities(EntityPro),
	ActionVehicleCreate: RequireRoles(RoleGeneralManager, RoleOperationsManager),
	ActionVehicleUpdate: RequireRoles(RoleGeneralManager, RoleOperationsManager),

	ActionInvoiceList:    RequirePermissions(ViewInvoices),
	ActionInvoiceCreate:  RequirePermissions(CreateInvoice),
	ActionInvoiceUpdate:  RequirePermissions(EditInvoice),
	ActionInvoiceDelete:  RequirePermissions(DeleteInvoice),
	ActionInvoicePayment: RequirePermissions(ManagePayments),

	ActionReportRead:   RequirePermissions(ViewReports),
	ActionAuditLogRead: RequireRoles(RoleGeneralManager),
}

// GuardFor returns the requirement of an action. Unknown actions get a requirement
// nobody satisfies.
func GuardFor(a Action) Requirement {
	req, ok := guards[a]
	if !ok {
		return Requirement{Permissions: []Permission{}, Roles: []Role{""}}
	}
	return req
}

// Allowed is Authorize applied to the guard of a.
func Allowed(p *Principal, a Action) bool {
	return Authorize(p, GuardFor(a))
}

// GuardTable exports a copy of every action requirement.
func GuardTable() map[Action]Requirement {
	out := make(map[Action]Requirement, len(guards))
	for a, req := range guards {
		out[a] = Requirement{
			Permissions: slices.Clone(req.Permissions),
			Roles:       slices.Clone(req.Roles),
			Entities:    slices.Clone(req.Entities),
		}
	}
	return out
}

// AllowedActions lists the actions p may perform.
func AllowedActions(p *Principal) []Action {
	out := []Action{}
	for a := range guards {
		if Allowed(p, a) {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	return out
}
