package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrincipal(t *testing.T, role Role, entityID string) *Principal {
	t.Helper()
	m, err := MembershipForRole(role)
	require.NoError(t, err)
	p, err := NewPrincipal(m, PrincipalOptions{UserID: "u1", Name: "tester", Email: "t@example.com", EntityID: entityID})
	require.NoError(t, err)
	return p
}

func TestDerivePermissionsIsDeterministic(t *testing.T) {
	for _, role := range AllRoles {
		first := DerivePermissions(role)
		second := DerivePermissions(role)
		assert.True(t, first.Equal(second), "role %s should derive the same set twice", role)
	}
}

func TestDerivePermissionsReturnsFreshSet(t *testing.T) {
	set := DerivePermissions(RoleDriver)
	set[DeleteUser] = struct{}{}
	assert.False(t, DerivePermissions(RoleDriver).Has(DeleteUser))
}

func TestGeneralManagerIsSuperset(t *testing.T) {
	gm := DerivePermissions(RoleGeneralManager)
	assert.Len(t, gm, len(AllPermissions))
	for _, role := range AllRoles {
		assert.True(t, DerivePermissions(role).IsSubsetOf(gm), "GENERAL_MANAGER should cover %s", role)
	}
}

func TestClientRolesStayWithinClientFamily(t *testing.T) {
	allowed := NewPermissionSet(ViewOwnOrders, CreateOrder, EditOwnOrders, EnterData, ViewInvoices)
	for _, role := range AllRoles {
		if !strings.HasPrefix(string(role), "CLIENT_") {
			continue
		}
		assert.True(t, DerivePermissions(role).IsSubsetOf(allowed), "client role %s leaks permissions", role)
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	set := DerivePermissions(Role("NOT_A_REAL_ROLE"))
	assert.Empty(t, set)
	for _, p := range AllPermissions {
		assert.False(t, set.Has(p))
	}
}

func TestRoleTableMatchesRolePermissions(t *testing.T) {
	expected := map[Role][]Permission{
		RoleClearanceManager:   {ViewAllOrders, EditOrder, ApproveOrder, RejectOrder, ViewClients, ViewSuppliers, ViewInvoices, ViewReports},
		RoleOperationsManager:  {ViewAllOrders, CreateOrder, EditOrder, ApproveOrder, RejectOrder, ViewClients, ViewSuppliers, ViewInvoices, ViewReports},
		RoleTranslator:         {ViewAllOrders, TranslateDocuments},
		RoleCustomsBroker:      {ViewAllOrders, EditOrder},
		RoleDriver:             {ViewAllOrders, DriveVehicles},
		RoleAccountant:         {ViewInvoices, CreateInvoice, EditInvoice, ManagePayments, ViewReports},
		RoleDataEntry:          {EnterData, ViewAllOrders, CreateOrder, EditOrder},
		RoleClientManager:      {ViewOwnOrders, CreateOrder, EditOwnOrders, ViewInvoices},
		RoleClientSupervisor:   {ViewOwnOrders, CreateOrder, EditOwnOrders},
		RoleClientDataEntry:    {ViewOwnOrders, CreateOrder, EnterData},
		RoleSupplierManager:    {ViewOwnOrders, ApproveOrder, RejectOrder, ViewInvoices},
		RoleSupplierSupervisor: {ViewOwnOrders, EditOwnOrders},
		RoleSupplierDataEntry:  {ViewOwnOrders, EnterData},
	}
	table := RoleTable()
	require.Len(t, table, len(AllRoles))
	for _, row := range table {
		if row.Role == RoleGeneralManager {
			assert.Equal(t, AllPermissions, row.Permissions)
			continue
		}
		assert.ElementsMatch(t, expected[row.Role], row.Permissions, "role %s", row.Role)
	}
}

func TestEveryRoleHasExactlyOneEntity(t *testing.T) {
	for _, role := range AllRoles {
		owner, ok := role.Entity()
		require.True(t, ok, "role %s has no entity", role)
		for _, entity := range AllEntityTypes {
			_, err := NewMembership(entity, role)
			if entity == owner {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrRoleEntityMismatch)
			}
		}
	}
	assert.Len(t, RolesOf(EntityPro), 8)
	assert.Len(t, RolesOf(EntityClient), 3)
	assert.Len(t, RolesOf(EntitySupplier), 3)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("GENERAL_MANAGER")
	require.NoError(t, err)
	assert.Equal(t, RoleGeneralManager, role)

	for _, legacy := range []string{"admin", "employee", "client", "supplier", "Admin"} {
		_, err := ParseRole(legacy)
		assert.ErrorIs(t, err, ErrLegacyRole, legacy)
	}

	_, err = ParseRole("general_manager")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestNilPrincipalIsDenied(t *testing.T) {
	var p *Principal
	for _, perm := range AllPermissions {
		assert.False(t, p.HasPermission(perm))
	}
	for _, role := range AllRoles {
		assert.False(t, p.IsRole(role))
	}
	for _, entity := range AllEntityTypes {
		assert.False(t, p.IsEntity(entity))
	}
	assert.False(t, Authorize(nil, Requirement{}))
	assert.Empty(t, p.Permissions())
}

func TestAuthorizeSemantics(t *testing.T) {
	accountant := mustPrincipal(t, RoleAccountant, "")

	assert.True(t, Authorize(accountant, Requirement{}), "empty requirement grants any principal")
	assert.True(t, Authorize(accountant, RequirePermissions(ViewInvoices, ViewClients)), "OR within permissions")
	assert.False(t, Authorize(accountant, Requirement{
		Permissions: []Permission{ViewInvoices},
		Roles:       []Role{RoleDriver},
	}), "AND across dimensions")
	assert.True(t, Authorize(accountant, Requirement{
		Permissions: []Permission{ViewInvoices},
		Roles:       []Role{RoleDriver, RoleAccountant},
		Entities:    []EntityType{EntityPro},
	}))
}

func TestAccountantScenario(t *testing.T) {
	p := mustPrincipal(t, RoleAccountant, "")
	assert.ElementsMatch(t, []Permission{ViewInvoices, CreateInvoice, EditInvoice, ManagePayments, ViewReports}, p.Permissions())
	assert.False(t, Authorize(p, RequirePermissions(ViewClients)))
	assert.True(t, Authorize(p, RequirePermissions(ViewInvoices, ViewReports)))
}

func TestClientDataEntryScenario(t *testing.T) {
	m, err := NewMembership(EntityClient, RoleClientDataEntry)
	require.NoError(t, err)
	p, err := NewPrincipal(m, PrincipalOptions{UserID: "u2", EntityID: "CUST001"})
	require.NoError(t, err)

	assert.False(t, Authorize(p, RequireEntities(EntitySupplier)))
	assert.False(t, Authorize(p, RequirePermissions(ApproveOrder)))
	assert.True(t, Authorize(p, RequireEntities(EntityClient)))
	assert.True(t, Authorize(p, RequirePermissions(EnterData)))
	assert.True(t, p.OwnsCustomer("CUST001"))
	assert.False(t, p.OwnsSupplier("CUST001"))
}

func TestPrincipalJSONRederivesPermissions(t *testing.T) {
	blob := []byte(`{"id":"u3","name":"Sam","email":"sam@example.com","role":"DRIVER","entity":"PRO","permissions":["DELETE_USER","VIEW_USERS"]}`)
	var p Principal
	require.NoError(t, json.Unmarshal(blob, &p))
	assert.ElementsMatch(t, []Permission{ViewAllOrders, DriveVehicles}, p.Permissions())
	assert.False(t, p.HasPermission(DeleteUser))

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"permissions":["VIEW_ALL_ORDERS","DRIVE_VEHICLES"]`)
}

func TestPrincipalJSONRejectsInvalidPairs(t *testing.T) {
	var p Principal
	err := json.Unmarshal([]byte(`{"id":"u4","role":"CLIENT_MANAGER","entity":"PRO"}`), &p)
	assert.ErrorIs(t, err, ErrRoleEntityMismatch)

	err = json.Unmarshal([]byte(`{"id":"u5","role":"admin"}`), &p)
	assert.ErrorIs(t, err, ErrLegacyRole)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"u6","role":"SUPPLIER_MANAGER"}`), &p))
	assert.Equal(t, EntitySupplier, p.Entity())
}

func TestRestoreSession(t *testing.T) {
	blob := []byte(`{"token":"abc","user":{"id":"u7","role":"CLIENT_MANAGER","entityId":"c1","permissions":["VIEW_ALL_ORDERS"]}}`)
	s, err := RestoreSession(blob)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.Token)
	assert.False(t, s.User.HasPermission(ViewAllOrders))
	assert.True(t, s.User.HasPermission(ViewOwnOrders))

	_, err = RestoreSession([]byte(`{"token":"abc"}`))
	assert.Error(t, err)
}

func TestGuardTableCoversRoutesConsistently(t *testing.T) {
	gm := mustPrincipal(t, RoleGeneralManager, "")
	for action := range GuardTable() {
		assert.True(t, Allowed(gm, action), "GENERAL_MANAGER should pass %s", action)
	}

	driver := mustPrincipal(t, RoleDriver, "")
	assert.True(t, Allowed(driver, ActionOrderTracking))
	assert.True(t, Allowed(driver, ActionVehicleList))
	assert.False(t, Allowed(driver, ActionVehicleCreate))
	assert.False(t, Allowed(driver, ActionAuditLogRead))

	assert.False(t, Allowed(gm, Action("unknown.action")))
}
