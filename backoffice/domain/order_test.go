package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func money(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseMoney(s)
	require.NoError(t, err)
	return m
}

func TestPricingRecalculate(t *testing.T) {
	p := Pricing{
		BasePrice: money(t, "1000.10"),
		AdditionalCharges: []Charge{
			{Description: "fuel", Amount: money(t, "0.10")},
			{Description: "handling", Amount: money(t, "0.20")},
		},
		Discount: money(t, "100"),
		Tax:      money(t, "135.06"),
	}
	p.Recalculate()
	assert.Equal(t, "1035.46", p.TotalAmount.StringFixed(2))
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "ORD-2024-000042", FormatOrderNumber(2024, 42))
	assert.Equal(t, "INV-2025-000001", FormatInvoiceNumber(2025, 1))
}

func TestOrderOwnershipAndScope(t *testing.T) {
	customerID := bson.NewObjectID()
	supplierID := bson.NewObjectID()
	order := &Order{CustomerID: customerID, SupplierID: supplierID}

	client := mustPrincipal(t, RoleClientManager, customerID.Hex())
	otherClient := mustPrincipal(t, RoleClientManager, bson.NewObjectID().Hex())
	supplier := mustPrincipal(t, RoleSupplierManager, supplierID.Hex())
	broker := mustPrincipal(t, RoleCustomsBroker, "")
	unbound := mustPrincipal(t, RoleClientSupervisor, "")

	assert.True(t, CanViewOrder(client, order))
	assert.True(t, CanEditOrder(client, order))
	assert.False(t, CanViewOrder(otherClient, order))
	assert.True(t, CanViewOrder(supplier, order))
	assert.False(t, CanEditOrder(supplier, order), "SUPPLIER_MANAGER has no edit permission")
	assert.True(t, CanViewOrder(broker, order))
	assert.True(t, CanEditOrder(broker, order))
	assert.False(t, CanViewOrder(unbound, order))

	assert.True(t, CanDecideOrder(supplier, order, ApproveOrder))
	assert.False(t, CanDecideOrder(mustPrincipal(t, RoleSupplierManager, bson.NewObjectID().Hex()), order, ApproveOrder))
	assert.True(t, CanDecideOrder(mustPrincipal(t, RoleClearanceManager, ""), order, RejectOrder))
	assert.False(t, CanDecideOrder(broker, order, ApproveOrder))

	assert.Equal(t, OrderScope{All: true}, OrderScopeFor(broker))
	assert.Equal(t, OrderScope{CustomerID: customerID}, OrderScopeFor(client))
	assert.Equal(t, OrderScope{SupplierID: supplierID}, OrderScopeFor(supplier))
	assert.True(t, OrderScopeFor(unbound).Empty())
	assert.True(t, OrderScopeFor(mustPrincipal(t, RoleAccountant, "")).Empty())
}

func TestOrderDefaultsAndTracking(t *testing.T) {
	o := &Order{Pricing: Pricing{BasePrice: money(t, "50")}}
	o.ApplyDefaults()
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, PriorityMedium, o.Priority)
	assert.Equal(t, ClearancePending, o.CustomsInfo.ClearanceStatus)
	assert.Equal(t, "50", o.Pricing.TotalAmount.String())
	assert.True(t, o.Decidable())

	o.AddTrackingUpdate(OrderStatusInTransit, "", "left warehouse", bson.NilObjectID)
	require.Len(t, o.Tracking.Updates, 1)
	assert.Equal(t, "Unknown", o.Tracking.Updates[0].Location)

	o.Status = OrderStatusCancelled
	assert.False(t, o.Decidable())

	for status, want := range map[OrderStatus]bool{
		OrderStatusPending:   true,
		OrderStatusOnHold:    true,
		OrderStatusConfirmed: false,
		OrderStatusInTransit: false,
		OrderStatusDelivered: false,
	} {
		o.Status = status
		o.CustomsInfo.ClearanceStatus = ClearancePending
		assert.Equal(t, want, o.Decidable(), "status %s", status)
	}
	o.Status = OrderStatusPending
	o.CustomsInfo.ClearanceStatus = ClearanceCleared
	assert.False(t, o.Decidable(), "cleared orders are already decided")

	assert.True(t, TrackingStatus(OrderStatusInTransit))
	assert.True(t, TrackingStatus(OrderStatusDelivered))
	assert.False(t, TrackingStatus(OrderStatusCancelled))
	assert.False(t, TrackingStatus(OrderStatusConfirmed))
}

func TestPaginationBounds(t *testing.T) {
	p := &Pagination{Page: 1 << 62, Limit: 1 << 40}
	p.Normalize()
	assert.EqualValues(t, MaxPage, p.Page)
	assert.EqualValues(t, MaxPageLimit, p.Limit)
	assert.EqualValues(t, (MaxPage-1)*MaxPageLimit, p.Skip())

	raw := Pagination{Page: 1 << 62, Limit: 50}
	assert.Positive(t, raw.Skip(), "skip never wraps negative")

	assert.Zero(t, Pagination{Page: 0, Limit: 10}.Skip())
	assert.EqualValues(t, 20, Pagination{Page: 3, Limit: 10}.Skip())
}

func TestInvoicePayments(t *testing.T) {
	inv := &Invoice{
		Items: []InvoiceItem{
			{Description: "freight", Quantity: 2, UnitPrice: money(t, "100.25")},
			{Description: "customs", Quantity: 1, UnitPrice: money(t, "50")},
		},
		Tax:    money(t, "37.58"),
		Status: InvoiceDraft,
	}
	inv.Recalculate()
	assert.Equal(t, "250.50", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "288.08", inv.Total.StringFixed(2))

	err := inv.RecordPayment(Payment{Amount: money(t, "10")})
	assert.ErrorIs(t, err, ErrInvoiceNotPayable)

	inv.Status = InvoiceIssued
	require.NoError(t, inv.RecordPayment(Payment{Amount: money(t, "88.08"), Method: PaymentCash}))
	assert.Equal(t, InvoicePartiallyPaid, inv.Status)
	assert.Equal(t, "200.00", inv.Outstanding().StringFixed(2))

	err = inv.RecordPayment(Payment{Amount: money(t, "200.01")})
	assert.ErrorIs(t, err, ErrOverpayment)

	require.NoError(t, inv.RecordPayment(Payment{Amount: money(t, "200")}))
	assert.Equal(t, InvoicePaid, inv.Status)
	assert.True(t, inv.Outstanding().IsZero())
}

func TestCanViewInvoice(t *testing.T) {
	customerID := bson.NewObjectID()
	inv := &Invoice{CustomerID: customerID}

	assert.True(t, CanViewInvoice(mustPrincipal(t, RoleAccountant, ""), inv))
	assert.True(t, CanViewInvoice(mustPrincipal(t, RoleClientManager, customerID.Hex()), inv))
	assert.False(t, CanViewInvoice(mustPrincipal(t, RoleClientSupervisor, customerID.Hex()), inv), "no VIEW_INVOICES")
	assert.False(t, CanViewInvoice(mustPrincipal(t, RoleSupplierManager, customerID.Hex()), inv))
	assert.False(t, CanViewInvoice(mustPrincipal(t, RoleDriver, ""), inv))
}

func TestUserEntityBinding(t *testing.T) {
	u := &User{Entity: EntityClient, Role: RoleClientManager}
	assert.ErrorIs(t, u.ValidateEntityBinding(), ErrMissingEntityID)
	u.EntityID = bson.NewObjectID()
	assert.NoError(t, u.ValidateEntityBinding())

	staff := &User{Entity: EntityPro, Role: RoleDriver, EntityID: bson.NewObjectID()}
	assert.ErrorIs(t, staff.ValidateEntityBinding(), ErrUnexpectedEntityID)

	mismatched := &User{Entity: EntityPro, Role: RoleClientManager}
	_, err := mismatched.Principal()
	assert.ErrorIs(t, err, ErrRoleEntityMismatch)
}
