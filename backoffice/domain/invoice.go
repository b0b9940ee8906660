package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoiceIssued        InvoiceStatus = "issued"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceCancelled     InvoiceStatus = "cancelled"
)

var InvoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoiceIssued, InvoicePartiallyPaid, InvoicePaid, InvoiceCancelled}

func (s InvoiceStatus) Valid() bool { return slices.Contains(InvoiceStatuses, s) }

type InvoiceItem struct {
	Description string `bson:"description,omitempty" json:"description" validate:"required"`
	Quantity    int64  `bson:"quantity" json:"quantity" validate:"gt=0"`
	UnitPrice   Money  `bson:"unitPrice" json:"unitPrice"`
}

func (i InvoiceItem) Amount() Money {
	return NewMoney(i.UnitPrice.Decimal.Mul(decimal.NewFromInt(i.Quantity)))
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCard         PaymentMethod = "card"
	PaymentCheque       PaymentMethod = "cheque"
)

type Payment struct {
	Amount     Money         `bson:"amount"`
	Method     PaymentMethod `bson:"method,omitempty"`
	Reference  string        `bson:"reference,omitempty"`
	PaidAt     int64         `bson:"paidAt,omitempty"`
	RecordedBy bson.ObjectID `bson:"recordedBy,omitempty"`
}

type Invoice struct {
	BaseEntity    `bson:",inline"`
	InvoiceNumber string        `bson:"invoiceNumber,omitempty"`
	OrderID       bson.ObjectID `bson:"order,omitempty"`
	CustomerID    bson.ObjectID `bson:"customer,omitempty"`
	SupplierID    bson.ObjectID `bson:"supplier,omitempty"`
	Items         []InvoiceItem `bson:"items,omitempty"`
	Subtotal      Money         `bson:"subtotal"`
	Tax           Money         `bson:"tax"`
	Total         Money         `bson:"total"`
	Currency      string        `bson:"currency,omitempty"`
	DueDate       int64         `bson:"dueDate,omitempty"`
	Status        InvoiceStatus `bson:"status,omitempty"`
	Payments      []Payment     `bson:"payments,omitempty"`
	Notes         string        `bson:"notes,omitempty"`
}

const DefaultCurrency = "SAR"

// FormatInvoiceNumber renders the INV-<year>-<seq> invoice number.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%06d", year, seq)
}

// Recalculate sets Subtotal from the items and Total = Subtotal + Tax.
func (inv *Invoice) Recalculate() {
	amounts := make([]Money, 0, len(inv.Items))
	for _, item := range inv.Items {
		amounts = append(amounts, item.Amount())
	}
	inv.Subtotal = SumMoney(amounts...)
	inv.Total = inv.Subtotal.Plus(inv.Tax)
}

func (inv *Invoice) PaidAmount() Money {
	amounts := make([]Money, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		amounts = append(amounts, p.Amount)
	}
	return SumMoney(amounts...)
}

func (inv *Invoice) Outstanding() Money {
	return inv.Total.Minus(inv.PaidAmount())
}

// RecordPayment appends a payment and moves the invoice to partially_paid or paid.
func (inv *Invoice) RecordPayment(p Payment) error {
	if inv.Status != InvoiceIssued && inv.Status != InvoicePartiallyPaid {
		return errors.Wrapf(ErrInvoiceNotPayable, "invoice status %s", inv.Status)
	}
	if !p.Amount.IsPositive() {
		return errors.New("payment amount must be positive")
	}
	outstanding := inv.Outstanding()
	if p.Amount.GreaterThan(outstanding.Decimal) {
		return errors.Wrapf(ErrOverpayment, "outstanding %s, paid %s", outstanding.String(), p.Amount.String())
	}
	if p.PaidAt == 0 {
		p.PaidAt = time.Now().UnixMilli()
	}
	inv.Payments = append(inv.Payments, p)
	if inv.Outstanding().IsZero() {
		inv.Status = InvoicePaid
	} else {
		inv.Status = InvoicePartiallyPaid
	}
	return nil
}

// CanViewInvoice scopes invoice visibility: PRO principals see every invoice, partner
// principals only those of their own customer or supplier.
func CanViewInvoice(p *Principal, inv *Invoice) bool {
	if !p.HasPermission(ViewInvoices) || inv == nil {
		return false
	}
	switch p.Entity() {
	case EntityPro:
		return true
	case EntityClient:
		return p.OwnsCustomer(inv.CustomerID.Hex())
	case EntitySupplier:
		return !inv.SupplierID.IsZero() && p.OwnsSupplier(inv.SupplierID.Hex())
	}
	return false
}

func SumMoney(values ...Money) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.Decimal)
	}
	return NewMoney(total)
}
