package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultInvoiceDue = 30 * 24 * time.Hour

func invoiceCounter(year int) string {
	return fmt.Sprintf("invoice:%d", year)
}

// editableInvoiceStatus lists the statuses an invoice may be set to directly. The paid
// statuses are only reached by recording payments.
func editableInvoiceStatus(s domain.InvoiceStatus) bool {
	return s == domain.InvoiceDraft || s == domain.InvoiceIssued || s == domain.InvoiceCancelled
}

func validateInvoiceBody(inv *domain.Invoice) error {
	if len(inv.Items) == 0 {
		return errs.BadRequest("invoice needs at least one item", errors.New("empty items"))
	}
	for _, item := range inv.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return errs.BadRequest("invalid invoice item", fmt.Errorf("item %q: quantity %d, unit price %s", item.Description, item.Quantity, item.UnitPrice.String()))
		}
	}
	if inv.Tax.IsNegative() {
		return errs.BadRequest("tax must not be negative", fmt.Errorf("tax %s", inv.Tax.String()))
	}
	if !editableInvoiceStatus(inv.Status) {
		return errs.BadRequest("invalid invoice status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", inv.Status))
	}
	return nil
}

func (svc *Service) CreateInvoice(ctx context.Context, operator *domain.Principal, invoice *domain.Invoice) error {
	if err := svc.authorize(operator, domain.ActionInvoiceCreate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if invoice == nil {
		return errs.BadRequest("invoice is required", errors.New("nil invoice"))
	}
	if invoice.OrderID.IsZero() {
		return errs.BadRequest("order is required", errors.New("missing order id"))
	}
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceDraft
	}
	if err := validateInvoiceBody(invoice); err != nil {
		return err
	}
	order, err := svc.loadOrder(ctx, invoice.OrderID.Hex())
	if err != nil {
		var httpErr *errs.HTTPStatusError
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return errs.Unprocessable("order not found", err)
		}
		return err
	}

	now := svc.now()
	seq, err := svc.Repo.NextSequence(ctx, invoiceCounter(now.Year()))
	if err != nil {
		return err
	}
	invoice.BaseEntity = domain.NewBaseEntity(util.Ptr(operatorID), util.Ptr(operatorID))
	invoice.InvoiceNumber = domain.FormatInvoiceNumber(now.Year(), seq)
	invoice.CustomerID = order.CustomerID
	invoice.SupplierID = order.SupplierID
	invoice.Payments = nil
	if invoice.Currency == "" {
		invoice.Currency = domain.DefaultCurrency
	}
	if invoice.DueDate == 0 {
		invoice.DueDate = now.Add(defaultInvoiceDue).UnixMilli()
	}
	invoice.Recalculate()
	if err := svc.Repo.CreateInvoice(ctx, invoice); err != nil {
		return repoError(err, "invoice")
	}
	svc.audit(ctx, operator, domain.ActionInvoiceCreate, invoice.ID.Hex())
	return nil
}

// UpdateInvoice replaces items, tax, due date, notes and status of an invoice that has
// no payments yet.
func (svc *Service) UpdateInvoice(ctx context.Context, operator *domain.Principal, invoice *domain.Invoice) error {
	if err := svc.authorize(operator, domain.ActionInvoiceUpdate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if invoice == nil {
		return errs.BadRequest("invoice is required", errors.New("nil invoice"))
	}
	existing, err := svc.loadInvoice(ctx, invoice.ID.Hex())
	if err != nil {
		return err
	}
	if len(existing.Payments) > 0 || existing.Status == domain.InvoiceCancelled {
		return errs.Conflict("invoice can no longer be edited", fmt.Errorf("invoice %s is %s with %d payments", existing.ID.Hex(), existing.Status, len(existing.Payments)))
	}
	if invoice.Status == "" {
		invoice.Status = existing.Status
	}
	if err := validateInvoiceBody(invoice); err != nil {
		return err
	}

	existing.Items = invoice.Items
	existing.Tax = invoice.Tax
	existing.Status = invoice.Status
	existing.Notes = invoice.Notes
	if invoice.DueDate != 0 {
		existing.DueDate = invoice.DueDate
	}
	if invoice.Currency != "" {
		existing.Currency = invoice.Currency
	}
	existing.Recalculate()
	if err := svc.saveInvoice(ctx, operator, operatorID, existing, domain.ActionInvoiceUpdate); err != nil {
		return err
	}
	*invoice = *existing
	return nil
}

func (svc *Service) DeleteInvoice(ctx context.Context, operator *domain.Principal, id string) error {
	if err := svc.authorize(operator, domain.ActionInvoiceDelete); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	invoice, err := svc.loadInvoice(ctx, id)
	if err != nil {
		return err
	}
	if len(invoice.Payments) > 0 {
		return errs.Conflict("invoice with payments cannot be deleted", fmt.Errorf("invoice %s has %d payments", id, len(invoice.Payments)))
	}
	invoice.DeletedTime = svc.now().UnixMilli()
	return svc.saveInvoice(ctx, operator, operatorID, invoice, domain.ActionInvoiceDelete)
}

func (svc *Service) GetInvoice(ctx context.Context, operator *domain.Principal, id string) (*domain.Invoice, error) {
	if err := svc.authorize(operator, domain.ActionInvoiceList); err != nil {
		return nil, err
	}
	invoice, err := svc.loadInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewInvoice(operator, invoice) {
		return nil, errs.Forbidden("access denied", fmt.Errorf("invoice %s is not visible to %s", id, operator.UserID()))
	}
	return invoice, nil
}

// QueryInvoices lists invoices. CLIENT and SUPPLIER principals only see their own.
func (svc *Service) QueryInvoices(ctx context.Context, operator *domain.Principal, opt *domain.QueryInvoiceOptions) error {
	if err := svc.authorize(operator, domain.ActionInvoiceList); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	ok := true
	if !operator.IsEntity(domain.EntityPro) {
		own, bound := entityObjectID(operator)
		switch {
		case !bound:
			ok = false
		case operator.IsEntity(domain.EntityClient):
			opt.CustomerIDs, ok = restrictIDs(opt.CustomerIDs, own)
		case operator.IsEntity(domain.EntitySupplier):
			opt.SupplierIDs, ok = restrictIDs(opt.SupplierIDs, own)
		}
	}
	if !ok {
		opt.Result = []*domain.Invoice{}
		if opt.Pagination != nil {
			opt.Pagination.Normalize()
			opt.Pagination.Total = 0
		}
		return nil
	}
	return svc.Repo.QueryInvoices(ctx, opt)
}

func (svc *Service) RecordPayment(ctx context.Context, operator *domain.Principal, id string, payment domain.Payment) (*domain.Invoice, error) {
	if err := svc.authorize(operator, domain.ActionInvoicePayment); err != nil {
		return nil, err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	invoice, err := svc.loadInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.RecordedBy = operatorID
	if err := invoice.RecordPayment(payment); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvoiceNotPayable):
			return nil, errs.Conflict("invoice does not accept payments", err)
		case errors.Is(err, domain.ErrOverpayment):
			return nil, errs.Unprocessable("payment exceeds outstanding amount", err)
		}
		return nil, errs.BadRequest("invalid payment", err)
	}
	if err := svc.saveInvoice(ctx, operator, operatorID, invoice, domain.ActionInvoicePayment); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (svc *Service) saveInvoice(ctx context.Context, operator *domain.Principal, operatorID bson.ObjectID, invoice *domain.Invoice, action domain.Action) error {
	invoice.Touch(operatorID)
	if err := svc.Repo.UpdateInvoice(ctx, invoice); err != nil {
		return repoError(err, "invoice")
	}
	svc.audit(ctx, operator, action, invoice.ID.Hex())
	return nil
}

func (svc *Service) loadInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	oid, err := parseObjectID(id, "invoice")
	if err != nil {
		return nil, err
	}
	opts := &domain.QueryInvoiceOptions{IDs: []bson.ObjectID{oid}}
	if err := svc.Repo.QueryInvoices(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, notFound("invoice", id)
	}
	return opts.Result[0], nil
}
