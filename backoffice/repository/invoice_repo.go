package repository

import (
	"context"
	"errors"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (r *repo) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	if invoice == nil {
		return errors.New("nil invoice")
	}
	return insertOne(ctx, r.db.Collection(invoiceCollection), &invoice.BaseEntity, invoice)
}

func (r *repo) UpdateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	if invoice == nil {
		return errors.New("nil invoice")
	}
	return replaceOne(ctx, r.db.Collection(invoiceCollection), &invoice.BaseEntity, invoice)
}

func (r *repo) QueryInvoices(ctx context.Context, opt *domain.QueryInvoiceOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "_id", opt.IDs)
	inFilter(filter, "invoiceNumber", opt.InvoiceNumbers)
	inFilter(filter, "order", opt.OrderIDs)
	inFilter(filter, "customer", opt.CustomerIDs)
	inFilter(filter, "supplier", opt.SupplierIDs)
	inFilter(filter, "status", opt.Statuses)
	notDeleted(filter, opt.IncludeDeleted)

	result, err := findPage[domain.Invoice](ctx, r.db.Collection(invoiceCollection), filter, opt.Pagination)
	if err != nil {
		return err
	}
	opt.Result = result
	return nil
}
