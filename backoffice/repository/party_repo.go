package repository

import (
	"context"
	"errors"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (r *repo) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	return insertOne(ctx, r.db.Collection(customerCollection), &customer.BaseEntity, customer)
}

func (r *repo) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	return replaceOne(ctx, r.db.Collection(customerCollection), &customer.BaseEntity, customer)
}

func (r *repo) QueryCustomers(ctx context.Context, opt *domain.QueryCustomerOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "_id", opt.IDs)
	inFilter(filter, "email", opt.Emails)
	inFilter(filter, "status", opt.Statuses)
	inFilter(filter, "customerType", opt.Types)
	if opt.Search != "" {
		filter["$text"] = bson.M{"$search": opt.Search}
	}
	notDeleted(filter, opt.IncludeDeleted)

	result, err := findPage[domain.Customer](ctx, r.db.Collection(customerCollection), filter, opt.Pagination)
	if err != nil {
		return err
	}
	opt.Result = result
	return nil
}

func (r *repo) CreateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	if supplier == nil {
		return errors.New("nil supplier")
	}
	return insertOne(ctx, r.db.Collection(supplierCollection), &supplier.BaseEntity, supplier)
}

func (r *repo) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	if supplier == nil {
		return errors.New("nil supplier")
	}
	return replaceOne(ctx, r.db.Collection(supplierCollection), &supplier.BaseEntity, supplier)
}

func (r *repo) QuerySuppliers(ctx context.Context, opt *domain.QuerySupplierOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "_id", opt.IDs)
	inFilter(filter, "email", opt.Emails)
	inFilter(filter, "status", opt.Statuses)
	inFilter(filter, "supplierType", opt.Types)
	if opt.Search != "" {
		filter["$text"] = bson.M{"$search": opt.Search}
	}
	notDeleted(filter, opt.IncludeDeleted)

	result, err := findPage[domain.Supplier](ctx, r.db.Collection(supplierCollection), filter, opt.Pagination)
	if err != nil {
		return err
	}
	opt.Result = result
	return nil
}
