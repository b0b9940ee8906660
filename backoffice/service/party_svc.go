package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (svc *Service) CreateCustomer(ctx context.Context, operator *domain.Principal, customer *domain.Customer) error {
	if err := svc.authorize(operator, domain.ActionCustomerCreate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if customer == nil {
		return errs.BadRequest("customer is required", errors.New("nil customer"))
	}
	customer.BaseEntity = domain.NewBaseEntity(util.Ptr(operatorID), util.Ptr(operatorID))
	customer.Email = normalizeEmail(customer.Email)
	customer.ApplyDefaults()
	if err := svc.Repo.CreateCustomer(ctx, customer); err != nil {
		return repoError(err, "customer")
	}
	svc.audit(ctx, operator, domain.ActionCustomerCreate, customer.ID.Hex())
	return nil
}

func (svc *Service) UpdateCustomer(ctx context.Context, operator *domain.Principal, customer *domain.Customer) error {
	if err := svc.authorize(operator, domain.ActionCustomerUpdate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if customer == nil {
		return errs.BadRequest("customer is required", errors.New("nil customer"))
	}
	existing, err := svc.loadCustomer(ctx, customer.ID.Hex())
	if err != nil {
		return err
	}
	customer.BaseEntity = existing.BaseEntity
	customer.CurrentBalance = existing.CurrentBalance
	customer.Touch(operatorID)
	customer.Email = normalizeEmail(customer.Email)
	customer.ApplyDefaults()
	if err := svc.Repo.UpdateCustomer(ctx, customer); err != nil {
		return repoError(err, "customer")
	}
	svc.audit(ctx, operator, domain.ActionCustomerUpdate, customer.ID.Hex())
	return nil
}

func (svc *Service) DeleteCustomer(ctx context.Context, operator *domain.Principal, id string) error {
	if err := svc.authorize(operator, domain.ActionCustomerDelete); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	customer, err := svc.loadCustomer(ctx, id)
	if err != nil {
		return err
	}
	customer.Touch(operatorID)
	customer.DeletedTime = customer.UpdatedTime
	if err := svc.Repo.UpdateCustomer(ctx, customer); err != nil {
		return repoError(err, "customer")
	}
	svc.audit(ctx, operator, domain.ActionCustomerDelete, id)
	return nil
}

// GetCustomer returns a customer to VIEW_CLIENTS holders, or to a CLIENT principal bound to it.
func (svc *Service) GetCustomer(ctx context.Context, operator *domain.Principal, id string) (*domain.Customer, error) {
	if err := svc.authorize(operator, domain.ActionCustomerRead); err != nil {
		return nil, err
	}
	if !operator.HasPermission(domain.ViewClients) && !operator.OwnsCustomer(id) {
		return nil, errs.Forbidden("access denied", fmt.Errorf("customer %s is not owned by %s", id, operator.UserID()))
	}
	return svc.loadCustomer(ctx, id)
}

func (svc *Service) QueryCustomers(ctx context.Context, operator *domain.Principal, opt *domain.QueryCustomerOptions) error {
	if err := svc.authorize(operator, domain.ActionCustomerList); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryCustomers(ctx, opt)
}

func (svc *Service) loadCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := parseObjectID(id, "customer")
	if err != nil {
		return nil, err
	}
	opts := &domain.QueryCustomerOptions{IDs: []bson.ObjectID{oid}}
	if err := svc.Repo.QueryCustomers(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, notFound("customer", id)
	}
	return opts.Result[0], nil
}

func (svc *Service) CreateSupplier(ctx context.Context, operator *domain.Principal, supplier *domain.Supplier) error {
	if err := svc.authorize(operator, domain.ActionSupplierCreate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if supplier == nil {
		return errs.BadRequest("supplier is required", errors.New("nil supplier"))
	}
	supplier.BaseEntity = domain.NewBaseEntity(util.Ptr(operatorID), util.Ptr(operatorID))
	supplier.Email = normalizeEmail(supplier.Email)
	supplier.ApplyDefaults()
	if err := svc.Repo.CreateSupplier(ctx, supplier); err != nil {
		return repoError(err, "supplier")
	}
	svc.audit(ctx, operator, domain.ActionSupplierCreate, supplier.ID.Hex())
	return nil
}

func (svc *Service) UpdateSupplier(ctx context.Context, operator *domain.Principal, supplier *domain.Supplier) error {
	if err := svc.authorize(operator, domain.ActionSupplierUpdate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if supplier == nil {
		return errs.BadRequest("supplier is required", errors.New("nil supplier"))
	}
	existing, err := svc.loadSupplier(ctx, supplier.ID.Hex())
	if err != nil {
		return err
	}
	supplier.BaseEntity = existing.BaseEntity
	supplier.Touch(operatorID)
	supplier.Email = normalizeEmail(supplier.Email)
	supplier.ApplyDefaults()
	if err := svc.Repo.UpdateSupplier(ctx, supplier); err != nil {
		return repoError(err, "supplier")
	}
	svc.audit(ctx, operator, domain.ActionSupplierUpdate, supplier.ID.Hex())
	return nil
}

func (svc *Service) DeleteSupplier(ctx context.Context, operator *domain.Principal, id string) error {
	if err := svc.authorize(operator, domain.ActionSupplierDelete); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	supplier, err := svc.loadSupplier(ctx, id)
	if err != nil {
		return err
	}
	supplier.Touch(operatorID)
	supplier.DeletedTime = supplier.UpdatedTime
	if err := svc.Repo.UpdateSupplier(ctx, supplier); err != nil {
		return repoError(err, "supplier")
	}
	svc.audit(ctx, operator, domain.ActionSupplierDelete, id)
	return nil
}

// GetSupplier returns a supplier to VIEW_SUPPLIERS holders, or to a SUPPLIER principal bound to it.
func (svc *Service) GetSupplier(ctx context.Context, operator *domain.Principal, id string) (*domain.Supplier, error) {
	if err := svc.authorize(operator, domain.ActionSupplierRead); err != nil {
		return nil, err
	}
	if !operator.HasPermission(domain.ViewSuppliers) && !operator.OwnsSupplier(id) {
		return nil, errs.Forbidden("access denied", fmt.Errorf("supplier %s is not owned by %s", id, operator.UserID()))
	}
	return svc.loadSupplier(ctx, id)
}

func (svc *Service) QuerySuppliers(ctx context.Context, operator *domain.Principal, opt *domain.QuerySupplierOptions) error {
	if err := svc.authorize(operator, domain.ActionSupplierList); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QuerySuppliers(ctx, opt)
}

func (svc *Service) loadSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	oid, err := parseObjectID(id, "supplier")
	if err != nil {
		return nil, err
	}
	opts := &domain.QuerySupplierOptions{IDs: []bson.ObjectID{oid}}
	if err := svc.Repo.QuerySuppliers(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, notFound("supplier", id)
	}
	return opts.Result[0], nil
}
