package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func orderCounter(year int) string {
	return fmt.Sprintf("order:%d", year)
}

func (svc *Service) CreateOrder(ctx context.Context, operator *domain.Principal, order *domain.Order) error {
	if err := svc.authorize(operator, domain.ActionOrderCreate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if order == nil {
		return errs.BadRequest("order is required", errors.New("nil order"))
	}
	if !order.ServiceType.Valid() {
		return errs.BadRequest("invalid service type", fmt.Errorf("service type %q", order.ServiceType))
	}

	// CLIENT principals always order for their own customer.
	if operator.IsEntity(domain.EntityClient) {
		customerID, ok := entityObjectID(operator)
		if !ok {
			return errs.Forbidden("access denied", fmt.Errorf("client user %s has no customer", operator.UserID()))
		}
		order.CustomerID = customerID
	}
	if order.CustomerID.IsZero() {
		return errs.BadRequest("customer is required", errors.New("missing customer id"))
	}
	if err := svc.requireCustomer(ctx, order.CustomerID); err != nil {
		return err
	}
	if !order.SupplierID.IsZero() {
		if err := svc.requireSupplier(ctx, order.SupplierID); err != nil {
			return err
		}
	}

	now := svc.now()
	seq, err := svc.Repo.NextSequence(ctx, orderCounter(now.Year()))
	if err != nil {
		return err
	}
	order.BaseEntity = domain.NewBaseEntity(util.Ptr(operatorID), util.Ptr(operatorID))
	order.OrderNumber = domain.FormatOrderNumber(now.Year(), seq)
	if !operator.HasPermission(domain.EditOrder) {
		order.Status = domain.OrderStatusPending
		order.CustomsInfo = domain.CustomsInfo{}
		order.AssignedTo = bson.NilObjectID
		order.VehicleID = bson.NilObjectID
		order.InternalNotes = ""
	}
	order.Documents = nil
	order.Tracking.Updates = nil
	order.ApplyDefaults()
	if !order.Status.Valid() {
		return errs.BadRequest("invalid order status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", order.Status))
	}
	order.AddTrackingUpdate(order.Status, order.Origin.City, "Order created", operatorID)

	if err := svc.Repo.CreateOrder(ctx, order); err != nil {
		return repoError(err, "order")
	}
	svc.audit(ctx, operator, domain.ActionOrderCreate, order.ID.Hex())
	return nil
}

// UpdateOrder replaces the editable body of an order. EDIT_OWN_ORDERS holders may only
// touch the shipment details of their own pending orders.
func (svc *Service) UpdateOrder(ctx context.Context, operator *domain.Principal, order *domain.Order) error {
	if err := svc.authorize(operator, domain.ActionOrderUpdate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if order == nil {
		return errs.BadRequest("order is required", errors.New("nil order"))
	}
	existing, err := svc.loadOrder(ctx, order.ID.Hex())
	if err != nil {
		return err
	}
	if !domain.CanEditOrder(operator, existing) {
		return errs.Forbidden("access denied", fmt.Errorf("order %s is not editable by %s", existing.ID.Hex(), operator.UserID()))
	}
	if order.ServiceType != "" && !order.ServiceType.Valid() {
		return errs.BadRequest("invalid service type", fmt.Errorf("service type %q", order.ServiceType))
	}

	full := operator.HasPermission(domain.EditOrder)
	if !full && existing.Status != domain.OrderStatusPending {
		return errs.Conflict("order can no longer be edited", fmt.Errorf("order %s is %s", existing.ID.Hex(), existing.Status))
	}
	if full && !order.SupplierID.IsZero() && order.SupplierID != existing.SupplierID {
		if err := svc.requireSupplier(ctx, order.SupplierID); err != nil {
			return err
		}
	}
	mergeOrder(existing, order, full)
	existing.Touch(operatorID)
	existing.ApplyDefaults()
	if err := svc.Repo.UpdateOrder(ctx, existing); err != nil {
		return repoError(err, "order")
	}
	*order = *existing
	svc.audit(ctx, operator, domain.ActionOrderUpdate, existing.ID.Hex())
	return nil
}

func mergeOrder(dst, src *domain.Order, full bool) {
	if src.ServiceType != "" {
		dst.ServiceType = src.ServiceType
	}
	if src.Priority != "" {
		dst.Priority = src.Priority
	}
	dst.Origin = src.Origin
	dst.Destination = src.Destination
	dst.Cargo = src.Cargo
	dst.Timeline = src.Timeline
	dst.Notes = src.Notes
	if !full {
		return
	}
	dst.SupplierID = src.SupplierID
	dst.Pricing = src.Pricing
	dst.CustomsInfo.DeclarationNumber = src.CustomsInfo.DeclarationNumber
	dst.CustomsInfo.HSCode = src.CustomsInfo.HSCode
	dst.CustomsInfo.DutyAmount = src.CustomsInfo.DutyAmount
	dst.AssignedTo = src.AssignedTo
	dst.VehicleID = src.VehicleID
	dst.InternalNotes = src.InternalNotes
	if src.Tracking.TrackingNumber != "" {
		dst.Tracking.TrackingNumber = src.Tracking.TrackingNumber
	}
}

func (svc *Service) UpdateOrderStatus(ctx context.Context, operator *domain.Principal, id string, opt domain.StatusUpdateOptions) (*domain.Order, error) {
	if err := svc.authorize(operator, domain.ActionOrderStatus); err != nil {
		return nil, err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	if !opt.Status.Valid() {
		return nil, errs.BadRequest("invalid order status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", opt.Status))
	}
	order, err := svc.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	now := svc.now().UnixMilli()
	switch opt.Status {
	case domain.OrderStatusInTransit:
		if order.Timeline.ActualPickup == 0 {
			order.Timeline.ActualPickup = now
		}
	case domain.OrderStatusDelivered:
		order.Timeline.ActualDelivery = now
	}
	order.Status = opt.Status
	notes := opt.Notes
	if notes == "" {
		notes = "Status changed to " + string(opt.Status)
	}
	order.AddTrackingUpdate(opt.Status, "", notes, operatorID)
	if err := svc.saveOrder(ctx, operator, operatorID, order, domain.ActionOrderStatus); err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *Service) ApproveOrder(ctx context.Context, operator *domain.Principal, id string, notes string) (*domain.Order, error) {
	return svc.decideOrder(ctx, operator, id, domain.ActionOrderApprove, domain.ApproveOrder, notes)
}

func (svc *Service) RejectOrder(ctx context.Context, operator *domain.Principal, id string, reason string) (*domain.Order, error) {
	if err := svc.authorize(operator, domain.ActionOrderReject); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, errs.BadRequest("rejection reason is required", errors.New("empty reason"))
	}
	return svc.decideOrder(ctx, operator, id, domain.ActionOrderReject, domain.RejectOrder, reason)
}

func (svc *Service) decideOrder(ctx context.Context, operator *domain.Principal, id string, action domain.Action, perm domain.Permission, notes string) (*domain.Order, error) {
	if err := svc.authorize(operator, action); err != nil {
		return nil, err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	order, err := svc.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanDecideOrder(operator, order, perm) {
		return nil, errs.Forbidden("access denied", fmt.Errorf("order %s is not decidable by %s", id, operator.UserID()))
	}
	if !order.Decidable() {
		return nil, errs.Conflict("order is not awaiting a decision", fmt.Errorf("order %s is %s, clearance %s", id, order.Status, order.CustomsInfo.ClearanceStatus))
	}

	var message string
	if perm == domain.ApproveOrder {
		order.CustomsInfo.ClearanceStatus = domain.ClearanceCleared
		order.Status = domain.OrderStatusConfirmed
		message = "Order approved"
	} else {
		order.CustomsInfo.ClearanceStatus = domain.ClearanceRejected
		order.Status = domain.OrderStatusCancelled
		message = "Order rejected"
	}
	if notes != "" {
		message += ": " + notes
	}
	order.AddTrackingUpdate(order.Status, "", message, operatorID)
	if err := svc.saveOrder(ctx, operator, operatorID, order, action); err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *Service) AddTrackingUpdate(ctx context.Context, operator *domain.Principal, id string, opt domain.TrackingUpdateOptions) (*domain.Order, error) {
	if err := svc.authorize(operator, domain.ActionOrderTracking); err != nil {
		return nil, err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	order, err := svc.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	status := order.Status
	if opt.Status != nil && *opt.Status != order.Status {
		if !opt.Status.Valid() || !domain.TrackingStatus(*opt.Status) {
			return nil, errs.BadRequest("invalid tracking status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", *opt.Status))
		}
		if order.Status == domain.OrderStatusCancelled || order.Status == domain.OrderStatusDelivered {
			return nil, errs.Conflict("order is closed", fmt.Errorf("order %s is %s", id, order.Status))
		}
		status = *opt.Status
	}
	if opt.Location != "" {
		order.Tracking.CurrentLocation = opt.Location
	}
	order.Status = status
	order.AddTrackingUpdate(status, opt.Location, opt.Notes, operatorID)
	if err := svc.saveOrder(ctx, operator, operatorID, order, domain.ActionOrderTracking); err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *Service) AddOrderDocument(ctx context.Context, operator *domain.Principal, id string, doc domain.OrderDocument) (*domain.Order, error) {
	if err := svc.authorize(operator, domain.ActionOrderDocument); err != nil {
		return nil, err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" || doc.URL == "" {
		return nil, errs.BadRequest("document name and url are required", errors.New("incomplete document"))
	}
	order, err := svc.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewOrder(operator, order) {
		return nil, errs.Forbidden("access denied", fmt.Errorf("order %s is not visible to %s", id, operator.UserID()))
	}
	if doc.Type == "" {
		doc.Type = domain.DocumentOther
	}
	if operator.HasPermission(domain.TranslateDocuments) && !operator.HasPermission(domain.EnterData) {
		doc.Translated = true
	}
	doc.UploadedAt = svc.now().UnixMilli()
	doc.UploadedBy = operatorID
	order.Documents = append(order.Documents, doc)
	if err := svc.saveOrder(ctx, operator, operatorID, order, domain.ActionOrderDocument); err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *Service) DeleteOrder(ctx context.Context, operator *domain.Principal, id string) error {
	if err := svc.authorize(operator, domain.ActionOrderDelete); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	order, err := svc.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	order.DeletedTime = svc.now().UnixMilli()
	return svc.saveOrder(ctx, operator, operatorID, order, domain.ActionOrderDelete)
}

func (svc *Service) GetOrder(ctx context.Context, operator *domain.Principal, id string) (*domain.Order, error) {
	if err := svc.authorize(operator, domain.ActionOrderList); err != nil {
		return nil, err
	}
	order, err := svc.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewOrder(operator, order) {
		return nil, errs.Forbidden("access denied", fmt.Errorf("order %s is not visible to %s", id, operator.UserID()))
	}
	return order, nil
}

// QueryOrders lists orders within the scope of operator. Caller filters outside that
// scope produce an empty result.
func (svc *Service) QueryOrders(ctx context.Context, operator *domain.Principal, opt *domain.QueryOrderOptions) error {
	if err := svc.authorize(operator, domain.ActionOrderList); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	scope := domain.OrderScopeFor(operator)
	var ok bool
	switch {
	case scope.All:
		ok = true
	case !scope.CustomerID.IsZero():
		opt.CustomerIDs, ok = restrictIDs(opt.CustomerIDs, scope.CustomerID)
	case !scope.SupplierID.IsZero():
		opt.SupplierIDs, ok = restrictIDs(opt.SupplierIDs, scope.SupplierID)
	}
	if !ok {
		opt.Result = []*domain.Order{}
		if opt.Pagination != nil {
			opt.Pagination.Normalize()
			opt.Pagination.Total = 0
		}
		return nil
	}
	return svc.Repo.QueryOrders(ctx, opt)
}

func restrictIDs(requested []bson.ObjectID, own bson.ObjectID) ([]bson.ObjectID, bool) {
	if len(requested) > 0 && !slices.Contains(requested, own) {
		return nil, false
	}
	return []bson.ObjectID{own}, true
}

func (svc *Service) saveOrder(ctx context.Context, operator *domain.Principal, operatorID bson.ObjectID, order *domain.Order, action domain.Action) error {
	order.Touch(operatorID)
	if err := svc.Repo.UpdateOrder(ctx, order); err != nil {
		return repoError(err, "order")
	}
	svc.audit(ctx, operator, action, order.ID.Hex())
	return nil
}

func (svc *Service) loadOrder(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseObjectID(id, "order")
	if err != nil {
		return nil, err
	}
	opts := &domain.QueryOrderOptions{IDs: []bson.ObjectID{oid}}
	if err := svc.Repo.QueryOrders(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, notFound("order", id)
	}
	return opts.Result[0], nil
}

func (svc *Service) requireCustomer(ctx context.Context, id bson.ObjectID) error {
	opts := &domain.QueryCustomerOptions{IDs: []bson.ObjectID{id}}
	if err := svc.Repo.QueryCustomers(ctx, opts); err != nil {
		return err
	}
	if len(opts.Result) == 0 {
		return errs.Unprocessable("customer not found", fmt.Errorf("customer %s not found", id.Hex()))
	}
	return nil
}

func (svc *Service) requireSupplier(ctx context.Context, id bson.ObjectID) error {
	opts := &domain.QuerySupplierOptions{IDs: []bson.ObjectID{id}}
	if err := svc.Repo.QuerySuppliers(ctx, opts); err != nil {
		return err
	}
	if len(opts.Result) == 0 {
		return errs.Unprocessable("supplier not found", fmt.Errorf("supplier %s not found", id.Hex()))
	}
	return nil
}
