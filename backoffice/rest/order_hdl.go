package rest

import (
	"net/http"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderBody struct {
	CustomerID     string             `json:"customer,omitempty"`
	SupplierID     string             `json:"supplier,omitempty"`
	ServiceType    domain.ServiceType `json:"serviceType,omitempty"`
	Status         domain.OrderStatus `json:"status,omitempty"`
	Priority       domain.Priority    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Origin         domain.Location    `json:"origin"`
	Destination    domain.Location    `json:"destination"`
	Cargo          domain.Cargo       `json:"cargo"`
	Pricing        domain.Pricing     `json:"pricing"`
	Timeline       domain.Timeline    `json:"timeline"`
	CustomsInfo    domain.CustomsInfo `json:"customsInfo"`
	AssignedTo     string             `json:"assignedTo,omitempty"`
	VehicleID      string             `json:"vehicle,omitempty"`
	TrackingNumber string             `json:"trackingNumber,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	InternalNotes  string             `json:"internalNotes,omitempty"`
}

func (b OrderBody) toDomain(id bson.ObjectID) (*domain.Order, error) {
	order := &domain.Order{
		BaseEntity:    domain.BaseEntity{ID: id},
		ServiceType:   b.ServiceType,
		Status:        b.Status,
		Priority:      b.Priority,
		Origin:        b.Origin,
		Destination:   b.Destination,
		Cargo:         b.Cargo,
		Pricing:       b.Pricing,
		Timeline:      b.Timeline,
		CustomsInfo:   b.CustomsInfo,
		Tracking:      domain.Tracking{TrackingNumber: b.TrackingNumber},
		Notes:         b.Notes,
		InternalNotes: b.InternalNotes,
	}
	var err error
	if order.CustomerID, err = parseOptionalObjectID(b.CustomerID, "customer"); err != nil {
		return nil, err
	}
	if order.SupplierID, err = parseOptionalObjectID(b.SupplierID, "supplier"); err != nil {
		return nil, err
	}
	if order.AssignedTo, err = parseOptionalObjectID(b.AssignedTo, "assignedTo"); err != nil {
		return nil, err
	}
	if order.VehicleID, err = parseOptionalObjectID(b.VehicleID, "vehicle"); err != nil {
		return nil, err
	}
	return order, nil
}

type DocumentResponse struct {
	Name       string              `json:"name"`
	Type       domain.DocumentType `json:"type"`
	URL        string              `json:"url"`
	Language   string              `json:"language,omitempty"`
	Translated bool                `json:"translated"`
	UploadedAt int64               `json:"uploadedAt"`
	UploadedBy string              `json:"uploadedBy,omitempty"`
}

type TrackingUpdateResponse struct {
	Status    domain.OrderStatus `json:"status"`
	Location  string             `json:"location"`
	Notes     string             `json:"notes,omitempty"`
	Timestamp int64              `json:"timestamp"`
	UpdatedBy string             `json:"updatedBy,omitempty"`
}

type TrackingResponse struct {
	TrackingNumber  string                   `json:"trackingNumber,omitempty"`
	CurrentLocation string                   `json:"currentLocation,omitempty"`
	Updates         []TrackingUpdateResponse `json:"updates"`
}

type OrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	OrderBody
	Documents   []DocumentResponse `json:"documents"`
	Tracking    TrackingResponse   `json:"tracking"`
	CreatorID   string             `json:"createdBy,omitempty"`
	CreatedTime int64              `json:"createdTime"`
	UpdatedTime int64              `json:"updatedTime"`
}

// newOrderResponse hides the internal notes from callers outside the PRO entity.
func newOrderResponse(o *domain.Order, viewer *domain.Principal) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID.Hex(),
		OrderNumber: o.OrderNumber,
		OrderBody: OrderBody{
			CustomerID:     hexOrEmpty(o.CustomerID),
			SupplierID:     hexOrEmpty(o.SupplierID),
			ServiceType:    o.ServiceType,
			Status:         o.Status,
			Priority:       o.Priority,
			Origin:         o.Origin,
			Destination:    o.Destination,
			Cargo:          o.Cargo,
			Pricing:        o.Pricing,
			Timeline:       o.Timeline,
			CustomsInfo:    o.CustomsInfo,
			AssignedTo:     hexOrEmpty(o.AssignedTo),
			VehicleID:      hexOrEmpty(o.VehicleID),
			TrackingNumber: o.Tracking.TrackingNumber,
			Notes:          o.Notes,
		},
		Documents: make([]DocumentResponse, 0, len(o.Documents)),
		Tracking: TrackingResponse{
			TrackingNumber:  o.Tracking.TrackingNumber,
			CurrentLocation: o.Tracking.CurrentLocation,
			Updates:         make([]TrackingUpdateResponse, 0, len(o.Tracking.Updates)),
		},
		CreatorID:   hexOrEmpty(o.CreatorID),
		CreatedTime: o.CreatedTime,
		UpdatedTime: o.UpdatedTime,
	}
	if viewer.IsEntity(domain.EntityPro) {
		resp.InternalNotes = o.InternalNotes
	}
	for _, d := range o.Documents {
		resp.Documents = append(resp.Documents, DocumentResponse{
			Name:       d.Name,
			Type:       d.Type,
			URL:        d.URL,
			Language:   d.Language,
			Translated: d.Translated,
			UploadedAt: d.UploadedAt,
			UploadedBy: hexOrEmpty(d.UploadedBy),
		})
	}
	for _, u := range o.Tracking.Updates {
		resp.Tracking.Updates = append(resp.Tracking.Updates, TrackingUpdateResponse{
			Status:    u.Status,
			Location:  u.Location,
			Notes:     u.Notes,
			Timestamp: u.Timestamp,
			UpdatedBy: hexOrEmpty(u.UpdatedBy),
		})
	}
	return resp
}

func (h *Handler) orderResponse(w http.ResponseWriter, r *http.Request, status int, order *domain.Order) {
	resp := newOrderResponse(order, h.principal(r))
	h.JSONResponse(r.Context(), w, status, NewSuccessResponse(&resp))
}

// ListOrders godoc
// @Summary List orders
// @Description VIEW_ALL_ORDERS holders see every order, VIEW_OWN_ORDERS holders only those of their customer or supplier.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param serviceType query string false "Comma separated service types"
// @Param customer query string false "Comma separated customer ids"
// @Param supplier query string false "Comma separated supplier ids"
// @Param orderNumber query string false "Order number"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse[PageResponse[OrderResponse]]
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/orders [get]
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customers, err := queryObjectIDs(r, "customer")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	suppliers, err := queryObjectIDs(r, "supplier")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	opt := &domain.QueryOrderOptions{
		OrderNumbers: queryList(r, "orderNumber"),
		CustomerIDs:  customers,
		SupplierIDs:  suppliers,
		Statuses:     queryEnums[domain.OrderStatus](r, "status"),
		ServiceTypes: queryEnums[domain.ServiceType](r, "serviceType"),
		Pagination:   queryPagination(r),
	}
	principal := h.principal(r)
	if err := h.Svc.QueryOrders(ctx, principal, opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]OrderResponse, 0, len(opt.Result))
	for _, o := range opt.Result {
		items = append(items, newOrderResponse(o, principal))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(newPageResponse(items, opt.Pagination)))
}

// GetOrder godoc
// @Summary Get order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Svc.GetOrder(r.Context(), h.principal(r), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(r.Context(), w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

// CreateOrder godoc
// @Summary Create order
// @Description CLIENT users always order for their own customer. Without EDIT_ORDER the order starts pending.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderBody true "Order payload"
// @Success 201 {object} SuccessResponse[OrderResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/orders [post]
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req OrderBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	order, err := req.toDomain(bson.NilObjectID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	if err := h.Svc.CreateOrder(ctx, h.principal(r), order); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusCreated, order)
}

// UpdateOrder godoc
// @Summary Update order
// @Description EDIT_OWN_ORDERS holders may only change shipment details of their own pending orders.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body OrderBody true "Order payload"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/orders/{id} [put]
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req OrderBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	id, err := requirePathObjectID(h.GetPathParam(r, "id"), "order")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	order, err := req.toDomain(id)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	if err := h.Svc.UpdateOrder(ctx, h.principal(r), order); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required"`
	Notes  string             `json:"notes,omitempty"`
}

// UpdateOrderStatus godoc
// @Summary Change order status
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/orders/{id}/status [put]
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateOrderStatusRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	order, err := h.Svc.UpdateOrderStatus(ctx, h.principal(r), h.GetPathParam(r, "id"), domain.StatusUpdateOptions{Status: req.Status, Notes: req.Notes})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

type DecisionRequest struct {
	Notes  string `json:"notes,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ApproveOrder godoc
// @Summary Approve order
// @Description Clears customs and confirms the order. SUPPLIER users decide only their own orders.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body DecisionRequest false "Approval notes"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/orders/{id}/approve [post]
func (h *Handler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req DecisionRequest
	if r.ContentLength != 0 {
		if err := h.JSONBind(r, &req); err != nil {
			h.BindError(ctx, w, err)
			return
		}
	}
	order, err := h.Svc.ApproveOrder(ctx, h.principal(r), h.GetPathParam(r, "id"), req.Notes)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

// RejectOrder godoc
// @Summary Reject order
// @Description Rejects customs clearance and cancels the order. A reason is required.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body DecisionRequest true "Rejection reason"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/orders/{id}/reject [post]
func (h *Handler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req DecisionRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	order, err := h.Svc.RejectOrder(ctx, h.principal(r), h.GetPathParam(r, "id"), req.Reason)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

type TrackingUpdateRequest struct {
	Status   *domain.OrderStatus `json:"status,omitempty"`
	Location string              `json:"location" validate:"required"`
	Notes    string              `json:"notes,omitempty"`
}

// AddTrackingUpdate godoc
// @Summary Add tracking update
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body TrackingUpdateRequest true "Tracking entry"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id}/tracking [post]
func (h *Handler) AddTrackingUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req TrackingUpdateRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	order, err := h.Svc.AddTrackingUpdate(ctx, h.principal(r), h.GetPathParam(r, "id"), domain.TrackingUpdateOptions{
		Status:   req.Status,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

type OrderDocumentRequest struct {
	Name     string              `json:"name" validate:"required"`
	Type     domain.DocumentType `json:"type,omitempty" validate:"omitempty,oneof=invoice packing_list customs_declaration insurance other"`
	URL      string              `json:"url" validate:"required,url"`
	Language string              `json:"language,omitempty"`
}

// AddOrderDocument godoc
// @Summary Attach order document
// @Description ENTER_DATA or TRANSLATE_DOCUMENTS. Uploads by translators are marked translated.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body OrderDocumentRequest true "Document"
// @Success 200 {object} SuccessResponse[OrderResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id}/documents [post]
func (h *Handler) AddOrderDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req OrderDocumentRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	order, err := h.Svc.AddOrderDocument(ctx, h.principal(r), h.GetPathParam(r, "id"), domain.OrderDocument{
		Name:     req.Name,
		Type:     req.Type,
		URL:      req.URL,
		Language: req.Language,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.orderResponse(w, r, http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id} [delete]
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteOrder(ctx, h.principal(r), h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}
