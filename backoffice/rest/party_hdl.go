package rest

import (
	"net/http"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CustomerBody struct {
	Name           string               `json:"name" validate:"required,min=2,max=100"`
	Email          string               `json:"email" validate:"required,email"`
	Phone          string               `json:"phone" validate:"required"`
	Company        domain.Company       `json:"company"`
	Address        domain.Address       `json:"address"`
	BillingAddress *domain.Address      `json:"billingAddress,omitempty"`
	ContactPerson  domain.ContactPerson `json:"contactPerson"`
	CustomerType   domain.PartyType     `json:"customerType,omitempty" validate:"omitempty,oneof=individual business"`
	CreditLimit    domain.Money         `json:"creditLimit"`
	PaymentTerms   domain.PaymentTerms  `json:"paymentTerms,omitempty" validate:"omitempty,oneof=cash net15 net30 net60"`
	Status         domain.PartyStatus   `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Notes          string               `json:"notes,omitempty"`
	Tags           []string             `json:"tags,omitempty"`
}

func (b CustomerBody) toDomain(id bson.ObjectID) *domain.Customer {
	return &domain.Customer{
		BaseEntity:     domain.BaseEntity{ID: id},
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Company:        b.Company,
		Address:        b.Address,
		BillingAddress: b.BillingAddress,
		ContactPerson:  b.ContactPerson,
		CustomerType:   b.CustomerType,
		CreditLimit:    b.CreditLimit,
		PaymentTerms:   b.PaymentTerms,
		Status:         b.Status,
		Notes:          b.Notes,
		Tags:           b.Tags,
	}
}

type CustomerResponse struct {
	ID string `json:"id"`
	CustomerBody
	CurrentBalance domain.Money `json:"currentBalance"`
	CreatedTime    int64        `json:"createdTime"`
	UpdatedTime    int64        `json:"updatedTime"`
}

func newCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID: c.ID.Hex(),
		CustomerBody: CustomerBody{
			Name:           c.Name,
			Email:          c.Email,
			Phone:          c.Phone,
			Company:        c.Company,
			Address:        c.Address,
			BillingAddress: c.BillingAddress,
			ContactPerson:  c.ContactPerson,
			CustomerType:   c.CustomerType,
			CreditLimit:    c.CreditLimit,
			PaymentTerms:   c.PaymentTerms,
			Status:         c.Status,
			Notes:          c.Notes,
			Tags:           c.Tags,
		},
		CurrentBalance: c.CurrentBalance,
		CreatedTime:    c.CreatedTime,
		UpdatedTime:    c.UpdatedTime,
	}
}

// ListCustomers godoc
// @Summary List customers
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Text search over name, email and company"
// @Param status query string false "Comma separated statuses"
// @Param customerType query string false "individual or business"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse[PageResponse[CustomerResponse]]
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/customers [get]
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt := &domain.QueryCustomerOptions{
		Search:     r.URL.Query().Get("search"),
		Statuses:   queryEnums[domain.PartyStatus](r, "status"),
		Types:      queryEnums[domain.PartyType](r, "customerType"),
		Pagination: queryPagination(r),
	}
	if err := h.Svc.QueryCustomers(ctx, h.principal(r), opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]CustomerResponse, 0, len(opt.Result))
	for _, c := range opt.Result {
		items = append(items, newCustomerResponse(c))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(newPageResponse(items, opt.Pagination)))
}

// GetCustomer godoc
// @Summary Get customer
// @Description VIEW_CLIENTS holders see any customer, CLIENT users only their own.
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} SuccessResponse[CustomerResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/customers/{id} [get]
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customer, err := h.Svc.GetCustomer(ctx, h.principal(r), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newCustomerResponse(customer)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// CreateCustomer godoc
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CustomerBody true "Customer payload"
// @Success 201 {object} SuccessResponse[CustomerResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/customers [post]
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CustomerBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	customer := req.toDomain(bson.NilObjectID)
	if err := h.Svc.CreateCustomer(ctx, h.principal(r), customer); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newCustomerResponse(customer)
	h.JSONResponse(ctx, w, http.StatusCreated, NewSuccessResponse(&resp))
}

// UpdateCustomer godoc
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body CustomerBody true "Customer payload"
// @Success 200 {object} SuccessResponse[CustomerResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/customers/{id} [put]
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CustomerBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	id, err := requirePathObjectID(h.GetPathParam(r, "id"), "customer")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	customer := req.toDomain(id)
	if err := h.Svc.UpdateCustomer(ctx, h.principal(r), customer); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newCustomerResponse(customer)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// DeleteCustomer godoc
// @Summary Delete customer
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/customers/{id} [delete]
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteCustomer(ctx, h.principal(r), h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}

type SupplierBody struct {
	Name          string               `json:"name" validate:"required,min=2,max=100"`
	Email         string               `json:"email" validate:"required,email"`
	Phone         string               `json:"phone" validate:"required"`
	Company       domain.Company       `json:"company"`
	Address       domain.Address       `json:"address"`
	ContactPerson domain.ContactPerson `json:"contactPerson"`
	SupplierType  domain.PartyType     `json:"supplierType,omitempty" validate:"omitempty,oneof=individual business"`
	Status        domain.PartyStatus   `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	CreditLimit   domain.Money         `json:"creditLimit"`
	PaymentTerms  string               `json:"paymentTerms,omitempty"`
	Rating        float64              `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Notes         string               `json:"notes,omitempty"`
}

func (b SupplierBody) toDomain(id bson.ObjectID) *domain.Supplier {
	return &domain.Supplier{
		BaseEntity:    domain.BaseEntity{ID: id},
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		Company:       b.Company,
		Address:       b.Address,
		ContactPerson: b.ContactPerson,
		SupplierType:  b.SupplierType,
		Status:        b.Status,
		CreditLimit:   b.CreditLimit,
		PaymentTerms:  b.PaymentTerms,
		Rating:        b.Rating,
		Notes:         b.Notes,
	}
}

type SupplierResponse struct {
	ID string `json:"id"`
	SupplierBody
	CreatedTime int64 `json:"createdTime"`
	UpdatedTime int64 `json:"updatedTime"`
}

func newSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID: s.ID.Hex(),
		SupplierBody: SupplierBody{
			Name:          s.Name,
			Email:         s.Email,
			Phone:         s.Phone,
			Company:       s.Company,
			Address:       s.Address,
			ContactPerson: s.ContactPerson,
			SupplierType:  s.SupplierType,
			Status:        s.Status,
			CreditLimit:   s.CreditLimit,
			PaymentTerms:  s.PaymentTerms,
			Rating:        s.Rating,
			Notes:         s.Notes,
		},
		CreatedTime: s.CreatedTime,
		UpdatedTime: s.UpdatedTime,
	}
}

// ListSuppliers godoc
// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Text search over name, email and company"
// @Param status query string false "Comma separated statuses"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse[PageResponse[SupplierResponse]]
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/suppliers [get]
func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt := &domain.QuerySupplierOptions{
		Search:     r.URL.Query().Get("search"),
		Statuses:   queryEnums[domain.PartyStatus](r, "status"),
		Types:      queryEnums[domain.PartyType](r, "supplierType"),
		Pagination: queryPagination(r),
	}
	if err := h.Svc.QuerySuppliers(ctx, h.principal(r), opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]SupplierResponse, 0, len(opt.Result))
	for _, s := range opt.Result {
		items = append(items, newSupplierResponse(s))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(newPageResponse(items, opt.Pagination)))
}

// GetSupplier godoc
// @Summary Get supplier
// @Tags Suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 200 {object} SuccessResponse[SupplierResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/suppliers/{id} [get]
func (h *Handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	supplier, err := h.Svc.GetSupplier(ctx, h.principal(r), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newSupplierResponse(supplier)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// CreateSupplier godoc
// @Summary Create supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SupplierBody true "Supplier payload"
// @Success 201 {object} SuccessResponse[SupplierResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/suppliers [post]
func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SupplierBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	supplier := req.toDomain(bson.NilObjectID)
	if err := h.Svc.CreateSupplier(ctx, h.principal(r), supplier); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newSupplierResponse(supplier)
	h.JSONResponse(ctx, w, http.StatusCreated, NewSuccessResponse(&resp))
}

// UpdateSupplier godoc
// @Summary Update supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Param request body SupplierBody true "Supplier payload"
// @Success 200 {object} SuccessResponse[SupplierResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/suppliers/{id} [put]
func (h *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SupplierBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	id, err := requirePathObjectID(h.GetPathParam(r, "id"), "supplier")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	supplier := req.toDomain(id)
	if err := h.Svc.UpdateSupplier(ctx, h.principal(r), supplier); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newSupplierResponse(supplier)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// DeleteSupplier godoc
// @Summary Delete supplier
// @Tags Suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/suppliers/{id} [delete]
func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteSupplier(ctx, h.principal(r), h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}
