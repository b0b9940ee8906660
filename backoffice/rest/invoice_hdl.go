package rest

import (
	"net/http"

	"github.com/procargo/backoffice/backoffice/domain"
)

type InvoiceBody struct {
	OrderID  string               `json:"order,omitempty"`
	Items    []domain.InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Tax      domain.Money         `json:"tax"`
	Currency string               `json:"currency,omitempty" validate:"omitempty,len=3"`
	DueDate  int64                `json:"dueDate,omitempty"`
	Status   domain.InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=draft issued cancelled"`
	Notes    string               `json:"notes,omitempty"`
}

type PaymentResponse struct {
	Amount     domain.Money         `json:"amount"`
	Method     domain.PaymentMethod `json:"method"`
	Reference  string               `json:"reference,omitempty"`
	PaidAt     int64                `json:"paidAt"`
	RecordedBy string               `json:"recordedBy,omitempty"`
}

type InvoiceResponse struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	OrderID       string               `json:"order"`
	CustomerID    string               `json:"customer"`
	SupplierID    string               `json:"supplier,omitempty"`
	Items         []domain.InvoiceItem `json:"items"`
	Subtotal      domain.Money         `json:"subtotal"`
	Tax           domain.Money         `json:"tax"`
	Total         domain.Money         `json:"total"`
	Paid          domain.Money         `json:"paid"`
	Outstanding   domain.Money         `json:"outstanding"`
	Currency      string               `json:"currency"`
	DueDate       int64                `json:"dueDate"`
	Status        domain.InvoiceStatus `json:"status"`
	Payments      []PaymentResponse    `json:"payments"`
	Notes         string               `json:"notes,omitempty"`
	CreatedTime   int64                `json:"createdTime"`
	UpdatedTime   int64                `json:"updatedTime"`
}

func newInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID.Hex(),
		InvoiceNumber: inv.InvoiceNumber,
		OrderID:       hexOrEmpty(inv.OrderID),
		CustomerID:    hexOrEmpty(inv.CustomerID),
		SupplierID:    hexOrEmpty(inv.SupplierID),
		Items:         inv.Items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Paid:          inv.PaidAmount(),
		Outstanding:   inv.Outstanding(),
		Currency:      inv.Currency,
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		Payments:      make([]PaymentResponse, 0, len(inv.Payments)),
		Notes:         inv.Notes,
		CreatedTime:   inv.CreatedTime,
		UpdatedTime:   inv.UpdatedTime,
	}
	if resp.Items == nil {
		resp.Items = []domain.InvoiceItem{}
	}
	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			Amount:     p.Amount,
			Method:     p.Method,
			Reference:  p.Reference,
			PaidAt:     p.PaidAt,
			RecordedBy: hexOrEmpty(p.RecordedBy),
		})
	}
	return resp
}

func (h *Handler) invoiceResponse(w http.ResponseWriter, r *http.Request, status int, inv *domain.Invoice) {
	resp := newInvoiceResponse(inv)
	h.JSONResponse(r.Context(), w, status, NewSuccessResponse(&resp))
}

// ListInvoices godoc
// @Summary List invoices
// @Description CLIENT and SUPPLIER users only see their own invoices.
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param order query string false "Comma separated order ids"
// @Param customer query string false "Comma separated customer ids"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse[PageResponse[InvoiceResponse]]
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/invoices [get]
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orders, err := queryObjectIDs(r, "order")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	customers, err := queryObjectIDs(r, "customer")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	opt := &domain.QueryInvoiceOptions{
		OrderIDs:    orders,
		CustomerIDs: customers,
		Statuses:    queryEnums[domain.InvoiceStatus](r, "status"),
		Pagination:  queryPagination(r),
	}
	if err := h.Svc.QueryInvoices(ctx, h.principal(r), opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]InvoiceResponse, 0, len(opt.Result))
	for _, inv := range opt.Result {
		items = append(items, newInvoiceResponse(inv))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(newPageResponse(items, opt.Pagination)))
}

// GetInvoice godoc
// @Summary Get invoice
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} SuccessResponse[InvoiceResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/invoices/{id} [get]
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.Svc.GetInvoice(r.Context(), h.principal(r), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(r.Context(), w, err)
		return
	}
	h.invoiceResponse(w, r, http.StatusOK, invoice)
}

// GetInvoicePDF godoc
// @Summary Download invoice PDF
// @Tags Invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/invoices/{id}/pdf [get]
func (h *Handler) GetInvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := h.GetPathParam(r, "id")
	pdf, err := h.Svc.RenderInvoicePDF(ctx, h.principal(r), id)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+id+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// CreateInvoice godoc
// @Summary Create invoice
// @Description Customer and supplier are copied from the order. The invoice number is assigned by the server.
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InvoiceBody true "Invoice payload"
// @Success 201 {object} SuccessResponse[InvoiceResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req InvoiceBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	orderID, err := parseOptionalObjectID(req.OrderID, "order")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	invoice := &domain.Invoice{
		OrderID:  orderID,
		Items:    req.Items,
		Tax:      req.Tax,
		Currency: req.Currency,
		DueDate:  req.DueDate,
		Status:   req.Status,
		Notes:    req.Notes,
	}
	if err := h.Svc.CreateInvoice(ctx, h.principal(r), invoice); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.invoiceResponse(w, r, http.StatusCreated, invoice)
}

// UpdateInvoice godoc
// @Summary Update invoice
// @Description Invoices with recorded payments can no longer be edited.
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body InvoiceBody true "Invoice payload"
// @Success 200 {object} SuccessResponse[InvoiceResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/invoices/{id} [put]
func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req InvoiceBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	id, err := requirePathObjectID(h.GetPathParam(r, "id"), "invoice")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	invoice := &domain.Invoice{
		BaseEntity: domain.BaseEntity{ID: id},
		Items:      req.Items,
		Tax:        req.Tax,
		Currency:   req.Currency,
		DueDate:    req.DueDate,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if err := h.Svc.UpdateInvoice(ctx, h.principal(r), invoice); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.invoiceResponse(w, r, http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary Delete invoice
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/invoices/{id} [delete]
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteInvoice(ctx, h.principal(r), h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}

type PaymentRequest struct {
	Amount    domain.Money         `json:"amount"`
	Method    domain.PaymentMethod `json:"method" validate:"required,oneof=cash bank_transfer card cheque"`
	Reference string               `json:"reference,omitempty"`
	PaidAt    int64                `json:"paidAt,omitempty"`
}

// RecordPayment godoc
// @Summary Record payment
// @Description Moves an issued invoice to partially_paid or paid. Overpayments are rejected.
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body PaymentRequest true "Payment"
// @Success 200 {object} SuccessResponse[InvoiceResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/invoices/{id}/payments [post]
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req PaymentRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	invoice, err := h.Svc.RecordPayment(ctx, h.principal(r), h.GetPathParam(r, "id"), domain.Payment{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    req.PaidAt,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.invoiceResponse(w, r, http.StatusOK, invoice)
}
