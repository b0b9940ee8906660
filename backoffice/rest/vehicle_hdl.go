package rest

import (
	"net/http"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type VehicleBody struct {
	PlateNumber     string               `json:"plateNumber" validate:"required"`
	Type            domain.VehicleType   `json:"type" validate:"required"`
	Model           domain.VehicleModel  `json:"model"`
	Capacity        domain.Capacity      `json:"capacity"`
	Driver          domain.Driver        `json:"driver"`
	Status          domain.VehicleStatus `json:"status,omitempty"`
	CurrentLocation string               `json:"currentLocation,omitempty"`
	IsActive        *bool                `json:"isActive,omitempty"`
}

func (b VehicleBody) toDomain(id bson.ObjectID) *domain.Vehicle {
	v := &domain.Vehicle{
		BaseEntity:      domain.BaseEntity{ID: id},
		PlateNumber:     b.PlateNumber,
		Type:            b.Type,
		Model:           b.Model,
		Capacity:        b.Capacity,
		Driver:          b.Driver,
		Status:          b.Status,
		CurrentLocation: b.CurrentLocation,
		IsActive:        true,
	}
	if b.IsActive != nil {
		v.IsActive = *b.IsActive
	}
	return v
}

type VehicleResponse struct {
	ID string `json:"id"`
	VehicleBody
	CreatedTime int64 `json:"createdTime"`
	UpdatedTime int64 `json:"updatedTime"`
}

func newVehicleResponse(v *domain.Vehicle) VehicleResponse {
	active := v.IsActive
	return VehicleResponse{
		ID: v.ID.Hex(),
		VehicleBody: VehicleBody{
			PlateNumber:     v.PlateNumber,
			Type:            v.Type,
			Model:           v.Model,
			Capacity:        v.Capacity,
			Driver:          v.Driver,
			Status:          v.Status,
			CurrentLocation: v.CurrentLocation,
			IsActive:        &active,
		},
		CreatedTime: v.CreatedTime,
		UpdatedTime: v.UpdatedTime,
	}
}

// ListVehicles godoc
// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param type query string false "Comma separated vehicle types"
// @Param status query string false "Comma separated statuses"
// @Param active query bool false "Only active vehicles"
// @Success 200 {object} SuccessResponse[[]VehicleResponse]
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/vehicles [get]
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt := &domain.QueryVehicleOptions{
		Types:      queryEnums[domain.VehicleType](r, "type"),
		Statuses:   queryEnums[domain.VehicleStatus](r, "status"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	}
	if err := h.Svc.QueryVehicles(ctx, h.principal(r), opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]VehicleResponse, 0, len(opt.Result))
	for _, v := range opt.Result {
		items = append(items, newVehicleResponse(v))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&items))
}

// GetVehicle godoc
// @Summary Get vehicle
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} SuccessResponse[VehicleResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/vehicles/{id} [get]
func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vehicle, err := h.Svc.GetVehicle(ctx, h.principal(r), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newVehicleResponse(vehicle)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// CreateVehicle godoc
// @Summary Create vehicle
// @Description GENERAL_MANAGER or OPERATIONS_MANAGER only.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VehicleBody true "Vehicle payload"
// @Success 201 {object} SuccessResponse[VehicleResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/vehicles [post]
func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req VehicleBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	vehicle := req.toDomain(bson.NilObjectID)
	if err := h.Svc.CreateVehicle(ctx, h.principal(r), vehicle); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newVehicleResponse(vehicle)
	h.JSONResponse(ctx, w, http.StatusCreated, NewSuccessResponse(&resp))
}

// UpdateVehicle godoc
// @Summary Update vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body VehicleBody true "Vehicle payload"
// @Success 200 {object} SuccessResponse[VehicleResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/vehicles/{id} [put]
func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req VehicleBody
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	id, err := requirePathObjectID(h.GetPathParam(r, "id"), "vehicle")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	vehicle := req.toDomain(id)
	if err := h.Svc.UpdateVehicle(ctx, h.principal(r), vehicle); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newVehicleResponse(vehicle)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}
