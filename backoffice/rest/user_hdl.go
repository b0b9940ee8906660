package rest

import (
	"net/http"

	"github.com/procargo/backoffice/backoffice/domain"
)

type UserResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	Entity      domain.EntityType `json:"entity"`
	Role        domain.Role       `json:"role"`
	EntityID    string            `json:"entityId,omitempty"`
	Status      domain.UserStatus `json:"status"`
	LastLogin   int64             `json:"lastLogin,omitempty"`
	CreatedTime int64             `json:"createdTime"`
	UpdatedTime int64             `json:"updatedTime"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Entity:      u.Entity,
		Role:        u.Role,
		EntityID:    hexOrEmpty(u.EntityID),
		Status:      u.Status,
		LastLogin:   u.LastLogin,
		CreatedTime: u.CreatedTime,
		UpdatedTime: u.UpdatedTime,
	}
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Comma separated roles"
// @Param status query string false "active or inactive"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse[PageResponse[UserResponse]]
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt := &domain.QueryUserOptions{
		Roles:      queryEnums[domain.Role](r, "role"),
		Entities:   queryEnums[domain.EntityType](r, "entity"),
		Statuses:   queryEnums[domain.UserStatus](r, "status"),
		Pagination: queryPagination(r),
	}
	if err := h.Svc.QueryUsers(ctx, h.principal(r), opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]UserResponse, 0, len(opt.Result))
	for _, u := range opt.Result {
		items = append(items, newUserResponse(u))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(newPageResponse(items, opt.Pagination)))
}

// GetUser godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse[UserResponse]
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.Svc.GetUser(ctx, h.principal(r), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newUserResponse(user)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

type CreateUserRequest struct {
	Name     string            `json:"name" validate:"required,min=2,max=100"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=6"`
	Phone    string            `json:"phone"`
	Role     string            `json:"role" validate:"required"`
	Entity   string            `json:"entity,omitempty"`
	EntityID string            `json:"entityId,omitempty"`
	Status   domain.UserStatus `json:"status,omitempty"`
}

// CreateUser godoc
// @Summary Create user
// @Description Create a user with a canonical role. CLIENT and SUPPLIER users need an entityId.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} SuccessResponse[UserResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateUserRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid role", err)
		return
	}
	var entity domain.EntityType
	if req.Entity != "" {
		if entity, err = domain.ParseEntityType(req.Entity); err != nil {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid entity", err)
			return
		}
	}
	entityID, err := parseOptionalObjectID(req.EntityID, "entityId")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: domain.EncryptedPassword(req.Password),
		Phone:    req.Phone,
		Entity:   entity,
		Role:     role,
		EntityID: entityID,
		Status:   req.Status,
	}
	if err := h.Svc.CreateUser(ctx, h.principal(r), user); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newUserResponse(user)
	h.JSONResponse(ctx, w, http.StatusCreated, NewSuccessResponse(&resp))
}

type UpdateUserRequest struct {
	Name     *string            `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string            `json:"phone,omitempty"`
	Role     *string            `json:"role,omitempty"`
	EntityID *string            `json:"entityId,omitempty"`
	Status   *domain.UserStatus `json:"status,omitempty"`
}

// UpdateUser godoc
// @Summary Update user
// @Description Update profile, role, binding or status. Passwords are not changed here.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} SuccessResponse[UserResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateUserRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	opt := domain.UpdateUserOptions{Name: req.Name, Phone: req.Phone, Status: req.Status}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid role", err)
			return
		}
		opt.Role = &role
	}
	if req.EntityID != nil {
		id, err := parseOptionalObjectID(*req.EntityID, "entityId")
		if err != nil {
			h.HandleError(ctx, w, err)
			return
		}
		opt.EntityID = &id
	}

	user, err := h.Svc.UpdateUser(ctx, h.principal(r), h.GetPathParam(r, "id"), opt)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newUserResponse(user)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// DeleteUser godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteUser(ctx, h.principal(r), h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}
