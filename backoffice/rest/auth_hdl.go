package rest

import (
	"errors"
	"net/http"

	"github.com/procargo/backoffice/backoffice/domain"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password and receive a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SuccessResponse[domain.Session]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}

	session, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(session))
}

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Phone    string          `json:"phone"`
	Role     string          `json:"role,omitempty"`
	Company  string          `json:"company,omitempty"`
	Address  *domain.Address `json:"address,omitempty"`
}

// Register godoc
// @Summary Client self sign-up
// @Description Create a customer and a CLIENT user bound to it. Only CLIENT roles are accepted.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Sign-up payload"
// @Success 201 {object} SuccessResponse[domain.Session]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}

	session, err := h.Svc.Register(ctx, domain.RegisterOptions{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
		Company:  req.Company,
		Address:  req.Address,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusCreated, NewSuccessResponse(session))
}

type SelfResponse struct {
	User        UserResponse    `json:"user"`
	Permissions []string        `json:"permissions"`
	Actions     []domain.Action `json:"actions"`
}

// GetSelf godoc
// @Summary Current user
// @Description The authenticated user with its derived permissions and allowed actions.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse[SelfResponse]
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *Handler) GetSelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := h.principal(r)
	user, err := h.Svc.GetSelf(ctx, principal)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	perms := principal.Permissions()
	resp := SelfResponse{
		User:        newUserResponse(user),
		Permissions: make([]string, 0, len(perms)),
		Actions:     domain.AllowedActions(principal),
	}
	for _, p := range perms {
		resp.Permissions = append(resp.Permissions, string(p))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

type PermissionsResponse struct {
	Roles  []domain.RoleDefinition              `json:"roles"`
	Guards map[domain.Action]domain.Requirement `json:"guards"`
}

// ListPermissions godoc
// @Summary Role and guard tables
// @Description The role to permission table and the requirement of every action, for UI guards.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse[PermissionsResponse]
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/permissions [get]
func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	resp := PermissionsResponse{
		Roles:  domain.RoleTable(),
		Guards: domain.GuardTable(),
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, NewSuccessResponse(&resp))
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ChangePassword godoc
// @Summary Change own password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/users/self/password [put]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ChangePasswordRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.BindError(ctx, w, err)
		return
	}
	if req.OldPassword == req.NewPassword {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "New password must differ from the old one", errors.New("password unchanged"))
		return
	}

	if err := h.Svc.ChangePassword(ctx, h.principal(r), req.OldPassword, req.NewPassword); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}
