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

func (svc *Service) CreateUser(ctx context.Context, operator *domain.Principal, user *domain.User) error {
	if err := svc.authorize(operator, domain.ActionUserCreate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.BadRequest("user is required", errors.New("nil user"))
	}
	if user.Entity == "" {
		if entity, ok := user.Role.Entity(); ok {
			user.Entity = entity
		}
	}
	if _, err := user.Membership(); err != nil {
		return errs.BadRequest("invalid role or entity", err)
	}
	if err := svc.checkEntityBinding(ctx, user); err != nil {
		return err
	}

	user.BaseEntity = domain.NewBaseEntity(util.Ptr(operatorID), util.Ptr(operatorID))
	user.Email = normalizeEmail(user.Email)
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	if !user.Status.Valid() {
		return errs.BadRequest("invalid user status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", user.Status))
	}
	if err := svc.Repo.CreateUser(ctx, user); err != nil {
		return repoError(err, "user")
	}
	svc.audit(ctx, operator, domain.ActionUserCreate, user.ID.Hex())
	return nil
}

func (svc *Service) UpdateUser(ctx context.Context, operator *domain.Principal, id string, opt domain.UpdateUserOptions) (*domain.User, error) {
	if err := svc.authorize(operator, domain.ActionUserUpdate); err != nil {
		return nil, err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	user, err := svc.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if opt.Name != nil {
		user.Name = *opt.Name
	}
	if opt.Phone != nil {
		user.Phone = *opt.Phone
	}
	if opt.Status != nil {
		if !opt.Status.Valid() {
			return nil, errs.BadRequest("invalid user status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", *opt.Status))
		}
		user.Status = *opt.Status
	}
	if opt.Role != nil {
		role, err := domain.ParseRole(string(*opt.Role))
		if err != nil {
			return nil, errs.BadRequest("invalid role", err)
		}
		entity, _ := role.Entity()
		if entity == domain.EntityPro && opt.EntityID == nil {
			user.EntityID = bson.NilObjectID
		}
		user.Role = role
		user.Entity = entity
	}
	if opt.EntityID != nil {
		user.EntityID = *opt.EntityID
	}
	if _, err := user.Membership(); err != nil {
		return nil, errs.BadRequest("invalid role or entity", err)
	}
	if err := svc.checkEntityBinding(ctx, user); err != nil {
		return nil, err
	}

	user.Touch(operatorID)
	if err := svc.Repo.UpdateUser(ctx, user); err != nil {
		return nil, repoError(err, "user")
	}
	svc.forgetPrincipal(user.ID)
	svc.audit(ctx, operator, domain.ActionUserUpdate, user.ID.Hex())
	return user, nil
}

func (svc *Service) DeleteUser(ctx context.Context, operator *domain.Principal, id string) error {
	if err := svc.authorize(operator, domain.ActionUserDelete); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if id == operator.UserID() {
		return errs.BadRequest("cannot delete your own account", fmt.Errorf("user %s deletes itself", id))
	}
	user, err := svc.loadUser(ctx, id)
	if err != nil {
		return err
	}
	user.Touch(operatorID)
	user.DeletedTime = user.UpdatedTime
	if err := svc.Repo.UpdateUser(ctx, user); err != nil {
		return repoError(err, "user")
	}
	svc.forgetPrincipal(user.ID)
	svc.audit(ctx, operator, domain.ActionUserDelete, user.ID.Hex())
	return nil
}

func (svc *Service) GetUser(ctx context.Context, operator *domain.Principal, id string) (*domain.User, error) {
	if err := svc.authorize(operator, domain.ActionUserList); err != nil {
		return nil, err
	}
	return svc.loadUser(ctx, id)
}

func (svc *Service) QueryUsers(ctx context.Context, operator *domain.Principal, opt *domain.QueryUserOptions) error {
	if err := svc.authorize(operator, domain.ActionUserList); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryUsers(ctx, opt)
}

func (svc *Service) loadUser(ctx context.Context, id string) (*domain.User, error) {
	uid, err := parseObjectID(id, "user")
	if err != nil {
		return nil, err
	}
	user, err := svc.getUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user", id)
	}
	return user, nil
}

// checkEntityBinding requires CLIENT and SUPPLIER users to reference an existing
// customer or supplier, and PRO users to reference nothing.
func (svc *Service) checkEntityBinding(ctx context.Context, user *domain.User) error {
	if err := user.ValidateEntityBinding(); err != nil {
		return errs.BadRequest("invalid entity binding", err)
	}
	switch user.Entity {
	case domain.EntityClient:
		return svc.requireCustomer(ctx, user.EntityID)
	case domain.EntitySupplier:
		return svc.requireSupplier(ctx, user.EntityID)
	}
	return nil
}
