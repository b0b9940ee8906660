package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultAdminName = "General Manager"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (svc *Service) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	user, err := svc.getUserByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.Unauthorized("invalid credentials", fmt.Errorf("user %s not found", identifier))
	}
	ok, err := user.Password.Cmp(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Unauthorized("invalid credentials", fmt.Errorf("invalid password"))
	}
	if !user.IsActive() {
		return nil, errs.Unauthorized("account is deactivated", fmt.Errorf("user %s is %s", user.ID.Hex(), user.Status))
	}
	principal, err := user.Principal()
	if err != nil {
		return nil, errs.Forbidden("account role is not valid", err)
	}

	user.LastLogin = svc.now().UnixMilli()
	if err := svc.Repo.UpdateUser(ctx, user); err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("update last login failed")
	}
	return svc.newSession(user, principal)
}

func (svc *Service) Register(ctx context.Context, opt domain.RegisterOptions) (*domain.Session, error) {
	roleName := opt.Role
	if roleName == "" {
		roleName = string(domain.RoleClientManager)
	}
	role, err := domain.ParseRole(roleName)
	if err != nil {
		return nil, errs.BadRequest("invalid role", err)
	}
	if entity, _ := role.Entity(); entity != domain.EntityClient {
		return nil, errs.Forbidden("public registration is limited to client roles", errors.Errorf("role %s", role))
	}

	email := normalizeEmail(opt.Email)
	existing, err := svc.getUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Conflict("user already exists", fmt.Errorf("email %s is taken", email))
	}

	customer := &domain.Customer{
		BaseEntity:   domain.NewBaseEntity(nil, nil),
		Name:         opt.Name,
		Email:        email,
		Phone:        opt.Phone,
		CustomerType: domain.PartyTypeIndividual,
	}
	if opt.Company != "" {
		customer.Company.Name = opt.Company
		customer.CustomerType = domain.PartyTypeBusiness
	}
	if opt.Address != nil {
		customer.Address = *opt.Address
	}
	customer.ApplyDefaults()
	if err := svc.Repo.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errs.Conflict("customer already exists, ask a manager for an account", err)
		}
		return nil, err
	}

	user := &domain.User{
		BaseEntity: domain.NewBaseEntity(nil, nil),
		Name:       opt.Name,
		Email:      email,
		Password:   domain.EncryptedPassword(opt.Password),
		Phone:      opt.Phone,
		Entity:     domain.EntityClient,
		Role:       role,
		EntityID:   customer.ID,
		Status:     domain.UserStatusActive,
	}
	if err := svc.Repo.CreateUser(ctx, user); err != nil {
		return nil, repoError(err, "user")
	}
	customer.CreatorID = user.ID
	customer.UpdaterID = user.ID
	if err := svc.Repo.UpdateCustomer(ctx, customer); err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("set customer creator failed")
	}

	principal, err := user.Principal()
	if err != nil {
		return nil, err
	}
	return svc.newSession(user, principal)
}

// VerifyToken checks the signature and expiry of tokenString and loads the current
// principal of its user. Permissions always come from the stored role.
func (svc *Service) VerifyToken(ctx context.Context, tokenString string) (*domain.Principal, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return &svc.jwtPrivateKey.PublicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(svc.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, errs.Unauthorized("invalid token", err)
	}

	if principal, ok := svc.principals.Get(claims.UID); ok {
		return principal, nil
	}

	uid, err := claims.GetBsonObjectUID()
	if err != nil {
		return nil, errs.Unauthorized("invalid token", err)
	}
	user, err := svc.getUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.Unauthorized("invalid token", fmt.Errorf("user %s not found", claims.UID))
	}
	if !user.IsActive() {
		return nil, errs.Unauthorized("account is deactivated", fmt.Errorf("user %s is %s", claims.UID, user.Status))
	}
	principal, err := user.Principal()
	if err != nil {
		return nil, errs.Forbidden("account role is not valid", err)
	}
	svc.principals.Set(claims.UID, principal, cache.WithExpiration(svc.principalTTL))
	return principal, nil
}

func (svc *Service) GetSelf(ctx context.Context, operator *domain.Principal) (*domain.User, error) {
	if err := svc.authorize(operator, domain.ActionSelfRead); err != nil {
		return nil, err
	}
	uid, err := operatorObjectID(operator)
	if err != nil {
		return nil, err
	}
	user, err := svc.getUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user", operator.UserID())
	}
	return user, nil
}

func (svc *Service) ChangePassword(ctx context.Context, operator *domain.Principal, oldPassword, newPassword string) error {
	user, err := svc.GetSelf(ctx, operator)
	if err != nil {
		return err
	}
	ok, err := user.Password.Cmp(oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return errs.BadRequest("invalid old password", fmt.Errorf("old password mismatch"))
	}
	user.Password = domain.EncryptedPassword(newPassword)
	user.Touch(user.ID)
	if err := svc.Repo.UpdateUser(ctx, user); err != nil {
		return repoError(err, "user")
	}
	svc.audit(ctx, operator, domain.ActionSelfPassword, user.ID.Hex())
	return nil
}

// CreateAdminUserIfNotExists bootstraps a GENERAL_MANAGER account.
func (svc *Service) CreateAdminUserIfNotExists(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return errors.New("admin email and password are required")
	}
	existing, err := svc.getUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Logger(ctx).Info().Str("email", email).Msg("admin user already exists")
		return nil
	}

	name := svc.adminName
	if name == "" {
		name = defaultAdminName
	}
	user := &domain.User{
		BaseEntity: domain.NewBaseEntity(nil, nil),
		Name:       name,
		Email:      email,
		Password:   domain.EncryptedPassword(password),
		Entity:     domain.EntityPro,
		Role:       domain.RoleGeneralManager,
		Status:     domain.UserStatusActive,
	}
	if err := svc.Repo.CreateUser(ctx, user); err != nil {
		return err
	}
	logger.Logger(ctx).Info().Str("email", email).Msg("admin user created")
	return nil
}

func (svc *Service) newSession(user *domain.User, principal *domain.Principal) (*domain.Session, error) {
	expiresAt := svc.now().Add(svc.tokenTTL)
	token, err := svc.genJWTToken(user, expiresAt)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		User:      principal,
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
	}, nil
}

func (svc *Service) genJWTToken(user *domain.User, expiresAt time.Time) (string, error) {
	uid := user.ID.Hex()
	now := svc.now()
	claims := domain.Claims{
		UID:    uid,
		Role:   user.Role,
		Entity: user.Entity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    svc.issuer,
			Subject:   uid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(svc.jwtPrivateKey)
}

func (svc *Service) getUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	opts := &domain.QueryUserOptions{Emails: []string{normalizeEmail(email)}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, nil
	}
	return opts.Result[0], nil
}

func (svc *Service) getUserByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	opts := &domain.QueryUserOptions{IDs: []bson.ObjectID{id}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, nil
	}
	return opts.Result[0], nil
}

func (svc *Service) forgetPrincipal(id bson.ObjectID) {
	svc.principals.Delete(id.Hex())
}
