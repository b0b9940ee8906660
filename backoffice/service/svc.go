package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/config"
	"github.com/procargo/backoffice/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/fx"
)

const (
	defaultTokenTTL     = 24 * time.Hour
	defaultIssuer       = "backoffice-api"
	defaultPrincipalTTL = 30 * time.Second
	ephemeralKeyBits    = 2048
)

type Params struct {
	fx.In
	Repo          domain.Repository
	KeyConfig     config.KeyConfig
	TokenConfig   config.TokenConfig
	CacheConfig   config.CacheConfig
	AccountConfig config.AccountConfig
}

func NewService(params Params) (domain.Service, error) {
	jwtPrivateKey, err := initRSAPrivateKey(params.KeyConfig.RsaPrivateKeyPem.Value())
	if err != nil {
		return nil, fmt.Errorf("initialize RSA private key: %w", err)
	}

	svc := &Service{
		Repo:          params.Repo,
		jwtPrivateKey: jwtPrivateKey,
		tokenTTL:      params.TokenConfig.TTL,
		issuer:        params.TokenConfig.Issuer,
		principalTTL:  params.CacheConfig.PrincipalTTL,
		principals:    cache.New[string, *domain.Principal](),
		adminName:     params.AccountConfig.AdminName,
		now:           time.Now,
	}
	if svc.tokenTTL <= 0 {
		svc.tokenTTL = defaultTokenTTL
	}
	if svc.issuer == "" {
		svc.issuer = defaultIssuer
	}
	if svc.principalTTL <= 0 {
		svc.principalTTL = defaultPrincipalTTL
	}
	return svc, nil
}

type Service struct {
	Repo          domain.Repository
	jwtPrivateKey *rsa.PrivateKey
	tokenTTL      time.Duration
	issuer        string
	principalTTL  time.Duration
	// principals caches verified principals by user id.
	principals *cache.Cache[string, *domain.Principal]
	adminName  string
	now        func() time.Time
}

// initRSAPrivateKey parses a PKCS1 or PKCS8 PEM key. An empty PEM yields a key generated
// for this process only, so issued tokens do not survive a restart.
func initRSAPrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	if pemStr == "" {
		logger.Logger(context.Background()).Warn().Msg("no rsa private key configured, generating an ephemeral key")
		return rsa.GenerateKey(rand.Reader, ephemeralKeyBits)
	}
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing private key")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %v", err)
		}
		var ok bool
		key, ok = keyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA")
		}
	}
	return key, nil
}

// authorize evaluates the guard of action for operator.
func (svc *Service) authorize(operator *domain.Principal, action domain.Action) error {
	if operator == nil {
		return errs.Unauthorized("unauthorized", errors.New("no authenticated principal"))
	}
	if !domain.Allowed(operator, action) {
		return errs.Forbidden("access denied", errors.Errorf("role %s may not perform %s", operator.Role(), action))
	}
	return nil
}

func operatorObjectID(operator *domain.Principal) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(operator.UserID())
	if err != nil {
		return bson.NilObjectID, errs.Unauthorized("unauthorized", fmt.Errorf("invalid user ID"))
	}
	return id, nil
}

func parseObjectID(id, resource string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, errs.BadRequest("invalid "+resource+" id", err)
	}
	return oid, nil
}

// entityObjectID returns the customer or supplier id a partner principal is bound to.
func entityObjectID(operator *domain.Principal) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(operator.EntityID())
	if err != nil {
		return bson.NilObjectID, false
	}
	return id, true
}

// repoError maps repository sentinels of resource to HTTP status errors.
func repoError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return errs.NotFound(resource+" not found", err)
	case errors.Is(err, domain.ErrDuplicate):
		return errs.Conflict(resource+" already exists", err)
	}
	return err
}

// audit records a privileged mutation. A failed write is logged and never fails the request.
func (svc *Service) audit(ctx context.Context, operator *domain.Principal, action domain.Action, target string) {
	meta := domain.RequestMetaFromContext(ctx)
	entry := &domain.AuditLog{
		Role:      operator.Role(),
		Action:    string(action),
		Target:    target,
		RequestID: meta.RequestID,
		IP:        meta.IP,
		Timestamp: svc.now().UnixMilli(),
	}
	if uid, err := bson.ObjectIDFromHex(operator.UserID()); err == nil {
		entry.UserID = uid
	}
	if err := svc.Repo.CreateAuditLog(ctx, entry); err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("action", string(action)).Msg("write audit log failed")
	}
}

func notFound(resource, id string) error {
	return errs.NewHTTPStatusError(http.StatusNotFound, resource+" not found", fmt.Errorf("%s with ID %s not found", resource, id))
}
