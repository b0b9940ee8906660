package service

import (
	"context"

	"github.com/procargo/backoffice/backoffice/domain"
)

func (svc *Service) QueryAuditLogs(ctx context.Context, operator *domain.Principal, opt *domain.QueryAuditLogOptions) error {
	if err := svc.authorize(operator, domain.ActionAuditLogRead); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryAuditLogs(ctx, opt)
}
