package service

import (
	"context"

	"github.com/procargo/backoffice/backoffice/domain"
)

// GetSummaryReport counts orders by status within the operator's order scope and
// totals the invoices the operator may see. Cancelled invoices are left out.
func (svc *Service) GetSummaryReport(ctx context.Context, operator *domain.Principal) (*domain.SummaryReport, error) {
	if err := svc.authorize(operator, domain.ActionReportRead); err != nil {
		return nil, err
	}
	report := &domain.SummaryReport{
		OrdersByStatus: map[domain.OrderStatus]int64{},
		GeneratedAt:    svc.now().UnixMilli(),
	}

	counts, err := svc.Repo.CountOrdersByStatus(ctx, domain.OrderScopeFor(operator))
	if err != nil {
		return nil, err
	}
	for status, n := range counts {
		report.OrdersByStatus[status] = n
		report.TotalOrders += n
	}

	if operator.HasPermission(domain.ViewInvoices) {
		opts := &domain.QueryInvoiceOptions{
			Statuses: []domain.InvoiceStatus{domain.InvoiceDraft, domain.InvoiceIssued, domain.InvoicePartiallyPaid, domain.InvoicePaid},
		}
		if err := svc.QueryInvoices(ctx, operator, opts); err != nil {
			return nil, err
		}
		billed := make([]domain.Money, 0, len(opts.Result))
		paid := make([]domain.Money, 0, len(opts.Result))
		for _, inv := range opts.Result {
			billed = append(billed, inv.Total)
			paid = append(paid, inv.PaidAmount())
		}
		report.Invoices = domain.InvoiceTotals{
			Count:  int64(len(opts.Result)),
			Billed: domain.SumMoney(billed...),
			Paid:   domain.SumMoney(paid...),
		}
		report.Invoices.Outstanding = report.Invoices.Billed.Minus(report.Invoices.Paid)
	}
	return report, nil
}
