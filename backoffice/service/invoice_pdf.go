package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/procargo/backoffice/backoffice/domain"
)

var (
	pdfPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	pdfGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

const pdfDateLayout = "2006-01-02"

// RenderInvoicePDF renders an invoice the caller may view as an A4 PDF.
func (svc *Service) RenderInvoicePDF(ctx context.Context, operator *domain.Principal, id string) ([]byte, error) {
	invoice, err := svc.GetInvoice(ctx, operator, id)
	if err != nil {
		return nil, err
	}
	var customer *domain.Customer
	if !invoice.CustomerID.IsZero() {
		// a deleted customer still gets a printable invoice
		customer, _ = svc.loadCustomer(ctx, invoice.CustomerID.Hex())
	}
	return renderInvoice(invoice, customer)
}

func renderInvoice(invoice *domain.Invoice, customer *domain.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(invoiceHeaderRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(invoice, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.3}))
	m.AddRows(itemHeaderRow())
	for _, item := range invoice.Items {
		m.AddRows(itemRow(item, invoice.Currency))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("Subtotal", invoice.Subtotal, invoice.Currency, false))
	m.AddRows(totalRow("Tax", invoice.Tax, invoice.Currency, false))
	m.AddRows(totalRow("Total", invoice.Total, invoice.Currency, true))
	m.AddRows(totalRow("Paid", invoice.PaidAmount(), invoice.Currency, false))
	m.AddRows(totalRow("Outstanding", invoice.Outstanding(), invoice.Currency, true))
	if invoice.Notes != "" {
		m.AddRows(line.NewRow(4))
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New(invoice.Notes, props.Text{Size: 8, Color: pdfGray}))))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(pdfDateLayout)
}

func invoiceHeaderRow(invoice *domain.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{Style: fontstyle.Bold, Size: 14, Color: pdfPrimary, Top: 1}),
			text.New(invoice.InvoiceNumber, props.Text{Style: fontstyle.Bold, Size: 11, Top: 9}),
		),
		col.New(5).Add(
			text.New("Issued: "+formatMillis(invoice.CreatedTime), props.Text{Size: 8, Align: align.Right, Top: 2, Color: pdfGray}),
			text.New("Due: "+formatMillis(invoice.DueDate), props.Text{Size: 8, Align: align.Right, Top: 7, Color: pdfGray}),
			text.New("Status: "+string(invoice.Status), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 12}),
		),
	)
}

func billToRow(invoice *domain.Invoice, customer *domain.Customer) core.Row {
	name, email, address := invoice.CustomerID.Hex(), "", ""
	if customer != nil {
		name, email = customer.Name, customer.Email
		if customer.Company.Name != "" {
			name = customer.Company.Name + " / " + customer.Name
		}
		address = customer.Address.City + ", " + customer.Address.Country
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Size: 8, Color: pdfPrimary, Top: 1}),
			text.New(name, props.Text{Size: 9, Top: 5}),
			text.New(email+"  "+address, props.Text{Size: 8, Top: 10, Color: pdfGray}),
		),
	)
}

func itemHeaderRow() core.Row {
	head := props.Text{Style: fontstyle.Bold, Size: 8, Color: pdfPrimary, Top: 1}
	right := head
	right.Align = align.Right
	return row.New(7).Add(
		col.New(6).Add(text.New("Description", head)),
		col.New(2).Add(text.New("Qty", right)),
		col.New(2).Add(text.New("Unit price", right)),
		col.New(2).Add(text.New("Amount", right)),
	)
}

func itemRow(item domain.InvoiceItem, currency string) core.Row {
	right := props.Text{Size: 8, Align: align.Right, Top: 1}
	return row.New(6).Add(
		col.New(6).Add(text.New(item.Description, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(strconv.FormatInt(item.Quantity, 10), right)),
		col.New(2).Add(text.New(item.UnitPrice.StringFixed(2), right)),
		col.New(2).Add(text.New(item.Amount().StringFixed(2)+" "+currency, right)),
	)
}

func totalRow(label string, amount domain.Money, currency string, bold bool) core.Row {
	style := props.Text{Size: 9, Align: align.Right, Top: 1}
	if bold {
		style.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8),
		col.New(2).Add(text.New(label, style)),
		col.New(2).Add(text.New(amount.StringFixed(2)+" "+currency, style)),
	)
}
