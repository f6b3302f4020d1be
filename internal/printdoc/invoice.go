package printdoc

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"order-desk/internal/barcode"
	"order-desk/internal/model"
)

// invoice barcode geometry, matching the printed layout.
const (
	invoiceBarWidth    = 180.0
	invoiceBarHeight   = 50.0
	invoiceMinBarWidth = 0.8
	invoiceLabelHeight = 12.0
)

type invoiceItem struct {
	Index     int
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type invoicePage struct {
	Number         string
	OrderBarcode   template.HTML
	CustomerName   string
	CustomerPhone  string
	PhoneBarcode   template.HTML
	Address        string
	Items          []invoiceItem
	Subtotal       string
	DeliveryCharge string
	GrandTotal     string
	Note           string
	Date           string
	Last           bool
}

type invoiceDocument struct {
	Company Company
	Pages   []invoicePage
}

// ComposeInvoice renders one printable page per selected order. Selected ids
// missing from the job's order list are silently skipped.
func (c *Composer) ComposeInvoice(job model.PrintJob) (string, error) {
	orders := job.SelectedOrders()
	doc := invoiceDocument{Company: c.company, Pages: make([]invoicePage, 0, len(orders))}

	for i, o := range orders {
		doc.Pages = append(doc.Pages, c.invoicePage(&job, o, i == len(orders)-1))
	}

	var b strings.Builder
	if err := c.templates.ExecuteTemplate(&b, "invoice.html.tmpl", doc); err != nil {
		c.logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("invoice render failed")
		return "", fmt.Errorf("render invoice: %w", err)
	}

	c.logger.Info().
		Str("job_id", job.ID.String()).
		Int("pages", len(doc.Pages)).
		Msg("invoice composed")
	return b.String(), nil
}

func (c *Composer) invoicePage(job *model.PrintJob, o model.Order, last bool) invoicePage {
	orderDigits := strconv.FormatInt(o.ID, 10)
	phoneDigits := digitsOnly(o.Phone)

	items := make([]invoiceItem, 0, len(o.Products))
	for i, p := range o.Products {
		items = append(items, invoiceItem{
			Index:     i + 1,
			Name:      productName(p),
			Quantity:  p.Quantity,
			UnitPrice: Money(p.UnitPrice()),
			LineTotal: Money(p.LineTotal()),
		})
	}

	return invoicePage{
		Number: job.OrderNumber(o.ID),
		OrderBarcode: barcodeSVG(barcode.Code39, orderDigits, barcode.RenderOptions{
			Width:       invoiceBarWidth,
			Height:      invoiceBarHeight,
			MinBarWidth: invoiceMinBarWidth,
			Label:       orderDigits,
			LabelHeight: invoiceLabelHeight,
		}),
		CustomerName:  o.Name,
		CustomerPhone: o.Phone,
		PhoneBarcode: barcodeSVG(barcode.Numeric, phoneDigits, barcode.RenderOptions{
			Width:       invoiceBarWidth,
			Height:      invoiceBarHeight,
			MinBarWidth: invoiceMinBarWidth,
			Label:       phoneDigits,
			LabelHeight: invoiceLabelHeight,
		}),
		Address:        addressOrFallback(o),
		Items:          items,
		Subtotal:       Money(o.Subtotal()),
		DeliveryCharge: Money(deliveryCharge),
		GrandTotal:     Money(o.DisplayTotal()),
		Note:           o.Note,
		Date:           o.CreatedAt.Format(invoiceDateFormat),
		Last:           last,
	}
}

const invoiceDateFormat = "02 Jan 2006"
