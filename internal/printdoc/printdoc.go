// Package printdoc composes printable invoice and sticker documents from a
// PrintJob. Output is self-contained HTML with inline SVG barcodes, intended
// to be handed straight to the print dialog.
package printdoc

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"order-desk/internal/barcode"
	"order-desk/internal/model"

	"github.com/rs/zerolog"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Display fallbacks for missing order fields. Rendering never fails on
// absent data.
const (
	unknownProduct = "Unknown Product"
	noAddress      = "No address provided"
)

// deliveryCharge is shown as 0 on every invoice. The order form has its own
// delivery charge field; the invoice deliberately does not read it.
const deliveryCharge int64 = 0

// Company is the static header block printed on every invoice.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Terms   string
}

// Composer renders invoice and sticker documents.
type Composer struct {
	company   Company
	templates *template.Template
	logger    zerolog.Logger
}

// NewComposer parses the embedded templates.
func NewComposer(company Company, logger zerolog.Logger) (*Composer, error) {
	tmpl, err := template.New("printdoc").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse print templates: %w", err)
	}

	return &Composer{
		company:   company,
		templates: tmpl,
		logger:    logger.With().Str("component", "printdoc").Logger(),
	}, nil
}

// Money formats an amount for display: currency sign plus the floored
// value. 1234.99 renders as "৳1234", never "৳1235".
func Money(amount int64) string {
	return fmt.Sprintf("৳%d", amount)
}

// digitsOnly strips everything but 0-9, used for phone barcodes.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// barcodeSVG renders a barcode with the given encoding as a trusted HTML
// fragment. The SVG is generated locally from constant tables.
func barcodeSVG(enc *barcode.Encoding, text string, opts barcode.RenderOptions) template.HTML {
	return template.HTML(barcode.SVG(enc.Encode(text), opts)) // #nosec G203
}

func productName(p model.OrderProduct) string {
	if p.Name == "" {
		return unknownProduct
	}
	return p.Name
}

func addressOrFallback(o model.Order) string {
	if o.Address == "" {
		return noAddress
	}
	return o.Address
}
