package printdoc

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"order-desk/internal/barcode"
	"order-desk/internal/model"
)

// sticker barcode geometry: narrower cards, slightly wider minimum bar so
// thermal printers keep the bars readable.
const (
	stickerBarWidth    = 140.0
	stickerBarHeight   = 36.0
	stickerMinBarWidth = 1.0
	stickerLabelHeight = 10.0

	// addresses are truncated so a card never overflows its fixed size
	stickerAddressLimit = 60
)

type stickerCard struct {
	Number       string
	OrderBarcode template.HTML
	Name         string
	Phone        string
	PhoneBarcode template.HTML
	Address      string
	Total        string
	ItemCount    int
	Status       string
	Courier      string
	Date         string
}

type stickerDocument struct {
	Cards []stickerCard
}

// ComposeSticker renders a compact 2-per-row grid of shipping cards for the
// selected orders. Selection filtering matches ComposeInvoice: unknown ids
// are dropped silently.
func (c *Composer) ComposeSticker(job model.PrintJob) (string, error) {
	orders := job.SelectedOrders()
	doc := stickerDocument{Cards: make([]stickerCard, 0, len(orders))}

	for _, o := range orders {
		doc.Cards = append(doc.Cards, c.stickerCard(&job, o))
	}

	var b strings.Builder
	if err := c.templates.ExecuteTemplate(&b, "sticker.html.tmpl", doc); err != nil {
		c.logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("sticker render failed")
		return "", fmt.Errorf("render sticker: %w", err)
	}

	c.logger.Info().
		Str("job_id", job.ID.String()).
		Int("cards", len(doc.Cards)).
		Msg("sticker sheet composed")
	return b.String(), nil
}

func (c *Composer) stickerCard(job *model.PrintJob, o model.Order) stickerCard {
	orderDigits := strconv.FormatInt(o.ID, 10)
	phoneDigits := digitsOnly(o.Phone)

	return stickerCard{
		Number: job.OrderNumber(o.ID),
		OrderBarcode: barcodeSVG(barcode.Code39, orderDigits, barcode.RenderOptions{
			Width:       stickerBarWidth,
			Height:      stickerBarHeight,
			MinBarWidth: stickerMinBarWidth,
			Label:       orderDigits,
			LabelHeight: stickerLabelHeight,
		}),
		Name:  o.Name,
		Phone: o.Phone,
		PhoneBarcode: barcodeSVG(barcode.Numeric, phoneDigits, barcode.RenderOptions{
			Width:       stickerBarWidth,
			Height:      stickerBarHeight,
			MinBarWidth: stickerMinBarWidth,
			Label:       phoneDigits,
			LabelHeight: stickerLabelHeight,
		}),
		Address:   truncate(addressOrFallback(o), stickerAddressLimit),
		Total:     Money(o.DisplayTotal()),
		ItemCount: o.ItemCount(),
		Status:    o.Status.String(),
		Courier:   o.Courier,
		Date:      o.CreatedAt.Format(invoiceDateFormat),
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
