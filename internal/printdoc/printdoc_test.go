package printdoc

import (
	"strings"
	"testing"
	"time"

	"order-desk/internal/model"
	"order-desk/internal/status"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(Company{
		Name:    "Sub Shop BD",
		Address: "House 1, Road 2, Dhaka",
		Phone:   "09600000000",
		Email:   "info@example.com",
		Terms:   "Sold goods are only returnable within 3 days.",
	}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func testOrder(id int64) model.Order {
	return model.Order{
		ID:      id,
		Name:    "Karim Uddin",
		Phone:   "+880 1712-345678",
		Address: "Flat 3B, Mirpur 10, Dhaka",
		Status:  status.Processing,
		Courier: "Pathao",
		Total:   1234.99,
		Products: []model.OrderProduct{
			{Name: "Basmati Rice 5kg", Quantity: 2, Price: 450.50},
			{Name: "", Quantity: 1, Price: 99.99},
		},
		CreatedAt: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
		Note:      "Deliver after 5pm",
	}
}

func TestComposeInvoice_SelectionFiltering(t *testing.T) {
	c := testComposer(t)

	// selected id 5 has no matching order and must be silently dropped
	job := model.NewPrintJob([]int64{2, 5}, []model.Order{testOrder(1), testOrder(2)}, "")

	html, err := c.ComposeInvoice(job)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, `class="invoice`), "exactly one document section")
	assert.Contains(t, html, ">#2<")
	assert.NotContains(t, html, ">#5<")
}

func TestComposeInvoice_FlooredAmounts(t *testing.T) {
	c := testComposer(t)
	job := model.NewPrintJob([]int64{1}, []model.Order{testOrder(1)}, "")

	html, err := c.ComposeInvoice(job)
	require.NoError(t, err)

	assert.Contains(t, html, "৳1234", "grand total is floored")
	assert.NotContains(t, html, "1235")
	assert.NotContains(t, html, "1234.99")
	assert.Contains(t, html, "৳450", "unit price is floored")
	assert.Contains(t, html, "৳901", "line total floors 450.50*2")
	assert.Contains(t, html, "৳0", "delivery charge is always zero")
}

func TestComposeInvoice_PrefixNumbering(t *testing.T) {
	c := testComposer(t)

	job := model.NewPrintJob([]int64{1}, []model.Order{testOrder(1)}, "INV-")
	html, err := c.ComposeInvoice(job)
	require.NoError(t, err)
	assert.Contains(t, html, "INV-1")
	assert.NotContains(t, html, "#1")

	job = model.NewPrintJob([]int64{1}, []model.Order{testOrder(1)}, "")
	html, err = c.ComposeInvoice(job)
	require.NoError(t, err)
	assert.Contains(t, html, "#1")
}

func TestComposeInvoice_MissingFieldFallbacks(t *testing.T) {
	c := testComposer(t)

	o := testOrder(1)
	o.Address = ""
	job := model.NewPrintJob([]int64{1}, []model.Order{o}, "")

	html, err := c.ComposeInvoice(job)
	require.NoError(t, err)
	assert.Contains(t, html, "No address provided")
	assert.Contains(t, html, "Unknown Product", "empty product name gets the fallback")
}

func TestComposeInvoice_PageBreaks(t *testing.T) {
	c := testComposer(t)
	job := model.NewPrintJob([]int64{1, 2, 3}, []model.Order{testOrder(1), testOrder(2), testOrder(3)}, "")

	html, err := c.ComposeInvoice(job)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(html, `class="invoice`))
	assert.Equal(t, 2, strings.Count(html, `class="invoice break"`), "page break on every order except the last")
}

func TestComposeInvoice_ContainsBarcodes(t *testing.T) {
	c := testComposer(t)
	job := model.NewPrintJob([]int64{1}, []model.Order{testOrder(1)}, "")

	html, err := c.ComposeInvoice(job)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, strings.Count(html, "<svg"), 2, "order id and phone barcodes")
	assert.Contains(t, html, "8801712345678", "phone barcode label uses digits only")
}

func TestComposeSticker(t *testing.T) {
	c := testComposer(t)
	job := model.NewPrintJob([]int64{1, 2}, []model.Order{testOrder(1), testOrder(2)}, "INV-")

	html, err := c.ComposeSticker(job)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `class="card"`))
	assert.Contains(t, html, "TO:")
	assert.Contains(t, html, "Karim Uddin")
	assert.Contains(t, html, "৳1234")
	assert.Contains(t, html, "3 item(s)")
	assert.Contains(t, html, "Processing")
	assert.Contains(t, html, "Pathao")
	assert.Contains(t, html, "page-break-inside: avoid")
}

func TestComposeSticker_TruncatesAddress(t *testing.T) {
	c := testComposer(t)

	o := testOrder(1)
	o.Address = strings.Repeat("Long Address Segment ", 10)
	job := model.NewPrintJob([]int64{1}, []model.Order{o}, "")

	html, err := c.ComposeSticker(job)
	require.NoError(t, err)
	assert.Contains(t, html, "…", "overlong addresses are truncated")
	assert.NotContains(t, html, o.Address)
}

func TestComposeSticker_EmptySelection(t *testing.T) {
	c := testComposer(t)
	job := model.NewPrintJob(nil, []model.Order{testOrder(1)}, "")

	html, err := c.ComposeSticker(job)
	require.NoError(t, err)
	assert.NotContains(t, html, `class="card"`)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "৳1234", Money(1234))
	assert.Equal(t, "৳0", Money(0))
}
