package model

import (
	"strconv"

	"github.com/google/uuid"
)

// PrintJob carries everything a print composer needs: the orders snapshot,
// the user's selection, and the configured invoice-number prefix. It is
// transient and discarded after the document is rendered.
type PrintJob struct {
	ID          uuid.UUID
	SelectedIDs []int64
	Orders      []Order
	Prefix      string
}

// NewPrintJob assembles a print job for the given selection.
func NewPrintJob(selected []int64, orders []Order, prefix string) PrintJob {
	return PrintJob{
		ID:          uuid.New(),
		SelectedIDs: selected,
		Orders:      orders,
		Prefix:      prefix,
	}
}

// SelectedOrders returns the orders matching the selection, in order-list
// order. Selected IDs with no matching order are silently dropped.
func (j *PrintJob) SelectedOrders() []Order {
	selected := make(map[int64]bool, len(j.SelectedIDs))
	for _, id := range j.SelectedIDs {
		selected[id] = true
	}

	var out []Order
	for _, o := range j.Orders {
		if selected[o.ID] {
			out = append(out, o)
		}
	}
	return out
}

// OrderNumber formats an order id for display: "prefix+id" when an invoice
// prefix is configured, "#id" otherwise.
func (j *PrintJob) OrderNumber(id int64) string {
	if j.Prefix != "" {
		return j.Prefix + strconv.FormatInt(id, 10)
	}
	return "#" + strconv.FormatInt(id, 10)
}
