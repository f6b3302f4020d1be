package model

import (
	"math"
	"time"

	"order-desk/internal/status"
)

// Order is the central entity. It is owned by the external Orders API; this
// service only ever holds read snapshots of it.
type Order struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	Status    status.Status  `json:"status"`
	Courier   string         `json:"courier,omitempty"`
	Total     float64        `json:"total"`
	Products  []OrderProduct `json:"products"`
	CreatedAt time.Time      `json:"created_at"`
	Note      string         `json:"note,omitempty"`
	UserID    int64          `json:"user_id,omitempty"`
}

// OrderProduct is a single line item on an order.
type OrderProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

// DisplayTotal returns the order total as shown to the user. Amounts are
// always truncated, never rounded: 1234.99 displays as 1234.
func (o *Order) DisplayTotal() int64 {
	return int64(math.Floor(o.Total))
}

// Subtotal sums the floored line totals of all products.
func (o *Order) Subtotal() int64 {
	var sum int64
	for _, p := range o.Products {
		sum += p.LineTotal()
	}
	return sum
}

// ItemCount sums the quantities across all line items.
func (o *Order) ItemCount() int {
	var n int
	for _, p := range o.Products {
		n += p.Quantity
	}
	return n
}

// CourierDisplay returns the courier name, or the placeholder shown when no
// courier has been assigned.
func (o *Order) CourierDisplay() string {
	if o.Courier == "" {
		return "Not Assigned"
	}
	return o.Courier
}

// UnitPrice returns the floored per-unit price for display.
func (p *OrderProduct) UnitPrice() int64 {
	return int64(math.Floor(p.Price))
}

// LineTotal returns the floored price * quantity for display.
func (p *OrderProduct) LineTotal() int64 {
	return int64(math.Floor(p.Price * float64(p.Quantity)))
}
