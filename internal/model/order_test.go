package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_DisplayTotal_FloorsNeverRounds(t *testing.T) {
	tests := []struct {
		total float64
		want  int64
	}{
		{1234.99, 1234},
		{1234.01, 1234},
		{1234.00, 1234},
		{0.99, 0},
	}

	for _, tt := range tests {
		o := Order{Total: tt.total}
		assert.Equal(t, tt.want, o.DisplayTotal(), "total %v", tt.total)
	}
}

func TestOrderProduct_Amounts(t *testing.T) {
	p := OrderProduct{Name: "Basmati Rice 5kg", Quantity: 3, Price: 150.40}

	assert.Equal(t, int64(150), p.UnitPrice())
	assert.Equal(t, int64(451), p.LineTotal(), "line total floors the product, not each unit")
}

func TestOrder_Subtotal(t *testing.T) {
	o := Order{Products: []OrderProduct{
		{Quantity: 2, Price: 100.75},
		{Quantity: 1, Price: 49.99},
	}}

	assert.Equal(t, int64(250), o.Subtotal())
	assert.Equal(t, 3, o.ItemCount())
}

func TestOrder_CourierDisplay(t *testing.T) {
	o := Order{}
	assert.Equal(t, "Not Assigned", o.CourierDisplay())

	o.Courier = "Pathao"
	assert.Equal(t, "Pathao", o.CourierDisplay())
}

func TestPrintJob_SelectedOrders(t *testing.T) {
	orders := []Order{{ID: 1}, {ID: 2}, {ID: 3}}
	job := NewPrintJob([]int64{3, 1, 42}, orders, "")

	got := job.SelectedOrders()
	assert.Len(t, got, 2, "unknown id 42 is dropped")
	assert.Equal(t, int64(1), got[0].ID, "list order wins over selection order")
	assert.Equal(t, int64(3), got[1].ID)
}

func TestPrintJob_OrderNumber(t *testing.T) {
	job := NewPrintJob(nil, nil, "INV-")
	assert.Equal(t, "INV-7", job.OrderNumber(7))

	job.Prefix = ""
	assert.Equal(t, "#7", job.OrderNumber(7))
}
