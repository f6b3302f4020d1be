package status

// Status is an order status value as stored by the external Orders API.
type Status string

// The full set of order statuses. The set is flat: any status may be changed
// to any other status in the set, the catalog only narrows which targets are
// offered in a given filter context.
const (
	Processing       Status = "Processing"
	PendingPayment   Status = "Pending Payment"
	OnHold           Status = "On Hold"
	Canceled         Status = "Canceled"
	Completed        Status = "Completed"
	PendingInvoiced  Status = "Pending Invoiced"
	InvoiceChecked   Status = "Invoice Checked"
	Invoiced         Status = "Invoiced"
	StockOut         Status = "Stock Out"
	ScheduleDelivery Status = "Schedule Delivery"
	Delivered        Status = "Delivered"
	CourierHold      Status = "Courier Hold"
	CourierReturn    Status = "Courier Return"
	Paid             Status = "Paid"
	Return           Status = "Return"
	Damaged          Status = "Damaged"
)

// AllOrders is a view-filter value only. It is never a persisted order
// status and is rejected as a transition target.
const AllOrders Status = "All Orders"

// All lists every real order status, in display order.
var All = []Status{
	Processing,
	PendingPayment,
	OnHold,
	Canceled,
	Completed,
	PendingInvoiced,
	InvoiceChecked,
	Invoiced,
	StockOut,
	ScheduleDelivery,
	Delivered,
	CourierHold,
	CourierReturn,
	Paid,
	Return,
	Damaged,
}

var valid = func() map[Status]bool {
	m := make(map[Status]bool, len(All))
	for _, s := range All {
		m[s] = true
	}
	return m
}()

// Valid reports whether s is a real order status.
func (s Status) Valid() bool {
	return valid[s]
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
