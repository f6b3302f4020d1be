package status

// Context identifies which list view the status selector is shown in. The
// invoice-pipeline views offer a different set of target statuses than the
// general order views.
type Context string

const (
	ContextDefault          Context = "default"
	ContextPendingInvoiced  Context = "pending-invoiced"
	ContextInvoiceChecked   Context = "invoice-checked"
	ContextInvoiced         Context = "invoiced"
	ContextStockOut         Context = "stock-out"
	ContextScheduleDelivery Context = "schedule-delivery"
)

// invoiceTargets is offered in every invoice-pipeline view.
var invoiceTargets = []Status{
	PendingInvoiced,
	InvoiceChecked,
	Invoiced,
	StockOut,
	ScheduleDelivery,
	Canceled,
	Delivered,
}

// defaultTargets is offered everywhere else.
var defaultTargets = []Status{
	OnHold,
	PendingPayment,
	ScheduleDelivery,
	Canceled,
	Completed,
}

var catalog = map[Context][]Status{
	ContextDefault:          defaultTargets,
	ContextPendingInvoiced:  invoiceTargets,
	ContextInvoiceChecked:   invoiceTargets,
	ContextInvoiced:         invoiceTargets,
	ContextStockOut:         invoiceTargets,
	ContextScheduleDelivery: invoiceTargets,
}

// TargetsFor returns the statuses selectable in the given filter context.
// Unknown contexts get the default set.
func TargetsFor(ctx Context) []Status {
	if targets, ok := catalog[ctx]; ok {
		return targets
	}
	return defaultTargets
}

// Allowed reports whether target may be selected in the given context.
func Allowed(ctx Context, target Status) bool {
	for _, s := range TargetsFor(ctx) {
		if s == target {
			return true
		}
	}
	return false
}

// navigate maps the statuses that re-route the list view after a transition
// to their bucket route, so the order immediately shows up in its new bucket.
var navigate = map[Status]string{
	PendingInvoiced:  "/orders/pending-invoiced",
	InvoiceChecked:   "/orders/invoice-checked",
	Invoiced:         "/orders/invoiced",
	StockOut:         "/orders/stock-out",
	ScheduleDelivery: "/orders/schedule-delivery",
}

// BucketRoute returns the route the view should navigate to after an order
// is moved to s, and whether navigation should happen at all.
func BucketRoute(s Status) (string, bool) {
	route, ok := navigate[s]
	return route, ok
}
