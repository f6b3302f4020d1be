package service

import (
	"context"

	"order-desk/internal/history"
	"order-desk/internal/model"
	"order-desk/internal/orderlist"
	"order-desk/internal/status"
)

// ListQuery is the combined filter + pagination request for the order table.
type ListQuery struct {
	Filter   orderlist.Filter
	Page     int
	PageSize int
}

// ListResult is one page of orders plus the sidebar bucket counts.
type ListResult struct {
	Page   orderlist.Page        `json:"page"`
	Counts map[status.Status]int `json:"counts"`
}

// TransitionRequest asks for one order's status to change.
type TransitionRequest struct {
	OrderID int64
	Target  status.Status
	// Context is the filter view the selector was shown in; it decides
	// which targets are legal.
	Context status.Context
	// User is the acting user's display name, recorded in the history log.
	User string
}

// TransitionResult reports a confirmed transition. Redirect is empty unless
// the target status re-routes the list view to its bucket.
type TransitionResult struct {
	Order        *model.Order       `json:"order"`
	Redirect     string             `json:"redirect,omitempty"`
	Notification model.Notification `json:"notification"`
}

// CourierResult reports a confirmed courier assignment.
type CourierResult struct {
	Order        *model.Order       `json:"order"`
	Notification model.Notification `json:"notification"`
}

// BulkFailure is one failed item in a best-effort bulk operation.
type BulkFailure struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// BulkResult reports a settled bulk operation. The selection should be
// cleared only when ClearSelection is set, i.e. every item succeeded.
type BulkResult struct {
	Succeeded      []int64            `json:"succeeded"`
	Failed         []BulkFailure      `json:"failed,omitempty"`
	ClearSelection bool               `json:"clear_selection"`
	Notification   model.Notification `json:"notification"`
}

// OrderService is the order-administration API consumed by the HTTP layer.
type OrderService interface {
	// List fetches the order collection and derives the requested
	// filtered, sorted, paginated view.
	List(ctx context.Context, query ListQuery) (*ListResult, error)

	// Search performs the header quick-search.
	Search(ctx context.Context, q string) ([]model.Order, error)

	// Get retrieves a single order.
	Get(ctx context.Context, id int64) (*model.Order, error)

	// Transition changes one order's status, appends a history entry and
	// computes the redirect route. The change is committed only after the
	// Orders API confirms it.
	Transition(ctx context.Context, req TransitionRequest) (*TransitionResult, error)

	// AssignCourier sets the courier on an order and records the
	// assignment in the status log. Like Transition, nothing is applied
	// unless the Orders API confirms the update.
	AssignCourier(ctx context.Context, orderID int64, courier, user string) (*CourierResult, error)

	// Delete removes a single order.
	Delete(ctx context.Context, id int64) (model.Notification, error)

	// BulkStatus applies one target status to every selected order,
	// best-effort with per-item results.
	BulkStatus(ctx context.Context, ids []int64, target status.Status, user string) (*BulkResult, error)

	// BulkDelete removes every selected order, best-effort.
	BulkDelete(ctx context.Context, ids []int64) (*BulkResult, error)

	// History returns one display-sorted page of an order's status log.
	History(ctx context.Context, orderID int64, page int) (*history.Page, error)

	// AddNote appends a manual note to an order's status log.
	AddNote(ctx context.Context, orderID int64, notes, user string) (*model.StatusHistoryEntry, error)

	// BuildPrintJob assembles the transient print job for a selection.
	BuildPrintJob(ctx context.Context, ids []int64) (*model.PrintJob, error)
}
