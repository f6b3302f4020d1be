package repository

import (
	"context"
	"errors"
	"fmt"

	"order-desk/internal/model"
	"order-desk/internal/status"
)

// Sentinel errors for upstream outcomes.
var (
	// ErrOrderNotFound indicates the Orders API does not know the order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNoToken indicates no bearer token was available for a protected
	// call. The request is never issued.
	ErrNoToken = errors.New("missing bearer token")
)

// UpstreamError represents a non-2xx response from the Orders API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("orders api returned %d", e.StatusCode)
}

// OrderPatch carries the mutable order fields for a partial update. Nil
// fields are omitted from the request body.
type OrderPatch struct {
	Status  *status.Status `json:"status,omitempty"`
	Courier *string        `json:"courier,omitempty"`
	Note    *string        `json:"note,omitempty"`
}

// OrderRepository defines the order operations backed by the external
// Orders API. The service layer owns all in-memory state; this interface
// only moves data.
type OrderRepository interface {
	// List retrieves the full order collection.
	List(ctx context.Context) ([]model.Order, error)

	// Search performs the header quick-search and returns subset-field
	// orders.
	Search(ctx context.Context, query string) ([]model.Order, error)

	// Get retrieves a single order.
	Get(ctx context.Context, id int64) (*model.Order, error)

	// Update applies a partial update and returns the updated order.
	Update(ctx context.Context, id int64, patch OrderPatch) (*model.Order, error)

	// Delete removes an order.
	Delete(ctx context.Context, id int64) error

	// StatusHistory retrieves the full status log of an order.
	StatusHistory(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error)

	// AddStatusHistory appends a note to the status log.
	AddStatusHistory(ctx context.Context, orderID int64, notes string) (*model.StatusHistoryEntry, error)
}

// SettingsRepository exposes the dashboard settings owned by the external
// API.
type SettingsRepository interface {
	// InvoicePrefix returns the display prefix for order numbers; empty
	// means plain "#id" numbering.
	InvoicePrefix(ctx context.Context) (string, error)
}
