package model

import "time"

// StatusHistoryEntry is one record in an order's append-only status log.
// Entries are created when the order is created, on every status change or
// courier assignment, and for manually added notes. They are never edited or
// deleted individually.
type StatusHistoryEntry struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	// Notes may contain simple inline markup (line breaks) and is rendered
	// as a trusted fragment.
	Notes string `json:"notes"`
	User  string `json:"user"`
}
