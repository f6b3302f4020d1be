// Package history tracks the append-only status log attached to each order.
package history

import (
	"fmt"
	"sort"

	"order-desk/internal/model"
	"order-desk/internal/status"
)

// DefaultPageSize is the page size of the history panel.
const DefaultPageSize = 10

// SortForDisplay orders entries newest first: created_at descending, ties
// broken by id descending so the most recently inserted entry wins.
func SortForDisplay(entries []model.StatusHistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// Page is one page of a display-sorted history log.
type Page struct {
	Entries    []model.StatusHistoryEntry `json:"entries"`
	Number     int                        `json:"page"`
	TotalRows  int                        `json:"total_rows"`
	TotalPages int                        `json:"total_pages"`
}

// Paginate slices display-sorted entries. Pages are 1-based.
func Paginate(entries []model.StatusHistoryEntry, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (len(entries) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	return Page{
		Entries:    entries[start:end],
		Number:     page,
		TotalRows:  len(entries),
		TotalPages: totalPages,
	}
}

// CreatedNote is the note written when an order first appears.
func CreatedNote(user string) string {
	return fmt.Sprintf("Order Has Been Created by %s", user)
}

// StatusChangeNote is the note appended on every status transition.
func StatusChangeNote(from, to status.Status) string {
	return fmt.Sprintf("Status Changed From <b>%s</b> To <b>%s</b>", from, to)
}

// BulkStatusNote is the note appended by bulk status changes, where the
// previous status is not tracked per order.
func BulkStatusNote(to status.Status) string {
	return fmt.Sprintf("Status Changed To <b>%s</b>", to)
}

// CourierNote is the note appended when a courier is assigned.
func CourierNote(courier string) string {
	return fmt.Sprintf("Courier Assigned To <b>%s</b>", courier)
}
