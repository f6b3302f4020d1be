// Package orderlist holds the pure list logic behind the order table:
// filtering, newest-first sorting, pagination and row selection. It never
// talks to the network; the service layer feeds it snapshots fetched from
// the external Orders API.
package orderlist

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"order-desk/internal/model"
	"order-desk/internal/status"
)

// DefaultPageSize is the fixed page size of the order table.
const DefaultPageSize = 20

// Filter is the set of simultaneous predicates applied to the order list.
// Zero values mean "not filtering on this field".
type Filter struct {
	// Status is the bucket filter from the sidebar. status.AllOrders (or
	// empty) matches everything.
	Status status.Status
	// OrderID matches as a substring of the decimal order id.
	OrderID string
	// Phone matches as a substring of the customer phone.
	Phone string
	// Courier matches the assigned courier exactly.
	Courier string
	// StatusOverride is the generic status filter from the toolbar; it is
	// applied on top of the bucket filter.
	StatusOverride status.Status
	// UserID filters by the owning user.
	UserID int64
	// Date matches orders created on that calendar day.
	Date time.Time
}

// Apply returns the orders matching every set predicate, preserving input
// order.
func (f Filter) Apply(orders []model.Order) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(&o) {
			out = append(out, o)
		}
	}
	return out
}

func (f Filter) matches(o *model.Order) bool {
	if f.Status != "" && f.Status != status.AllOrders && o.Status != f.Status {
		return false
	}
	if f.StatusOverride != "" && o.Status != f.StatusOverride {
		return false
	}
	if f.OrderID != "" && !strings.Contains(strconv.FormatInt(o.ID, 10), f.OrderID) {
		return false
	}
	if f.Phone != "" && !strings.Contains(o.Phone, f.Phone) {
		return false
	}
	if f.Courier != "" && o.Courier != f.Courier {
		return false
	}
	if f.UserID != 0 && o.UserID != f.UserID {
		return false
	}
	if !f.Date.IsZero() {
		y1, m1, d1 := f.Date.Date()
		y2, m2, d2 := o.CreatedAt.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	return true
}

// Sort orders the list newest first: created_at descending, falling back to
// id descending when timestamps are equal or absent. The result is
// deterministic for any input order.
func Sort(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// Page is one page of the filtered, sorted result set.
type Page struct {
	Orders     []model.Order `json:"orders"`
	Number     int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalRows  int           `json:"total_rows"`
	TotalPages int           `json:"total_pages"`
}

// Paginate slices the list at a fixed page size. Pages are 1-based; an
// out-of-range page yields an empty page with correct totals.
func Paginate(orders []model.Order, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (len(orders) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(orders) {
		start = len(orders)
	}
	if end > len(orders) {
		end = len(orders)
	}

	return Page{
		Orders:     orders[start:end],
		Number:     page,
		PageSize:   pageSize,
		TotalRows:  len(orders),
		TotalPages: totalPages,
	}
}

// CountByStatus tallies orders per status, used for the sidebar bucket
// counts.
func CountByStatus(orders []model.Order) map[status.Status]int {
	counts := make(map[status.Status]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}
