package orderlist

import "sort"

// SelectionSet is the ephemeral set of order ids currently checked in the
// table. It is scoped to the loaded list and cleared after a successful bulk
// action; it is never persisted.
type SelectionSet struct {
	ids map[int64]bool
}

// NewSelectionSet creates a selection, optionally pre-populated.
func NewSelectionSet(ids ...int64) *SelectionSet {
	s := &SelectionSet{ids: make(map[int64]bool, len(ids))}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s
}

// Toggle flips the selection state of a single order.
func (s *SelectionSet) Toggle(id int64) {
	if s.ids[id] {
		delete(s.ids, id)
		return
	}
	s.ids[id] = true
}

// ToggleAll implements the "select all on this page" checkbox: if every
// visible row is already selected, exactly those rows are deselected;
// otherwise all visible rows are selected. Selections on other pages are
// never touched.
func (s *SelectionSet) ToggleAll(visible []int64) {
	allSelected := len(visible) > 0
	for _, id := range visible {
		if !s.ids[id] {
			allSelected = false
			break
		}
	}

	for _, id := range visible {
		if allSelected {
			delete(s.ids, id)
		} else {
			s.ids[id] = true
		}
	}
}

// Contains reports whether the order is selected.
func (s *SelectionSet) Contains(id int64) bool {
	return s.ids[id]
}

// Len returns the number of selected orders.
func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// Empty reports whether nothing is selected.
func (s *SelectionSet) Empty() bool {
	return len(s.ids) == 0
}

// Clear drops the whole selection, as after a successful bulk action.
func (s *SelectionSet) Clear() {
	s.ids = make(map[int64]bool)
}

// IDs returns the selected ids in ascending order.
func (s *SelectionSet) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
