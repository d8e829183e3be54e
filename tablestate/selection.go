package tablestate

import (
	"strconv"
	"strings"
)

// SelectionState tracks which row ids are checked in an admin list view.
// The selection survives page navigation within the same view session, so
// "select across pages" works; only a bulk action or an explicit clear
// empties it. selectAll is always derived from the current page, never
// stored as independently authoritative.
type SelectionState struct {
	selected    map[int64]struct{}
	order       []int64 // insertion order of selected ids
	currentPage []int64
	selectAll   bool
}

func NewSelectionState() *SelectionState {
	return &SelectionState{selected: make(map[int64]struct{})}
}

// NormalizeIDs is the canonical transform applied to every external id
// input before it is trusted: non-positive ids are dropped, duplicates
// are dropped, insertion order is kept.
func NormalizeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ParseIDs normalizes raw string values (query-string or event payloads).
// Both repeated params and comma-joined values are accepted. Values that
// do not parse as integers are dropped, not rejected.
func ParseIDs(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, n)
		}
	}
	return NormalizeIDs(ids)
}

// Toggle flips membership of id in the selection. Toggling twice restores
// the original membership. Non-positive ids are ignored.
func (s *SelectionState) Toggle(id int64) {
	if id <= 0 {
		return
	}
	if _, ok := s.selected[id]; ok {
		s.remove(id)
	} else {
		s.add(id)
	}
	s.recomputeSelectAll()
}

// SetCurrentPage replaces the set of ids visible on the current page.
// Called once per page load, filter change, or sort change.
func (s *SelectionState) SetCurrentPage(ids []int64) {
	s.currentPage = NormalizeIDs(ids)
	s.recomputeSelectAll()
}

// SelectAllOnPage unions the current page into the selection.
func (s *SelectionState) SelectAllOnPage() {
	for _, id := range s.currentPage {
		s.add(id)
	}
	s.recomputeSelectAll()
}

// DeselectAllOnPage removes every id on the current page from the
// selection. Ids selected on other pages remain selected.
func (s *SelectionState) DeselectAllOnPage() {
	for _, id := range s.currentPage {
		s.remove(id)
	}
	s.recomputeSelectAll()
}

// SetSelectAll applies a select-all checkbox toggle. The boolean is user
// intent, not ground truth: the stored flag is still recomputed from the
// page afterwards.
func (s *SelectionState) SetSelectAll(checked bool) {
	if checked {
		s.SelectAllOnPage()
	} else {
		s.DeselectAllOnPage()
	}
}

// Clear empties the selection.
func (s *SelectionState) Clear() {
	s.selected = make(map[int64]struct{})
	s.order = s.order[:0]
	s.recomputeSelectAll()
}

// Replace swaps the whole selection for the given ids (normalized).
// Used to restore state from the URL and to retain failed ids after a
// partially failed bulk action.
func (s *SelectionState) Replace(ids []int64) {
	s.selected = make(map[int64]struct{})
	s.order = s.order[:0]
	for _, id := range NormalizeIDs(ids) {
		s.add(id)
	}
	s.recomputeSelectAll()
}

// SelectedIDs returns the selected ids in insertion order.
func (s *SelectionState) SelectedIDs() []int64 {
	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}

func (s *SelectionState) SelectedCount() int { return len(s.order) }

func (s *SelectionState) IsSelected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectAll reports whether every id on the current page is selected.
// False when the page is empty.
func (s *SelectionState) SelectAll() bool { return s.selectAll }

func (s *SelectionState) add(id int64) {
	if _, ok := s.selected[id]; ok {
		return
	}
	s.selected[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *SelectionState) remove(id int64) {
	if _, ok := s.selected[id]; !ok {
		return
	}
	delete(s.selected, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *SelectionState) recomputeSelectAll() {
	if len(s.currentPage) == 0 {
		s.selectAll = false
		return
	}
	for _, id := range s.currentPage {
		if _, ok := s.selected[id]; !ok {
			s.selectAll = false
			return
		}
	}
	s.selectAll = true
}
