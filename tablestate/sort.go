package tablestate

import "strings"

// Direction is a sort direction. Anything unrecognized normalizes to asc.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection normalizes a raw direction value.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(strings.TrimSpace(raw), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortState tracks the active sort column and direction for a list view.
// The zero value means "no field selected": default ordering applies.
type SortState struct {
	field     string
	direction Direction
}

func NewSortState() *SortState {
	return &SortState{direction: Asc}
}

// SortBy applies a column-header click: clicking the active field flips
// the direction, clicking a new field selects it ascending.
func (s *SortState) SortBy(field string) {
	if field == s.field && field != "" {
		if s.direction == Asc {
			s.direction = Desc
		} else {
			s.direction = Asc
		}
		return
	}
	s.field = field
	s.direction = Asc
}

// Set restores field and direction from external input (URL state).
func (s *SortState) Set(field string, dir Direction) {
	s.field = field
	if dir != Desc {
		dir = Asc
	}
	s.direction = dir
}

// Clear resets to the initial state.
func (s *SortState) Clear() {
	s.field = ""
	s.direction = Asc
}

func (s *SortState) Field() string        { return s.field }
func (s *SortState) Direction() Direction { return s.direction }

func (s *SortState) IsSortedBy(field string) bool {
	return s.field != "" && s.field == field
}

// DirectionFor returns the direction for field, or nil unless field is
// the active sort field.
func (s *SortState) DirectionFor(field string) *Direction {
	if !s.IsSortedBy(field) {
		return nil
	}
	d := s.direction
	return &d
}

// Resolve returns the (field, direction) to apply against the given
// allow-list of sortable fields. A stale or forged field that is not in
// the list resolves to no sort at all rather than an error, so old
// bookmarked URLs keep working after a column is removed.
func (s *SortState) Resolve(allowed []string) (string, Direction, bool) {
	if s.field == "" {
		return "", Asc, false
	}
	if len(allowed) > 0 {
		found := false
		for _, f := range allowed {
			if f == s.field {
				found = true
				break
			}
		}
		if !found {
			return "", Asc, false
		}
	}
	return s.field, s.direction, true
}
