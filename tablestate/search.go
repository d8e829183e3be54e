package tablestate

import "strings"

// SearchState tracks the free-text filter term of a list view.
// The empty string means "no filter".
type SearchState struct {
	term string
}

func NewSearchState() *SearchState { return &SearchState{} }

// SetTerm stores the trimmed term and reports whether it changed.
// A change means the owning view must reset to page 1.
func (s *SearchState) SetTerm(raw string) bool {
	t := strings.TrimSpace(raw)
	if t == s.term {
		return false
	}
	s.term = t
	return true
}

// Term returns the normalized term, never padded, never "unset".
func (s *SearchState) Term() string { return s.term }

func (s *SearchState) IsEmpty() bool { return s.term == "" }

func (s *SearchState) Clear() { s.term = "" }
