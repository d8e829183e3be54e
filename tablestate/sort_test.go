package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByTogglesOnRepeatedClick(t *testing.T) {
	s := NewSortState()

	s.SortBy("title")
	assert.Equal(t, "title", s.Field())
	assert.Equal(t, Asc, s.Direction())

	s.SortBy("title")
	assert.Equal(t, Desc, s.Direction())

	s.SortBy("title")
	assert.Equal(t, Asc, s.Direction())
}

func TestSortBySwitchingFieldResetsToAsc(t *testing.T) {
	s := NewSortState()
	s.SortBy("title")
	s.SortBy("title") // desc
	s.SortBy("created_at")

	assert.Equal(t, "created_at", s.Field())
	assert.Equal(t, Asc, s.Direction())
}

func TestParseDirectionNormalizesUnknown(t *testing.T) {
	assert.Equal(t, Desc, ParseDirection("DESC"))
	assert.Equal(t, Asc, ParseDirection("ascending"))
	assert.Equal(t, Asc, ParseDirection(""))
	assert.Equal(t, Asc, ParseDirection("drop table"))
}

func TestDirectionForInactiveFieldIsNil(t *testing.T) {
	s := NewSortState()
	s.SortBy("name")

	if d := s.DirectionFor("email"); d != nil {
		t.Fatalf("expected nil for inactive field, got %v", *d)
	}
	d := s.DirectionFor("name")
	if d == nil || *d != Asc {
		t.Fatalf("expected asc for active field, got %v", d)
	}
}

func TestResolveIgnoresFieldsOutsideAllowList(t *testing.T) {
	s := NewSortState()
	s.Set("view_count; DROP", Desc)

	_, _, ok := s.Resolve([]string{"id", "title", "view_count"})
	assert.False(t, ok, "forged URL state must resolve to no sort")

	s.Set("view_count", Desc)
	field, dir, ok := s.Resolve([]string{"id", "title", "view_count"})
	assert.True(t, ok)
	assert.Equal(t, "view_count", field)
	assert.Equal(t, Desc, dir)
}

func TestClearResetsToInitialState(t *testing.T) {
	s := NewSortState()
	s.SortBy("title")
	s.SortBy("title")
	s.Clear()

	assert.Equal(t, "", s.Field())
	assert.Equal(t, Asc, s.Direction())
	_, _, ok := s.Resolve(nil)
	assert.False(t, ok)
}
