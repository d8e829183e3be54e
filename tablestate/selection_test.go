package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIDsDropsBadValues(t *testing.T) {
	got := NormalizeIDs([]int64{3, 0, -1, 3, 7, 7, 2})
	assert.Equal(t, []int64{3, 7, 2}, got)
}

func TestParseIDsTolerantOfGarbage(t *testing.T) {
	got := ParseIDs([]string{"10", "abc", "", "-4", "10", "11"})
	assert.Equal(t, []int64{10, 11}, got)
}

func TestParseIDsAcceptsCommaJoinedValues(t *testing.T) {
	got := ParseIDs([]string{"3,1, 2", "abc,4", "3"})
	assert.Equal(t, []int64{3, 1, 2, 4}, got)
}

func TestToggleDoubleToggleRestoresMembership(t *testing.T) {
	s := NewSelectionState()
	s.Toggle(5)
	s.Toggle(8)
	s.Toggle(5)
	s.Toggle(5)

	assert.Equal(t, []int64{8, 5}, s.SelectedIDs())

	s.Toggle(8)
	s.Toggle(8)
	assert.Equal(t, []int64{8, 5}, s.SelectedIDs())
}

func TestToggleIgnoresNonPositiveIDs(t *testing.T) {
	s := NewSelectionState()
	s.Toggle(0)
	s.Toggle(-3)
	if s.SelectedCount() != 0 {
		t.Fatalf("expected empty selection, got %v", s.SelectedIDs())
	}
}

func TestSelectAllIsDerivedFromCurrentPage(t *testing.T) {
	s := NewSelectionState()
	s.SetCurrentPage([]int64{3, 4, 5})

	s.Toggle(4)
	s.Toggle(5)
	assert.False(t, s.SelectAll(), "3 is not selected yet")

	s.SelectAllOnPage()
	assert.True(t, s.SelectAll())
	assert.ElementsMatch(t, []int64{3, 4, 5}, s.SelectedIDs())

	// Navigating to a page with unselected rows recomputes the flag but
	// keeps the cross-page selection intact.
	s.SetCurrentPage([]int64{6, 7})
	assert.False(t, s.SelectAll())
	assert.ElementsMatch(t, []int64{3, 4, 5}, s.SelectedIDs())
}

func TestDeselectAllOnPageKeepsOtherPages(t *testing.T) {
	s := NewSelectionState()
	s.SetCurrentPage([]int64{1, 2})
	s.SelectAllOnPage()
	s.SetCurrentPage([]int64{3, 4})
	s.SelectAllOnPage()
	assert.True(t, s.SelectAll())

	s.DeselectAllOnPage()
	assert.False(t, s.SelectAll())
	assert.ElementsMatch(t, []int64{1, 2}, s.SelectedIDs())
}

func TestSelectAllFalseOnEmptyPage(t *testing.T) {
	s := NewSelectionState()
	s.SetCurrentPage(nil)
	s.SelectAllOnPage()
	if s.SelectAll() {
		t.Fatal("select-all must be false for an empty page")
	}
}

func TestSetSelectAllActsAsIntent(t *testing.T) {
	s := NewSelectionState()
	s.SetCurrentPage([]int64{9, 10})

	s.SetSelectAll(true)
	assert.True(t, s.SelectAll())

	s.SetSelectAll(false)
	assert.False(t, s.SelectAll())
	assert.Empty(t, s.SelectedIDs())
}

func TestClearEmptiesSelection(t *testing.T) {
	s := NewSelectionState()
	s.SetCurrentPage([]int64{1, 2, 3})
	s.SelectAllOnPage()
	s.Clear()

	assert.Equal(t, 0, s.SelectedCount())
	assert.False(t, s.SelectAll())
}

func TestReplaceNormalizesInput(t *testing.T) {
	s := NewSelectionState()
	s.Replace([]int64{4, 4, -1, 0, 6})
	assert.Equal(t, []int64{4, 6}, s.SelectedIDs())
}
