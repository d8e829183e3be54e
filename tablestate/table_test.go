package tablestate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTable() *Table {
	return NewTable(Options{
		SortableFields:  []string{"id", "title", "created_at"},
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
}

func TestQueryRoundTrip(t *testing.T) {
	tbl := newTestTable()
	tbl.Selection.Replace([]int64{4, 9})
	tbl.SortBy("title")
	tbl.SortBy("title") // desc
	tbl.SetSearch("  mongo  ")
	tbl.Page = 3

	v := tbl.EncodeQuery()

	restored := newTestTable()
	restored.DecodeQuery(v)
	assert.Equal(t, []int64{4, 9}, restored.Selection.SelectedIDs())
	assert.Equal(t, "title", restored.Sort.Field())
	assert.Equal(t, Desc, restored.Sort.Direction())
	assert.Equal(t, "mongo", restored.Search.Term())
	assert.Equal(t, 3, restored.Page)
	assert.Equal(t, 20, restored.PageSize)
}

func TestDecodeQueryNormalizesHostileInput(t *testing.T) {
	tbl := newTestTable()
	tbl.DecodeQuery(url.Values{
		"selected":  {"7", "x", "-2", "7"},
		"sort":      {"title"},
		"dir":       {"sideways"},
		"q":         {"   "},
		"page":      {"-5"},
		"page_size": {"100000"},
	})

	assert.Equal(t, []int64{7}, tbl.Selection.SelectedIDs())
	assert.Equal(t, Asc, tbl.Sort.Direction())
	assert.Equal(t, "", tbl.Search.Term())
	assert.Equal(t, 1, tbl.Page)
	assert.Equal(t, 100, tbl.PageSize, "page size is capped")
}

func TestSearchChangeResetsPage(t *testing.T) {
	tbl := newTestTable()
	tbl.Page = 4
	tbl.SetSearch("kafka")
	assert.Equal(t, 1, tbl.Page)

	tbl.Page = 4
	tbl.SetSearch(" kafka ")
	assert.Equal(t, 4, tbl.Page, "unchanged term keeps the page")
}

func TestSortClickResetsPage(t *testing.T) {
	tbl := newTestTable()
	tbl.Page = 4
	tbl.SortBy("id")
	assert.Equal(t, 1, tbl.Page)
}

func TestSetPageResultSyncsSelectAll(t *testing.T) {
	tbl := newTestTable()
	tbl.Selection.Replace([]int64{3, 4, 5})

	tbl.SetPageResult([]int64{3, 4, 5})
	assert.True(t, tbl.Snapshot().SelectAll)

	tbl.SetPageResult([]int64{6, 7})
	snap := tbl.Snapshot()
	assert.False(t, snap.SelectAll)
	assert.Equal(t, []int64{3, 4, 5}, snap.SelectedIDs)
	assert.Equal(t, 3, snap.SelectedCount)
}
