package tablestate

import (
	"net/url"
	"strconv"
)

// Query-string keys mirrored for bookmarkable list views.
const (
	keySelected = "selected"
	keySort     = "sort"
	keyDir      = "dir"
	keySearch   = "q"
	keyPage     = "page"
	keyPageSize = "page_size"
)

// EncodeQuery serializes the bookmarkable parts of a table into URL
// values. Zero/empty fields are omitted so URLs stay short.
func (t *Table) EncodeQuery() url.Values {
	v := url.Values{}
	for _, id := range t.Selection.SelectedIDs() {
		v.Add(keySelected, strconv.FormatInt(id, 10))
	}
	if f := t.Sort.Field(); f != "" {
		v.Set(keySort, f)
		v.Set(keyDir, string(t.Sort.Direction()))
	}
	if q := t.Search.Term(); q != "" {
		v.Set(keySearch, q)
	}
	if t.Page > 1 {
		v.Set(keyPage, strconv.Itoa(t.Page))
	}
	if t.PageSize != t.defaultPageSize {
		v.Set(keyPageSize, strconv.Itoa(t.PageSize))
	}
	return v
}

// DecodeQuery restores table state from raw URL values. Every value goes
// through the same normalization as live UI input: bad ids are dropped,
// unknown sort directions become asc, the term is trimmed, page numbers
// below 1 become 1. Nothing here errors.
func (t *Table) DecodeQuery(v url.Values) {
	t.Selection.Replace(ParseIDs(v[keySelected]))
	t.Sort.Set(v.Get(keySort), ParseDirection(v.Get(keyDir)))
	t.Search.SetTerm(v.Get(keySearch))

	t.Page = 1
	if n, err := strconv.Atoi(v.Get(keyPage)); err == nil && n > 1 {
		t.Page = n
	}
	t.PageSize = t.defaultPageSize
	if n, err := strconv.Atoi(v.Get(keyPageSize)); err == nil && n > 0 {
		t.PageSize = n
	}
	if t.maxPageSize > 0 && t.PageSize > t.maxPageSize {
		t.PageSize = t.maxPageSize
	}
}
