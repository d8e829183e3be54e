package tablestate

// Table composes the three state managers of one admin list view plus its
// pagination cursor. A concrete view owns one Table per session; there
// are no package-level instances.
type Table struct {
	Selection *SelectionState
	Sort      *SortState
	Search    *SearchState

	Page     int
	PageSize int

	sortable        []string
	defaultPageSize int
	maxPageSize     int
}

// Options constrains a Table to its view: which columns may be sorted and
// how large a page may get.
type Options struct {
	SortableFields  []string
	DefaultPageSize int
	MaxPageSize     int
}

func NewTable(opt Options) *Table {
	if opt.DefaultPageSize <= 0 {
		opt.DefaultPageSize = 20
	}
	return &Table{
		Selection:       NewSelectionState(),
		Sort:            NewSortState(),
		Search:          NewSearchState(),
		Page:            1,
		PageSize:        opt.DefaultPageSize,
		sortable:        opt.SortableFields,
		defaultPageSize: opt.DefaultPageSize,
		maxPageSize:     opt.MaxPageSize,
	}
}

// SetSearch updates the filter term and resets to page 1 on change.
func (t *Table) SetSearch(raw string) {
	if t.Search.SetTerm(raw) {
		t.Page = 1
	}
}

// SortBy applies a column-header click and resets to page 1.
func (t *Table) SortBy(field string) {
	t.Sort.SortBy(field)
	t.Page = 1
}

// ResolveSort returns the effective sort against the view's allow-list.
func (t *Table) ResolveSort() (string, Direction, bool) {
	return t.Sort.Resolve(t.sortable)
}

// SetPageResult records the ids of the freshly rebuilt page. This is the
// rebuild hook of the composition layer: run the query (filter, sort,
// paginate), then hand the page's ids here so select-all stays in sync.
func (t *Table) SetPageResult(ids []int64) {
	t.Selection.SetCurrentPage(ids)
}

// Snapshot is the read-only view-model handed to the presentation layer.
type Snapshot struct {
	SelectedIDs   []int64   `json:"selected_ids"`
	SelectAll     bool      `json:"select_all"`
	SelectedCount int       `json:"selected_count"`
	SortField     string    `json:"sort_field,omitempty"`
	SortDirection Direction `json:"sort_direction"`
	SearchTerm    string    `json:"search_term"`
}

// SelectionSnapshot builds a snapshot carrying only selection state,
// for responses that have no sort/search context (bulk reports).
func SelectionSnapshot(sel *SelectionState) Snapshot {
	return Snapshot{
		SelectedIDs:   sel.SelectedIDs(),
		SelectAll:     sel.SelectAll(),
		SelectedCount: sel.SelectedCount(),
		SortDirection: Asc,
	}
}

func (t *Table) Snapshot() Snapshot {
	return Snapshot{
		SelectedIDs:   t.Selection.SelectedIDs(),
		SelectAll:     t.Selection.SelectAll(),
		SelectedCount: t.Selection.SelectedCount(),
		SortField:     t.Sort.Field(),
		SortDirection: t.Sort.Direction(),
		SearchTerm:    t.Search.Term(),
	}
}
