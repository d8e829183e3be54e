package dto

import "blogdeck/tablestate"

// Pagination is a generic pagination envelope for list results
// T is the element type of the Data slice
// Total represents the total number of items matching the filters (without pagination)
// Page is 1-based; PageSize is the requested page size
type Pagination[T any] struct {
	Data     []T   `json:"data"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// TableStateDTO mirrors the table-state snapshot into the response so
// the frontend can render checkboxes, sort carets and the search box.
type TableStateDTO struct {
	SelectedIDs   []int64 `json:"selected_ids"`
	SelectAll     bool    `json:"select_all"`
	SelectedCount int     `json:"selected_count"`
	SortField     string  `json:"sort_field,omitempty"`
	SortDirection string  `json:"sort_direction"`
	SearchTerm    string  `json:"search_term"`
}

func NewTableStateDTO(s tablestate.Snapshot) TableStateDTO {
	ids := s.SelectedIDs
	if ids == nil {
		ids = []int64{}
	}
	return TableStateDTO{
		SelectedIDs:   ids,
		SelectAll:     s.SelectAll,
		SelectedCount: s.SelectedCount,
		SortField:     s.SortField,
		SortDirection: string(s.SortDirection),
		SearchTerm:    s.SearchTerm,
	}
}

// TableResponse is the admin list envelope: one page of rows plus the
// table state needed to re-render the view.
type TableResponse[T any] struct {
	Pagination[T]
	State TableStateDTO `json:"state"`
}
