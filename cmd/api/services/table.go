package services

import (
	"errors"

	"blogdeck/config"
	"blogdeck/tablestate"
)

// ErrUnknownAction is returned when a bulk action or inline-edit field
// name is outside the closed set a view supports. Unlike malformed ids,
// which are silently normalized, an unknown action is a caller bug and
// surfaces as a 400.
var ErrUnknownAction = errors.New("unknown_action")

// Sortable column allow-lists per admin view. Sort fields restored from
// URLs are checked against these; anything else resolves to the default
// ordering.
var (
	postSortFields     = []string{"id", "title", "published_at", "created_at", "view_count", "comment_count"}
	categorySortFields = []string{"id", "name", "post_count", "created_at"}
	commentSortFields  = []string{"id", "created_at", "author_name", "spam_score"}
	userSortFields     = []string{"id", "name", "email", "created_at", "last_login_at"}
)

// newTable builds a per-request table for one view. Every list request
// carries its full state in the query string, so state objects are
// rebuilt per request rather than held across them.
func newTable(cfg config.AdminConfig, sortable []string) *tablestate.Table {
	return tablestate.NewTable(tablestate.Options{
		SortableFields:  sortable,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})
}
