package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"blogdeck/config"
	"blogdeck/models"
	"blogdeck/repositories"
	"blogdeck/tablestate"
)

// Export formats. Anything else is rejected with ErrUnknownAction so
// handlers map it to a 400 like unknown bulk actions.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// exportMaxRows bounds a single export so a filter matching the whole
// collection cannot hold a connection open indefinitely.
const exportMaxRows = 5000

// ExportService streams filtered admin rows as CSV or JSON. The same
// query string that drives the list view drives the export, so sort,
// search and selection carry over. When the query carries selected ids
// only those rows are written.
type ExportService struct {
	posts    PostStore
	comments CommentStore
	cfg      config.AdminConfig
}

func NewExportService(posts PostStore, comments CommentStore, cfg config.AdminConfig) *ExportService {
	return &ExportService{posts: posts, comments: comments, cfg: cfg}
}

func parseExportFormat(raw string) (string, error) {
	switch raw {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatJSON:
		return ExportFormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// ExportFilename builds the attachment name for the Content-Disposition
// header, e.g. "posts-20260830.csv".
func ExportFilename(view, format string) string {
	return fmt.Sprintf("%s-%s.%s", view, time.Now().Format("20060102"), format)
}

// ExportPosts writes the filtered post rows to w.
func (s *ExportService) ExportPosts(ctx context.Context, w io.Writer, query url.Values, format string) error {
	format, err := parseExportFormat(format)
	if err != nil {
		return err
	}

	tbl := newTable(s.cfg, postSortFields)
	tbl.DecodeQuery(query)

	opt := repositories.ListPostsOptions{
		Page:     1,
		PageSize: exportMaxRows,
		Search:   tbl.Search.Term(),
		Type:     query.Get("type"),
	}
	if field, dir, ok := tbl.ResolveSort(); ok {
		opt.SortField = field
		opt.SortDesc = dir == tablestate.Desc
	}

	items, _, err := s.posts.List(ctx, opt)
	if err != nil {
		return err
	}
	items = filterSelectedPosts(items, tbl.Selection)

	if format == ExportFormatJSON {
		return json.NewEncoder(w).Encode(items)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"id", "type", "title", "slug", "category", "author",
		"published", "featured", "view_count", "comment_count",
		"published_at", "created_at",
	}); err != nil {
		return err
	}
	for _, p := range items {
		publishedAt := ""
		if !p.PublishedAt.IsZero() {
			publishedAt = p.PublishedAt.Format(time.RFC3339)
		}
		rec := []string{
			strconv.FormatInt(p.ID, 10),
			p.Type,
			p.Title,
			p.Slug,
			p.CategoryName,
			p.AuthorName,
			strconv.FormatBool(p.Published),
			strconv.FormatBool(p.Featured),
			strconv.FormatInt(p.ViewCount, 10),
			strconv.FormatInt(p.CommentCount, 10),
			publishedAt,
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportComments writes the filtered comment rows to w.
func (s *ExportService) ExportComments(ctx context.Context, w io.Writer, query url.Values, format string) error {
	format, err := parseExportFormat(format)
	if err != nil {
		return err
	}

	tbl := newTable(s.cfg, commentSortFields)
	tbl.DecodeQuery(query)

	opt := repositories.ListCommentsOptions{
		Page:     1,
		PageSize: exportMaxRows,
		Search:   tbl.Search.Term(),
		Status:   query.Get("status"),
	}
	if field, dir, ok := tbl.ResolveSort(); ok {
		opt.SortField = field
		opt.SortDesc = dir == tablestate.Desc
	}

	items, _, err := s.comments.List(ctx, opt)
	if err != nil {
		return err
	}
	items = filterSelectedComments(items, tbl.Selection)

	if format == ExportFormatJSON {
		return json.NewEncoder(w).Encode(items)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"id", "post_id", "post_title", "author_name", "author_email",
		"status", "spam_score", "created_at", "body",
	}); err != nil {
		return err
	}
	for _, c := range items {
		rec := []string{
			strconv.FormatInt(c.ID, 10),
			strconv.FormatInt(c.PostID, 10),
			c.PostTitle,
			c.AuthorName,
			c.AuthorEmail,
			c.Status,
			strconv.Itoa(c.SpamScore),
			c.CreatedAt.Format(time.RFC3339),
			c.Body,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func filterSelectedPosts(items []models.Post, sel *tablestate.SelectionState) []models.Post {
	if sel.SelectedCount() == 0 {
		return items
	}
	out := items[:0]
	for _, p := range items {
		if sel.IsSelected(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

func filterSelectedComments(items []models.Comment, sel *tablestate.SelectionState) []models.Comment {
	if sel.SelectedCount() == 0 {
		return items
	}
	out := items[:0]
	for _, c := range items {
		if sel.IsSelected(c.ID) {
			out = append(out, c)
		}
	}
	return out
}
