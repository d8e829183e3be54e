package services

import (
	"context"
	"fmt"
	"net/url"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/internal/logger"
	"blogdeck/config"
	"blogdeck/eventbus"
	"blogdeck/models"
	"blogdeck/parser"
	"blogdeck/repositories"
	"blogdeck/tablestate"
)

// PostBulkAction is the closed set of bulk operations on posts.
type PostBulkAction string

const (
	PostBulkPublish   PostBulkAction = "publish"
	PostBulkUnpublish PostBulkAction = "unpublish"
	PostBulkFeature   PostBulkAction = "feature"
	PostBulkDelete    PostBulkAction = "delete"
)

func ParsePostBulkAction(raw string) (PostBulkAction, error) {
	switch PostBulkAction(raw) {
	case PostBulkPublish, PostBulkUnpublish, PostBulkFeature, PostBulkDelete:
		return PostBulkAction(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// PostEditableField is the closed set of inline-toggleable post fields.
type PostEditableField string

const (
	PostFieldPublished PostEditableField = "published"
	PostFieldFeatured  PostEditableField = "featured"
)

func ParsePostEditableField(raw string) (PostEditableField, error) {
	switch PostEditableField(raw) {
	case PostFieldPublished, PostFieldFeatured:
		return PostEditableField(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// PostStore is the repository surface the post admin view needs.
type PostStore interface {
	List(ctx context.Context, opt repositories.ListPostsOptions) ([]models.Post, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	Insert(ctx context.Context, p *models.Post) (int64, error)
	SetPublished(ctx context.Context, id int64, published bool) error
	SetFeatured(ctx context.Context, id int64, featured bool) error
	DeleteByID(ctx context.Context, id int64) error
}

// CategoryCounter keeps category post counters in sync with post writes.
type CategoryCounter interface {
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	IncPostCount(ctx context.Context, id int64, delta int64) error
}

// AuthorStore resolves the acting admin's display name for new posts.
// The token only carries the numeric id.
type AuthorStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// PostAdminService drives the admin post list: table state, bulk
// actions, inline edits and post creation.
type PostAdminService struct {
	posts      PostStore
	categories CategoryCounter
	authors    AuthorStore
	bus        eventbus.EventBus
	cfg        config.AdminConfig
}

func NewPostAdminService(posts PostStore, categories CategoryCounter, authors AuthorStore, bus eventbus.EventBus, cfg config.AdminConfig) *PostAdminService {
	return &PostAdminService{posts: posts, categories: categories, authors: authors, bus: bus, cfg: cfg}
}

// List rebuilds the post table from the query string: filter by the
// search term, apply the allow-listed sort, paginate, then hand the
// page's ids to the selection state so select-all stays in sync.
func (s *PostAdminService) List(ctx context.Context, query url.Values) (dto.TableResponse[dto.AdminPostDTO], error) {
	tbl := newTable(s.cfg, postSortFields)
	tbl.DecodeQuery(query)

	opt := repositories.ListPostsOptions{
		Page:     tbl.Page,
		PageSize: tbl.PageSize,
		Search:   tbl.Search.Term(),
		Type:     query.Get("type"),
	}
	if field, dir, ok := tbl.ResolveSort(); ok {
		opt.SortField = field
		opt.SortDesc = dir == tablestate.Desc
	}

	items, total, err := s.posts.List(ctx, opt)
	if err != nil {
		return dto.TableResponse[dto.AdminPostDTO]{}, err
	}

	ids := make([]int64, 0, len(items))
	out := make([]dto.AdminPostDTO, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
		out = append(out, dto.NewAdminPostDTO(p))
	}
	tbl.SetPageResult(ids)

	return dto.TableResponse[dto.AdminPostDTO]{
		Pagination: dto.Pagination[dto.AdminPostDTO]{
			Data:     out,
			Page:     tbl.Page,
			PageSize: tbl.PageSize,
			Total:    total,
		},
		State: dto.NewTableStateDTO(tbl.Snapshot()),
	}, nil
}

// Create stores a new authored post.
func (s *PostAdminService) Create(ctx context.Context, actorID int64, req dto.CreatePostRequestDTO) (int64, error) {
	p := &models.Post{
		Type:      models.PostTypeArticle,
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		Excerpt:   parser.Excerpt(req.Body, 280),
		AuthorID:  actorID,
		Published: req.Published,
	}
	if author, err := s.authors.FindByID(ctx, actorID); err == nil {
		p.AuthorName = author.Name
	}
	if req.CategoryID > 0 {
		cat, err := s.categories.FindByID(ctx, req.CategoryID)
		if err != nil {
			return 0, fmt.Errorf("category %d not found", req.CategoryID)
		}
		p.CategoryID = cat.ID
		p.CategoryName = cat.Name
	}

	id, err := s.posts.Insert(ctx, p)
	if err != nil {
		return 0, err
	}
	if p.CategoryID > 0 {
		if err := s.categories.IncPostCount(ctx, p.CategoryID, 1); err != nil {
			logger.Log.Warnf("failed to bump post_count for category %d: %v", p.CategoryID, err)
		}
	}
	return id, nil
}

// Delete removes one post and keeps the category counter consistent.
func (s *PostAdminService) Delete(ctx context.Context, actorID, id int64) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return err
	}
	if p.CategoryID > 0 {
		if err := s.categories.IncPostCount(ctx, p.CategoryID, -1); err != nil {
			logger.Log.Warnf("failed to drop post_count for category %d: %v", p.CategoryID, err)
		}
	}
	s.publish(ctx, eventbus.EventPostDeleted, actorID, id)
	return nil
}

// InlineEdit applies an absolute value to one toggleable field, so
// repeated or reordered confirmations cannot double-flip the row.
func (s *PostAdminService) InlineEdit(ctx context.Context, id int64, field PostEditableField, value bool) error {
	switch field {
	case PostFieldPublished:
		return s.posts.SetPublished(ctx, id, value)
	case PostFieldFeatured:
		return s.posts.SetFeatured(ctx, id, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, field)
	}
}

// Bulk runs one action across the normalized selection sequentially,
// collecting per-item failures without aborting the batch. On full
// success the selection clears; on partial failure only the failed ids
// stay selected for retry.
func (s *PostAdminService) Bulk(ctx context.Context, actorID int64, action PostBulkAction, ids []int64) (dto.BulkReportDTO, error) {
	sel := tablestate.NewSelectionState()
	sel.Replace(ids)

	report, err := tablestate.RunBulk(ctx, sel, s.cfg.MaxBulkSelection, func(ctx context.Context, id int64) error {
		switch action {
		case PostBulkPublish:
			if err := s.posts.SetPublished(ctx, id, true); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventPostPublished, actorID, id)
		case PostBulkUnpublish:
			if err := s.posts.SetPublished(ctx, id, false); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventPostUnpublished, actorID, id)
		case PostBulkFeature:
			if err := s.posts.SetFeatured(ctx, id, true); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventPostFeatured, actorID, id)
		case PostBulkDelete:
			return s.Delete(ctx, actorID, id)
		}
		return nil
	})
	if err != nil {
		return dto.BulkReportDTO{}, err
	}

	return dto.NewBulkReportDTO(report, tablestate.SelectionSnapshot(sel)), nil
}

func (s *PostAdminService) publish(ctx context.Context, eventType string, actorID, entityID int64) {
	ev, err := eventbus.NewEvent(eventType, actorID, entityID, nil)
	if err != nil {
		logger.Log.Warnf("failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicAdminActivity, ev); err != nil {
		logger.Log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
