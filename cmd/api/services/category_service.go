package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"blogdeck/cmd/api/dto"
	"blogdeck/cmd/internal/logger"
	"blogdeck/config"
	"blogdeck/eventbus"
	"blogdeck/models"
	"blogdeck/repositories"
	"blogdeck/tablestate"
)

// CategoryBulkAction is the closed set of bulk operations on categories.
type CategoryBulkAction string

const (
	CategoryBulkDelete CategoryBulkAction = "delete"
)

func ParseCategoryBulkAction(raw string) (CategoryBulkAction, error) {
	if CategoryBulkAction(raw) == CategoryBulkDelete {
		return CategoryBulkDelete, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// CategoryStore is the repository surface the category admin view needs.
type CategoryStore interface {
	List(ctx context.Context, opt repositories.ListCategoriesOptions) ([]models.Category, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Insert(ctx context.Context, c *models.Category) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// PostCounter reports live post references so deletes can refuse
// non-empty categories per item.
type PostCounter interface {
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type CategoryAdminService struct {
	categories CategoryStore
	posts      PostCounter
	bus        eventbus.EventBus
	cfg        config.AdminConfig
}

func NewCategoryAdminService(categories CategoryStore, posts PostCounter, bus eventbus.EventBus, cfg config.AdminConfig) *CategoryAdminService {
	return &CategoryAdminService{categories: categories, posts: posts, bus: bus, cfg: cfg}
}

// List rebuilds the category table from the query string.
func (s *CategoryAdminService) List(ctx context.Context, query url.Values) (dto.TableResponse[dto.AdminCategoryDTO], error) {
	tbl := newTable(s.cfg, categorySortFields)
	tbl.DecodeQuery(query)

	opt := repositories.ListCategoriesOptions{
		Page:     tbl.Page,
		PageSize: tbl.PageSize,
		Search:   tbl.Search.Term(),
	}
	if field, dir, ok := tbl.ResolveSort(); ok {
		opt.SortField = field
		opt.SortDesc = dir == tablestate.Desc
	}

	items, total, err := s.categories.List(ctx, opt)
	if err != nil {
		return dto.TableResponse[dto.AdminCategoryDTO]{}, err
	}

	ids := make([]int64, 0, len(items))
	out := make([]dto.AdminCategoryDTO, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.ID)
		out = append(out, dto.NewAdminCategoryDTO(c))
	}
	tbl.SetPageResult(ids)

	return dto.TableResponse[dto.AdminCategoryDTO]{
		Pagination: dto.Pagination[dto.AdminCategoryDTO]{
			Data:     out,
			Page:     tbl.Page,
			PageSize: tbl.PageSize,
			Total:    total,
		},
		State: dto.NewTableStateDTO(tbl.Snapshot()),
	}, nil
}

// Create stores a new category.
func (s *CategoryAdminService) Create(ctx context.Context, req dto.CreateCategoryRequestDTO) (int64, error) {
	return s.categories.Insert(ctx, &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
}

// Bulk deletes the selection. Categories that still have posts fail
// per item; the rest of the batch continues.
func (s *CategoryAdminService) Bulk(ctx context.Context, actorID int64, action CategoryBulkAction, ids []int64) (dto.BulkReportDTO, error) {
	if action != CategoryBulkDelete {
		return dto.BulkReportDTO{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	sel := tablestate.NewSelectionState()
	sel.Replace(ids)

	report, err := tablestate.RunBulk(ctx, sel, s.cfg.MaxBulkSelection, func(ctx context.Context, id int64) error {
		count, err := s.posts.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.New("category_not_empty")
		}
		if err := s.categories.DeleteByID(ctx, id); err != nil {
			return err
		}
		s.publishDeleted(ctx, actorID, id)
		return nil
	})
	if err != nil {
		return dto.BulkReportDTO{}, err
	}

	return dto.NewBulkReportDTO(report, tablestate.SelectionSnapshot(sel)), nil
}

func (s *CategoryAdminService) publishDeleted(ctx context.Context, actorID, id int64) {
	ev, err := eventbus.NewEvent(eventbus.EventCategoryDeleted, actorID, id, nil)
	if err != nil {
		logger.Log.Warnf("failed to build category event: %v", err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicAdminActivity, ev); err != nil {
		logger.Log.Warnf("failed to publish category event: %v", err)
	}
}
