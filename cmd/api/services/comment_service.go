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
	"blogdeck/moderation"
	"blogdeck/repositories"
	"blogdeck/tablestate"
)

// CommentBulkAction is the closed set of bulk operations on comments.
type CommentBulkAction string

const (
	CommentBulkApprove  CommentBulkAction = "approve"
	CommentBulkMarkSpam CommentBulkAction = "mark-spam"
	CommentBulkDelete   CommentBulkAction = "delete"
)

func ParseCommentBulkAction(raw string) (CommentBulkAction, error) {
	switch CommentBulkAction(raw) {
	case CommentBulkApprove, CommentBulkMarkSpam, CommentBulkDelete:
		return CommentBulkAction(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// CommentEditableField is the closed set of inline-toggleable comment fields.
type CommentEditableField string

const (
	CommentFieldApproved CommentEditableField = "approved"
	CommentFieldSpam     CommentEditableField = "spam"
)

func ParseCommentEditableField(raw string) (CommentEditableField, error) {
	switch CommentEditableField(raw) {
	case CommentFieldApproved, CommentFieldSpam:
		return CommentEditableField(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// CommentStore is the repository surface the comment admin view needs.
type CommentStore interface {
	List(ctx context.Context, opt repositories.ListCommentsOptions) ([]models.Comment, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	Insert(ctx context.Context, c *models.Comment) (int64, error)
	SetStatus(ctx context.Context, id int64, status string) error
	DeleteByID(ctx context.Context, id int64) error
}

// CommentPostStore is the post surface comment intake needs.
type CommentPostStore interface {
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	IncCommentCount(ctx context.Context, id int64, delta int64) error
}

type CommentAdminService struct {
	comments CommentStore
	posts    CommentPostStore
	scorer   *moderation.Scorer
	bus      eventbus.EventBus
	cfg      config.AdminConfig
}

func NewCommentAdminService(comments CommentStore, posts CommentPostStore, scorer *moderation.Scorer, bus eventbus.EventBus, cfg config.AdminConfig) *CommentAdminService {
	return &CommentAdminService{comments: comments, posts: posts, scorer: scorer, bus: bus, cfg: cfg}
}

// List rebuilds the comment table from the query string. The optional
// status query narrows to one moderation queue.
func (s *CommentAdminService) List(ctx context.Context, query url.Values) (dto.TableResponse[dto.AdminCommentDTO], error) {
	tbl := newTable(s.cfg, commentSortFields)
	tbl.DecodeQuery(query)

	opt := repositories.ListCommentsOptions{
		Page:     tbl.Page,
		PageSize: tbl.PageSize,
		Search:   tbl.Search.Term(),
		Status:   query.Get("status"),
	}
	if field, dir, ok := tbl.ResolveSort(); ok {
		opt.SortField = field
		opt.SortDesc = dir == tablestate.Desc
	}

	items, total, err := s.comments.List(ctx, opt)
	if err != nil {
		return dto.TableResponse[dto.AdminCommentDTO]{}, err
	}

	ids := make([]int64, 0, len(items))
	out := make([]dto.AdminCommentDTO, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.ID)
		out = append(out, dto.NewAdminCommentDTO(c))
	}
	tbl.SetPageResult(ids)

	return dto.TableResponse[dto.AdminCommentDTO]{
		Pagination: dto.Pagination[dto.AdminCommentDTO]{
			Data:     out,
			Page:     tbl.Page,
			PageSize: tbl.PageSize,
			Total:    total,
		},
		State: dto.NewTableStateDTO(tbl.Snapshot()),
	}, nil
}

// Intake stores a reader comment, classified by the spam heuristics.
// Spam-filed comments do not bump the post's visible comment counter.
func (s *CommentAdminService) Intake(ctx context.Context, postID int64, req dto.CreateCommentRequestDTO) (*dto.CreateCommentResponseDTO, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	status, score := s.scorer.Classify(req.Body)
	c := &models.Comment{
		PostID:      post.ID,
		PostTitle:   post.Title,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Body:        req.Body,
		Status:      status,
		SpamScore:   score,
	}
	id, err := s.comments.Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	if status != models.CommentStatusSpam {
		if err := s.posts.IncCommentCount(ctx, post.ID, 1); err != nil {
			logger.Log.Warnf("failed to bump comment_count for post %d: %v", post.ID, err)
		}
	}
	return &dto.CreateCommentResponseDTO{CommentID: id, Status: status}, nil
}

// InlineEdit applies an absolute value to one moderation toggle.
// approved=false or spam=false both return the comment to pending.
func (s *CommentAdminService) InlineEdit(ctx context.Context, id int64, field CommentEditableField, value bool) error {
	switch field {
	case CommentFieldApproved:
		if value {
			return s.comments.SetStatus(ctx, id, models.CommentStatusApproved)
		}
		return s.comments.SetStatus(ctx, id, models.CommentStatusPending)
	case CommentFieldSpam:
		if value {
			return s.comments.SetStatus(ctx, id, models.CommentStatusSpam)
		}
		return s.comments.SetStatus(ctx, id, models.CommentStatusPending)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, field)
	}
}

// Bulk runs one moderation action across the selection.
func (s *CommentAdminService) Bulk(ctx context.Context, actorID int64, action CommentBulkAction, ids []int64) (dto.BulkReportDTO, error) {
	sel := tablestate.NewSelectionState()
	sel.Replace(ids)

	report, err := tablestate.RunBulk(ctx, sel, s.cfg.MaxBulkSelection, func(ctx context.Context, id int64) error {
		switch action {
		case CommentBulkApprove:
			if err := s.comments.SetStatus(ctx, id, models.CommentStatusApproved); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventCommentApproved, actorID, id)
		case CommentBulkMarkSpam:
			if err := s.comments.SetStatus(ctx, id, models.CommentStatusSpam); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventCommentSpammed, actorID, id)
		case CommentBulkDelete:
			c, err := s.comments.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if err := s.comments.DeleteByID(ctx, id); err != nil {
				return err
			}
			if c.Status == models.CommentStatusApproved || c.Status == models.CommentStatusPending {
				if err := s.posts.IncCommentCount(ctx, c.PostID, -1); err != nil {
					logger.Log.Warnf("failed to drop comment_count for post %d: %v", c.PostID, err)
				}
			}
			s.publish(ctx, eventbus.EventCommentDeleted, actorID, id)
		}
		return nil
	})
	if err != nil {
		return dto.BulkReportDTO{}, err
	}

	return dto.NewBulkReportDTO(report, tablestate.SelectionSnapshot(sel)), nil
}

func (s *CommentAdminService) publish(ctx context.Context, eventType string, actorID, entityID int64) {
	ev, err := eventbus.NewEvent(eventType, actorID, entityID, nil)
	if err != nil {
		logger.Log.Warnf("failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicAdminActivity, ev); err != nil {
		logger.Log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
