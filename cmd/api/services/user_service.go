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

// UserBulkAction is the closed set of bulk operations on users.
type UserBulkAction string

const (
	UserBulkActivate   UserBulkAction = "activate"
	UserBulkDeactivate UserBulkAction = "deactivate"
	UserBulkDelete     UserBulkAction = "delete"
)

func ParseUserBulkAction(raw string) (UserBulkAction, error) {
	switch UserBulkAction(raw) {
	case UserBulkActivate, UserBulkDeactivate, UserBulkDelete:
		return UserBulkAction(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// UserEditableField is the closed set of inline-toggleable user fields.
type UserEditableField string

const (
	UserFieldActive UserEditableField = "active"
)

func ParseUserEditableField(raw string) (UserEditableField, error) {
	if UserEditableField(raw) == UserFieldActive {
		return UserFieldActive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// UserStore is the repository surface the user admin view needs.
type UserStore interface {
	List(ctx context.Context, opt repositories.ListUsersOptions) ([]models.User, int64, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
	DeleteByID(ctx context.Context, id int64) error
}

type UserAdminService struct {
	users UserStore
	bus   eventbus.EventBus
	cfg   config.AdminConfig
}

func NewUserAdminService(users UserStore, bus eventbus.EventBus, cfg config.AdminConfig) *UserAdminService {
	return &UserAdminService{users: users, bus: bus, cfg: cfg}
}

// List rebuilds the user table from the query string.
func (s *UserAdminService) List(ctx context.Context, query url.Values) (dto.TableResponse[dto.AdminUserDTO], error) {
	tbl := newTable(s.cfg, userSortFields)
	tbl.DecodeQuery(query)

	opt := repositories.ListUsersOptions{
		Page:     tbl.Page,
		PageSize: tbl.PageSize,
		Search:   tbl.Search.Term(),
		Role:     query.Get("role"),
	}
	if field, dir, ok := tbl.ResolveSort(); ok {
		opt.SortField = field
		opt.SortDesc = dir == tablestate.Desc
	}

	items, total, err := s.users.List(ctx, opt)
	if err != nil {
		return dto.TableResponse[dto.AdminUserDTO]{}, err
	}

	ids := make([]int64, 0, len(items))
	out := make([]dto.AdminUserDTO, 0, len(items))
	for _, u := range items {
		ids = append(ids, u.ID)
		out = append(out, dto.NewAdminUserDTO(u))
	}
	tbl.SetPageResult(ids)

	return dto.TableResponse[dto.AdminUserDTO]{
		Pagination: dto.Pagination[dto.AdminUserDTO]{
			Data:     out,
			Page:     tbl.Page,
			PageSize: tbl.PageSize,
			Total:    total,
		},
		State: dto.NewTableStateDTO(tbl.Snapshot()),
	}, nil
}

// authorize is the per-item check every user bulk action and inline
// edit runs: an admin cannot act on their own account, and admin
// accounts are off limits to bulk mutation entirely.
func (s *UserAdminService) authorize(ctx context.Context, actorID, targetID int64) error {
	if targetID == actorID {
		return errors.New("unauthorized")
	}
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleAdmin {
		return errors.New("unauthorized")
	}
	return nil
}

// InlineEdit toggles the active flag with the same authorization as
// bulk actions.
func (s *UserAdminService) InlineEdit(ctx context.Context, actorID, id int64, field UserEditableField, value bool) error {
	if field != UserFieldActive {
		return fmt.Errorf("%w: %q", ErrUnknownAction, field)
	}
	if err := s.authorize(ctx, actorID, id); err != nil {
		return err
	}
	return s.users.SetActive(ctx, id, value)
}

// Bulk runs one account action across the selection. Authorization
// denials are recorded per item and do not abort the batch.
func (s *UserAdminService) Bulk(ctx context.Context, actorID int64, action UserBulkAction, ids []int64) (dto.BulkReportDTO, error) {
	sel := tablestate.NewSelectionState()
	sel.Replace(ids)

	report, err := tablestate.RunBulk(ctx, sel, s.cfg.MaxBulkSelection, func(ctx context.Context, id int64) error {
		if err := s.authorize(ctx, actorID, id); err != nil {
			return err
		}
		switch action {
		case UserBulkActivate:
			if err := s.users.SetActive(ctx, id, true); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventUserActivated, actorID, id)
		case UserBulkDeactivate:
			if err := s.users.SetActive(ctx, id, false); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventUserDeactivated, actorID, id)
		case UserBulkDelete:
			if err := s.users.DeleteByID(ctx, id); err != nil {
				return err
			}
			s.publish(ctx, eventbus.EventUserDeleted, actorID, id)
		}
		return nil
	})
	if err != nil {
		return dto.BulkReportDTO{}, err
	}

	return dto.NewBulkReportDTO(report, tablestate.SelectionSnapshot(sel)), nil
}

func (s *UserAdminService) publish(ctx context.Context, eventType string, actorID, entityID int64) {
	ev, err := eventbus.NewEvent(eventType, actorID, entityID, nil)
	if err != nil {
		logger.Log.Warnf("failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicAdminActivity, ev); err != nil {
		logger.Log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
