package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdeck/config"
	"blogdeck/eventbus"
	"blogdeck/models"
	"blogdeck/repositories"
	"blogdeck/tablestate"
)

type fakeUserStore struct {
	users map[int64]*models.User

	activeSet map[int64]bool
	deleted   []int64
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{
		users:     make(map[int64]*models.User),
		activeSet: make(map[int64]bool),
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) List(ctx context.Context, opt repositories.ListUsersOptions) ([]models.User, int64, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (s *fakeUserStore) SetActive(ctx context.Context, id int64, active bool) error {
	if _, ok := s.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	s.activeSet[id] = active
	return nil
}

func (s *fakeUserStore) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.users, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func testAdminConfig() config.AdminConfig {
	return config.AdminConfig{MaxBulkSelection: 100, DefaultPageSize: 20, MaxPageSize: 100}
}

func TestUserBulkDeactivateSkipsSelfAndAdmins(t *testing.T) {
	store := newFakeUserStore(
		&models.User{ID: 1, Role: models.RoleAdmin},
		&models.User{ID: 2, Role: models.RoleAdmin},
		&models.User{ID: 3, Role: models.RoleUser},
		&models.User{ID: 4, Role: models.RoleUser},
	)
	svc := NewUserAdminService(store, eventbus.NoopBus{}, testAdminConfig())

	report, err := svc.Bulk(context.Background(), 1, UserBulkDeactivate, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 4}, report.Succeeded)
	require.Len(t, report.Failed, 2)
	assert.Equal(t, int64(1), report.Failed[0].ID)
	assert.Equal(t, "unauthorized", report.Failed[0].Reason)
	assert.Equal(t, int64(2), report.Failed[1].ID)

	// Failed ids stay selected for retry.
	assert.Equal(t, []int64{1, 2}, report.State.SelectedIDs)

	assert.Equal(t, map[int64]bool{3: false, 4: false}, store.activeSet)
}

func TestUserBulkDeleteAllSucceedClearsSelection(t *testing.T) {
	store := newFakeUserStore(
		&models.User{ID: 1, Role: models.RoleAdmin},
		&models.User{ID: 5, Role: models.RoleUser},
		&models.User{ID: 6, Role: models.RoleUser},
	)
	svc := NewUserAdminService(store, eventbus.NoopBus{}, testAdminConfig())

	report, err := svc.Bulk(context.Background(), 1, UserBulkDelete, []int64{5, 6})
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 6}, report.Succeeded)
	assert.Empty(t, report.Failed)
	assert.Empty(t, report.State.SelectedIDs)
	assert.Equal(t, []int64{5, 6}, store.deleted)
}

func TestUserBulkOverLimitDoesNoWork(t *testing.T) {
	store := newFakeUserStore(
		&models.User{ID: 1, Role: models.RoleAdmin},
		&models.User{ID: 2, Role: models.RoleUser},
		&models.User{ID: 3, Role: models.RoleUser},
	)
	cfg := testAdminConfig()
	cfg.MaxBulkSelection = 1
	svc := NewUserAdminService(store, eventbus.NoopBus{}, cfg)

	_, err := svc.Bulk(context.Background(), 1, UserBulkDelete, []int64{2, 3})
	assert.ErrorIs(t, err, tablestate.ErrSelectionLimit)
	assert.Empty(t, store.deleted)
}

func TestUserInlineEditRejectsSelf(t *testing.T) {
	store := newFakeUserStore(&models.User{ID: 1, Role: models.RoleAdmin})
	svc := NewUserAdminService(store, eventbus.NoopBus{}, testAdminConfig())

	err := svc.InlineEdit(context.Background(), 1, 1, UserFieldActive, false)
	require.Error(t, err)
	assert.Empty(t, store.activeSet)
}

func TestParseUserBulkAction(t *testing.T) {
	got, err := ParseUserBulkAction("deactivate")
	require.NoError(t, err)
	assert.Equal(t, UserBulkDeactivate, got)

	_, err = ParseUserBulkAction("promote")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
