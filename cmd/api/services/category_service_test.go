package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdeck/eventbus"
	"blogdeck/models"
	"blogdeck/repositories"
)

type fakeCategoryStore struct {
	categories map[int64]*models.Category
	deleted    []int64
}

func newFakeCategoryStore(categories ...*models.Category) *fakeCategoryStore {
	s := &fakeCategoryStore{categories: make(map[int64]*models.Category)}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

func (s *fakeCategoryStore) List(ctx context.Context, opt repositories.ListCategoriesOptions) ([]models.Category, int64, error) {
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *fakeCategoryStore) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (s *fakeCategoryStore) Insert(ctx context.Context, c *models.Category) (int64, error) {
	c.ID = int64(len(s.categories) + 1)
	s.categories[c.ID] = c
	return c.ID, nil
}

func (s *fakeCategoryStore) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := s.categories[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.categories, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakePostCounter struct {
	counts map[int64]int64
}

func (s *fakePostCounter) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return s.counts[categoryID], nil
}

func TestCategoryBulkDeleteRefusesNonEmpty(t *testing.T) {
	store := newFakeCategoryStore(
		&models.Category{ID: 1, Name: "Go"},
		&models.Category{ID: 2, Name: "News"},
		&models.Category{ID: 3, Name: "Drafts"},
	)
	counter := &fakePostCounter{counts: map[int64]int64{2: 4}}
	svc := NewCategoryAdminService(store, counter, eventbus.NoopBus{}, testAdminConfig())

	report, err := svc.Bulk(context.Background(), 1, CategoryBulkDelete, []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3}, report.Succeeded)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, int64(2), report.Failed[0].ID)
	assert.Equal(t, "category_not_empty", report.Failed[0].Reason)
	assert.Equal(t, []int64{2}, report.State.SelectedIDs)

	assert.Equal(t, []int64{1, 3}, store.deleted)
	assert.Contains(t, store.categories, int64(2))
}

func TestCategoryBulkRejectsUnknownAction(t *testing.T) {
	svc := NewCategoryAdminService(newFakeCategoryStore(), &fakePostCounter{}, eventbus.NoopBus{}, testAdminConfig())

	_, err := svc.Bulk(context.Background(), 1, CategoryBulkAction("archive"), []int64{1})
	assert.ErrorIs(t, err, ErrUnknownAction)
}
