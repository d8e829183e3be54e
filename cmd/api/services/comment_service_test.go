package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdeck/cmd/api/dto"
	"blogdeck/config"
	"blogdeck/eventbus"
	"blogdeck/models"
	"blogdeck/moderation"
	"blogdeck/repositories"
)

type fakeCommentStore struct {
	comments map[int64]*models.Comment
	nextID   int64

	statusSet map[int64]string
	deleted   []int64
}

func newFakeCommentStore(comments ...*models.Comment) *fakeCommentStore {
	s := &fakeCommentStore{
		comments:  make(map[int64]*models.Comment),
		nextID:    100,
		statusSet: make(map[int64]string),
	}
	for _, c := range comments {
		s.comments[c.ID] = c
	}
	return s
}

func (s *fakeCommentStore) List(ctx context.Context, opt repositories.ListCommentsOptions) ([]models.Comment, int64, error) {
	out := make([]models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *fakeCommentStore) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (s *fakeCommentStore) Insert(ctx context.Context, c *models.Comment) (int64, error) {
	s.nextID++
	c.ID = s.nextID
	s.comments[c.ID] = c
	return c.ID, nil
}

func (s *fakeCommentStore) SetStatus(ctx context.Context, id int64, status string) error {
	c, ok := s.comments[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	c.Status = status
	s.statusSet[id] = status
	return nil
}

func (s *fakeCommentStore) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := s.comments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.comments, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakeCommentPostStore struct {
	posts       map[int64]*models.Post
	countDeltas map[int64]int64
}

func newFakeCommentPostStore(posts ...*models.Post) *fakeCommentPostStore {
	s := &fakeCommentPostStore{
		posts:       make(map[int64]*models.Post),
		countDeltas: make(map[int64]int64),
	}
	for _, p := range posts {
		s.posts[p.ID] = p
	}
	return s
}

func (s *fakeCommentPostStore) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (s *fakeCommentPostStore) IncCommentCount(ctx context.Context, id int64, delta int64) error {
	s.countDeltas[id] += delta
	return nil
}

func testScorer() *moderation.Scorer {
	return moderation.NewScorer(config.SpamConfig{
		Threshold:   3,
		MaxLinks:    2,
		BannedTerms: []string{"casino"},
	})
}

func newCommentService(comments *fakeCommentStore, posts *fakeCommentPostStore) *CommentAdminService {
	return NewCommentAdminService(comments, posts, testScorer(), eventbus.NoopBus{}, testAdminConfig())
}

func TestCommentIntakeCleanCommentBumpsCounter(t *testing.T) {
	posts := newFakeCommentPostStore(&models.Post{ID: 7, Title: "Release notes"})
	comments := newFakeCommentStore()
	svc := newCommentService(comments, posts)

	res, err := svc.Intake(context.Background(), 7, dto.CreateCommentRequestDTO{
		AuthorName:  "reader",
		AuthorEmail: "reader@example.com",
		Body:        "Great write-up, the migration section saved me a day.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CommentStatusPending, res.Status)
	assert.Equal(t, int64(1), posts.countDeltas[7])

	stored := comments.comments[res.CommentID]
	require.NotNil(t, stored)
	assert.Equal(t, "Release notes", stored.PostTitle)
}

func TestCommentIntakeSpamDoesNotBumpCounter(t *testing.T) {
	posts := newFakeCommentPostStore(&models.Post{ID: 7})
	comments := newFakeCommentStore()
	svc := newCommentService(comments, posts)

	res, err := svc.Intake(context.Background(), 7, dto.CreateCommentRequestDTO{
		AuthorName: "bot",
		Body:       `BEST CASINO BONUS <a href="http://x.example">here</a> <a href="http://y.example">and here</a> <a href="http://z.example">and here</a>`,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CommentStatusSpam, res.Status)
	assert.Zero(t, posts.countDeltas[7])
}

func TestCommentBulkDeleteDropsCounterForVisibleComments(t *testing.T) {
	posts := newFakeCommentPostStore(&models.Post{ID: 7})
	comments := newFakeCommentStore(
		&models.Comment{ID: 1, PostID: 7, Status: models.CommentStatusApproved},
		&models.Comment{ID: 2, PostID: 7, Status: models.CommentStatusSpam},
	)
	svc := newCommentService(comments, posts)

	report, err := svc.Bulk(context.Background(), 1, CommentBulkDelete, []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, report.Succeeded)
	// Only the approved comment ever counted toward the post.
	assert.Equal(t, int64(-1), posts.countDeltas[7])
}

func TestCommentBulkApprovePartialFailureRetainsFailedIDs(t *testing.T) {
	posts := newFakeCommentPostStore()
	comments := newFakeCommentStore(
		&models.Comment{ID: 10, Status: models.CommentStatusPending},
		&models.Comment{ID: 12, Status: models.CommentStatusPending},
	)
	svc := newCommentService(comments, posts)

	report, err := svc.Bulk(context.Background(), 1, CommentBulkApprove, []int64{10, 11, 12})
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 12}, report.Succeeded)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, int64(11), report.Failed[0].ID)
	assert.Equal(t, []int64{11}, report.State.SelectedIDs)
}

func TestCommentInlineEditSpamFalseReturnsToPending(t *testing.T) {
	comments := newFakeCommentStore(&models.Comment{ID: 3, Status: models.CommentStatusSpam})
	svc := newCommentService(comments, newFakeCommentPostStore())

	err := svc.InlineEdit(context.Background(), 3, CommentFieldSpam, false)
	require.NoError(t, err)
	assert.Equal(t, models.CommentStatusPending, comments.statusSet[3])
}
