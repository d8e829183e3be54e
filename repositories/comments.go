package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdeck/models"
)

var commentSearchFields = []string{"body", "author_name", "author_email"}

type CommentRepository struct {
	col      *mongo.Collection
	counters *CounterRepository
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments"), counters: NewCounterRepository(db)}
}

func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) (int64, error) {
	id, err := r.counters.NextSequence(ctx, "comments")
	if err != nil {
		return 0, err
	}
	now := time.Now()
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = models.CommentStatusPending
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetStatus moves a comment between pending/approved/spam.
func (r *CommentRepository) SetStatus(ctx context.Context, id int64, status string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

type ListCommentsOptions struct {
	Page      int
	PageSize  int
	Search    string
	SortField string
	SortDesc  bool

	Status string
	PostID int64
}

// List returns one page of comments plus the total matching count.
// Default ordering is newest first (moderation queue order).
func (r *CommentRepository) List(ctx context.Context, opt ListCommentsOptions) ([]models.Comment, int64, error) {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.PostID > 0 {
		filter["post_id"] = opt.PostID
	}
	filter = mergeFilters(filter, searchFilter(opt.Search, commentSearchFields))

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip, limit := pageWindow(opt.Page, opt.PageSize)
	sort := sortSpec(opt.SortField, opt.SortDesc, bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []models.Comment
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
