package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdeck/models"
)

var categorySearchFields = []string{"name", "slug"}

type CategoryRepository struct {
	col      *mongo.Collection
	counters *CounterRepository
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories"), counters: NewCounterRepository(db)}
}

func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) (int64, error) {
	id, err := r.counters.NextSequence(ctx, "categories")
	if err != nil {
		return 0, err
	}
	now := time.Now()
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// IncPostCount adjusts the denormalized post counter.
func (r *CategoryRepository) IncPostCount(ctx context.Context, id int64, delta int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"post_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

type ListCategoriesOptions struct {
	Page      int
	PageSize  int
	Search    string
	SortField string
	SortDesc  bool
}

// List returns one page of categories plus the total matching count.
// Default ordering is by name.
func (r *CategoryRepository) List(ctx context.Context, opt ListCategoriesOptions) ([]models.Category, int64, error) {
	filter := searchFilter(opt.Search, categorySearchFields)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip, limit := pageWindow(opt.Page, opt.PageSize)
	sort := sortSpec(opt.SortField, opt.SortDesc, bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []models.Category
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
