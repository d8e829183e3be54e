package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdeck/models"
)

// postSearchFields are the columns the admin post list searches over.
var postSearchFields = []string{"title", "slug"}

type PostRepository struct {
	col      *mongo.Collection
	counters *CounterRepository
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts"), counters: NewCounterRepository(db)}
}

// Insert stores a new post with a freshly allocated numeric id.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) (int64, error) {
	id, err := r.counters.NextSequence(ctx, "posts")
	if err != nil {
		return 0, err
	}
	now := time.Now()
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Type == "" {
		p.Type = models.PostTypeArticle
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return 0, err
	}
	return id, nil
}

// UpsertBySourceLink upserts an imported news item keyed by its origin
// link so repeated feed fetches stay idempotent.
func (r *PostRepository) UpsertBySourceLink(ctx context.Context, p *models.Post) (int64, error) {
	existing, err := r.FindBySourceLink(ctx, p.SourceLink)
	if err == nil {
		_, err = r.col.UpdateByID(ctx, existing.ID, bson.M{"$set": bson.M{
			"title":        p.Title,
			"excerpt":      p.Excerpt,
			"body":         p.Body,
			"published_at": p.PublishedAt,
			"updated_at":   time.Now(),
		}})
		return existing.ID, err
	}
	if err != mongo.ErrNoDocuments {
		return 0, err
	}
	return r.Insert(ctx, p)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) FindBySourceLink(ctx context.Context, link string) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"source_link": link}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPublished flips the published flag; publishing stamps published_at
// the first time only.
func (r *PostRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	set := bson.M{"published": published, "updated_at": time.Now()}
	if published {
		p, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p.PublishedAt.IsZero() {
			set["published_at"] = time.Now()
		}
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetFeatured flips the featured flag.
func (r *PostRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"featured": featured, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncCommentCount adjusts the denormalized comment counter.
func (r *PostRepository) IncCommentCount(ctx context.Context, id int64, delta int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"comment_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *PostRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByCategory reports how many posts still reference a category.
func (r *PostRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"category_id": categoryID})
}

type ListPostsOptions struct {
	Page      int
	PageSize  int
	Search    string
	SortField string
	SortDesc  bool

	// Optional view filters
	Type       string
	Published  *bool
	CategoryID int64
}

// List returns one page of posts plus the total matching count.
// Default ordering is newest-created first.
func (r *PostRepository) List(ctx context.Context, opt ListPostsOptions) ([]models.Post, int64, error) {
	filter := bson.M{}
	if opt.Type != "" {
		filter["type"] = opt.Type
	}
	if opt.Published != nil {
		filter["published"] = *opt.Published
	}
	if opt.CategoryID > 0 {
		filter["category_id"] = opt.CategoryID
	}
	filter = mergeFilters(filter, searchFilter(opt.Search, postSearchFields))

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

	var items []models.Post
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
