package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdeck/models"
)

var userSearchFields = []string{"name", "email"}

type UserRepository struct {
	col      *mongo.Collection
	counters *CounterRepository
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users"), counters: NewCounterRepository(db)}
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) (int64, error) {
	id, err := r.counters.NextSequence(ctx, "users")
	if err != nil {
		return 0, err
	}
	now := time.Now()
	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SetActive flips the active flag.
func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"active": active, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// TouchLastLogin stamps last_login_at.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"last_login_at": time.Now(), "updated_at": time.Now()},
	})
	return err
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

type ListUsersOptions struct {
	Page      int
	PageSize  int
	Search    string
	SortField string
	SortDesc  bool

	Role   string
	Active *bool
}

// List returns one page of users plus the total matching count.
// Default ordering is newest sign-up first.
func (r *UserRepository) List(ctx context.Context, opt ListUsersOptions) ([]models.User, int64, error) {
	filter := bson.M{}
	if opt.Role != "" {
		filter["role"] = opt.Role
	}
	if opt.Active != nil {
		filter["active"] = *opt.Active
	}
	filter = mergeFilters(filter, searchFilter(opt.Search, userSearchFields))

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

	var items []models.User
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
