package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchFilter builds a case-insensitive substring match of term across
// the given fields, OR-combined. An empty term matches everything.
func searchFilter(term string, fields []string) bson.M {
	if term == "" || len(fields) == 0 {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	return bson.M{"$or": or}
}

// mergeFilters AND-combines non-empty filters into one.
func mergeFilters(filters ...bson.M) bson.M {
	and := make([]bson.M, 0, len(filters))
	for _, f := range filters {
		if len(f) > 0 {
			and = append(and, f)
		}
	}
	switch len(and) {
	case 0:
		return bson.M{}
	case 1:
		return and[0]
	default:
		return bson.M{"$and": and}
	}
}

// sortSpec maps (field, desc) to a Mongo sort document, falling back to
// the view's default ordering when no field is set.
func sortSpec(field string, desc bool, fallback bson.D) bson.D {
	if field == "" {
		return fallback
	}
	dir := 1
	if desc {
		dir = -1
	}
	if field == "id" {
		field = "_id"
	}
	// _id tiebreaker keeps pagination stable across equal sort keys
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}
}

// pageWindow clamps pagination input to sane values.
func pageWindow(page, pageSize int) (skip, limit int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return int64(page-1) * int64(pageSize), int64(pageSize)
}
