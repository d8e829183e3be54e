package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilterEscapesRegexMeta(t *testing.T) {
	f := searchFilter("c++ (tips)", []string{"title"})
	or, ok := f["$or"].([]bson.M)
	if !ok || len(or) != 1 {
		t.Fatalf("unexpected filter shape: %#v", f)
	}
	re := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(tips\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestSearchFilterEmptyTermMatchesAll(t *testing.T) {
	assert.Empty(t, searchFilter("", []string{"title"}))
	assert.Empty(t, searchFilter("x", nil))
}

func TestMergeFilters(t *testing.T) {
	assert.Empty(t, mergeFilters(bson.M{}, bson.M{}))

	single := mergeFilters(bson.M{"a": 1}, bson.M{})
	assert.Equal(t, bson.M{"a": 1}, single)

	both := mergeFilters(bson.M{"a": 1}, bson.M{"b": 2})
	assert.Len(t, both["$and"], 2)
}

func TestSortSpecFallbackAndMapping(t *testing.T) {
	fallback := bson.D{{Key: "created_at", Value: -1}}
	assert.Equal(t, fallback, sortSpec("", true, fallback))

	d := sortSpec("id", true, fallback)
	assert.Equal(t, "_id", d[0].Key)
	assert.Equal(t, -1, d[0].Value)

	d = sortSpec("title", false, fallback)
	assert.Equal(t, "title", d[0].Key)
	assert.Equal(t, 1, d[0].Value)
}

func TestPageWindowClampsInput(t *testing.T) {
	skip, limit := pageWindow(0, 0)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(20), limit)

	skip, limit = pageWindow(3, 25)
	assert.Equal(t, int64(50), skip)
	assert.Equal(t, int64(25), limit)
}
