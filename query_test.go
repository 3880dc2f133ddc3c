package restify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFields = map[string]string{
	"id":     "id",
	"name":   "name",
	"color":  "color",
	"stock":  "stock",
	"active": "active",
}

func TestInferFilterValue_Order(t *testing.T) {
	fv := inferFilterValue("42")
	assert.Equal(t, FilterNumber, fv.Kind)
	assert.Equal(t, 42.0, fv.Number)

	fv = inferFilterValue("-3.5")
	assert.Equal(t, FilterNumber, fv.Kind)
	assert.Equal(t, -3.5, fv.Number)

	fv = inferFilterValue("TrUe")
	assert.Equal(t, FilterBool, fv.Kind)
	assert.True(t, fv.Bool)

	fv = inferFilterValue("FALSE")
	assert.Equal(t, FilterBool, fv.Kind)
	assert.False(t, fv.Bool)

	id := uuid.New()
	fv = inferFilterValue(id.String())
	assert.Equal(t, FilterID, fv.Kind)
	assert.Equal(t, id, fv.ID)

	fv = inferFilterValue("widget")
	assert.Equal(t, FilterPattern, fv.Kind)
	assert.Equal(t, "widget", fv.Pattern)
}

func TestBuildListQuery_FilterInference(t *testing.T) {
	id := uuid.New()

	ctx := newMockContext()
	ctx.queryMap = map[string]string{
		"stock":  "3",
		"active": "TRUE",
		"id":     id.String(),
		"name":   "widg",
	}

	q := BuildListQuery(ctx, testFields)
	require.Len(t, q.Filter, 4)

	assert.Equal(t, FilterNumber, q.Filter["stock"].Kind)
	assert.Equal(t, 3.0, q.Filter["stock"].Number)
	assert.Equal(t, FilterBool, q.Filter["active"].Kind)
	assert.True(t, q.Filter["active"].Bool)
	assert.Equal(t, FilterID, q.Filter["id"].Kind)
	assert.Equal(t, id, q.Filter["id"].ID)
	assert.Equal(t, FilterPattern, q.Filter["name"].Kind)
}

func TestBuildListQuery_IgnoresUnknownAndReserved(t *testing.T) {
	ctx := newMockContext()
	ctx.queryMap = map[string]string{
		"_start": "0",
		"_end":   "5",
		"_sort":  "name",
		"_order": "ASC",
		"bogus":  "1",
		"name":   "widget",
	}

	q := BuildListQuery(ctx, testFields)

	require.Len(t, q.Filter, 1)
	_, ok := q.Filter["name"]
	assert.True(t, ok)
}

func TestBuildListQuery_SortRequiresKnownFieldAndOrder(t *testing.T) {
	ctx := newMockContext()
	ctx.queryMap = map[string]string{"_sort": "name", "_order": "desc"}
	q := BuildListQuery(ctx, testFields)
	assert.Equal(t, "name", q.Sort)
	assert.Equal(t, OrderDesc, q.Order)

	ctx = newMockContext()
	ctx.queryMap = map[string]string{"_sort": "name", "_order": "sideways"}
	q = BuildListQuery(ctx, testFields)
	assert.Empty(t, q.Sort)

	ctx = newMockContext()
	ctx.queryMap = map[string]string{"_sort": "nope", "_order": "ASC"}
	q = BuildListQuery(ctx, testFields)
	assert.Empty(t, q.Sort)

	ctx = newMockContext()
	ctx.queryMap = map[string]string{"_sort": "name"}
	q = BuildListQuery(ctx, testFields)
	assert.Empty(t, q.Sort)
}

func TestBuildListQuery_PagingRequiresBothBounds(t *testing.T) {
	ctx := newMockContext()
	ctx.queryMap = map[string]string{"_start": "1", "_end": "3"}
	q := BuildListQuery(ctx, testFields)
	require.True(t, q.Paged)
	assert.Equal(t, 1, q.Start)
	assert.Equal(t, 3, q.End)

	ctx = newMockContext()
	ctx.queryMap = map[string]string{"_start": "1"}
	q = BuildListQuery(ctx, testFields)
	assert.False(t, q.Paged)

	ctx = newMockContext()
	ctx.queryMap = map[string]string{"_end": "3"}
	q = BuildListQuery(ctx, testFields)
	assert.False(t, q.Paged)

	ctx = newMockContext()
	ctx.queryMap = map[string]string{"_start": "one", "_end": "3"}
	q = BuildListQuery(ctx, testFields)
	assert.False(t, q.Paged)
}

func TestSliceRange(t *testing.T) {
	records := []string{"a", "b", "c", "d", "e"}

	got := sliceRange(records, &ListQuery{Start: 1, End: 3, Paged: true})
	assert.Equal(t, []string{"b", "c", "d"}, got)

	got = sliceRange(records, &ListQuery{Start: 3, End: 10, Paged: true})
	assert.Equal(t, []string{"d", "e"}, got)

	got = sliceRange(records, &ListQuery{Start: 9, End: 12, Paged: true})
	assert.Empty(t, got)

	got = sliceRange(records, &ListQuery{Start: 3, End: 1, Paged: true})
	assert.Empty(t, got)

	got = sliceRange(records, &ListQuery{})
	assert.Equal(t, records, got)

	got = sliceRange(records, nil)
	assert.Equal(t, records, got)
}
