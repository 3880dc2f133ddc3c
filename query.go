package restify

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Reserved query parameters. They control ordering and slicing and are never
// treated as filters.
const (
	paramStart = "_start"
	paramEnd   = "_end"
	paramSort  = "_sort"
	paramOrder = "_order"
)

const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// FilterKind is the inferred type of a query-parameter filter value.
type FilterKind string

const (
	FilterNumber  FilterKind = "number"
	FilterBool    FilterKind = "bool"
	FilterID      FilterKind = "id"
	FilterPattern FilterKind = "pattern"
)

// FilterValue is one typed filter term. Raw always carries the original
// query-string value.
type FilterValue struct {
	Kind    FilterKind
	Number  float64
	Bool    bool
	ID      uuid.UUID
	Pattern string
	Raw     string
}

// Filter maps JSON field names to typed filter terms. All terms must match.
type Filter map[string]FilterValue

// ListQuery carries the per-request filter, ordering, and slice window for a
// list operation. Handles apply Filter and Sort; the index window is applied
// by the action after the total count is taken, so slicing never affects the
// X-Total-Count header.
type ListQuery struct {
	Filter Filter
	Sort   string
	Order  string
	Start  int
	End    int
	Paged  bool
}

// BuildListQuery derives a ListQuery from the request's query string. Only
// parameters naming a known field become filters; everything else is ignored.
// Sorting applies only when _sort names a known field and _order normalizes
// to ASC or DESC. Slicing applies only when both _start and _end parse as
// integers; a single bound means no slicing.
func BuildListQuery(c Context, fields map[string]string) *ListQuery {
	q := &ListQuery{Filter: Filter{}}

	if sort := strings.TrimSpace(c.Query(paramSort)); sort != "" {
		order := strings.ToUpper(strings.TrimSpace(c.Query(paramOrder)))
		if _, ok := fields[sort]; ok && (order == OrderAsc || order == OrderDesc) {
			q.Sort = sort
			q.Order = order
		}
	}

	startRaw := c.Query(paramStart)
	endRaw := c.Query(paramEnd)
	if startRaw != "" && endRaw != "" {
		start, startErr := strconv.Atoi(startRaw)
		end, endErr := strconv.Atoi(endRaw)
		if startErr == nil && endErr == nil {
			q.Start, q.End, q.Paged = start, end, true
		}
	}

	for name, value := range c.Queries() {
		switch name {
		case paramStart, paramEnd, paramSort, paramOrder:
			continue
		}
		if _, ok := fields[name]; !ok {
			continue
		}
		q.Filter[name] = inferFilterValue(value)
	}

	return q
}

// inferFilterValue types a raw query value. The order is fixed: numeric if it
// parses as a number, boolean if it reads "true"/"false" in any case, an
// identifier reference if it parses as a UUID, otherwise a case-insensitive
// substring pattern.
func inferFilterValue(raw string) FilterValue {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return FilterValue{Kind: FilterNumber, Number: n, Raw: raw}
	}
	if strings.EqualFold(raw, "true") || strings.EqualFold(raw, "false") {
		return FilterValue{Kind: FilterBool, Bool: strings.EqualFold(raw, "true"), Raw: raw}
	}
	if id, err := uuid.Parse(raw); err == nil {
		return FilterValue{Kind: FilterID, ID: id, Raw: raw}
	}
	return FilterValue{Kind: FilterPattern, Pattern: raw, Raw: raw}
}

// idFilter builds the identifier-equality filter used by the delete action.
func idFilter(raw string) Filter {
	fv := FilterValue{Kind: FilterID, Raw: raw}
	if id, err := uuid.Parse(raw); err == nil {
		fv.ID = id
	}
	return Filter{idField: fv}
}

// sliceRange applies the inclusive _start.._end window to the matched set.
func sliceRange[T any](records []T, q *ListQuery) []T {
	if q == nil || !q.Paged {
		return records
	}
	start, end := q.Start, q.End
	if start < 0 {
		start = 0
	}
	if start >= len(records) || end < start {
		return []T{}
	}
	if end >= len(records) {
		end = len(records) - 1
	}
	return records[start : end+1]
}
