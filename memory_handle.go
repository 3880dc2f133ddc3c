package restify

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/google/uuid"
)

// MemoryHandle is an in-memory DataHandle. It exists as a reference
// implementation and a test double; filtering and ordering operate on the
// records' JSON projections, so behavior matches what a client observes on
// the wire. The model type must be a pointer type so SetID can assign
// server-side identifiers.
type MemoryHandle[T any] struct {
	mu      sync.RWMutex
	records []T
	getID   func(T) uuid.UUID
	setID   func(T, uuid.UUID)
}

func NewMemoryHandle[T any](getID func(T) uuid.UUID, setID func(T, uuid.UUID)) *MemoryHandle[T] {
	return &MemoryHandle[T]{
		getID: getID,
		setID: setID,
	}
}

func (h *MemoryHandle[T]) Find(ctx context.Context, q *ListQuery) ([]T, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	type row struct {
		record T
		view   map[string]any
	}

	rows := []row{}
	for _, record := range h.records {
		view, err := recordView(record)
		if err != nil {
			return nil, err
		}
		if q != nil && !matchFilter(view, q.Filter) {
			continue
		}
		rows = append(rows, row{record: record, view: view})
	}

	if q != nil && q.Sort != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			cmp := compareValues(rows[i].view[q.Sort], rows[j].view[q.Sort])
			if q.Order == OrderDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		cloned, err := h.clone(r.record)
		if err != nil {
			return nil, err
		}
		out = append(out, cloned)
	}
	return out, nil
}

func (h *MemoryHandle[T]) FindOne(ctx context.Context, id string) (T, bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var zero T
	for _, record := range h.records {
		if !strings.EqualFold(h.getID(record).String(), strings.TrimSpace(id)) {
			continue
		}
		cloned, err := h.clone(record)
		if err != nil {
			return zero, false, err
		}
		return cloned, true, nil
	}
	return zero, false, nil
}

func (h *MemoryHandle[T]) FindByIDAndUpdate(ctx context.Context, id string, patch map[string]any) (T, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	for i, record := range h.records {
		if !strings.EqualFold(h.getID(record).String(), strings.TrimSpace(id)) {
			continue
		}
		if err := applyPatch(&h.records[i], patch); err != nil {
			return zero, true, err
		}
		cloned, err := h.clone(h.records[i])
		if err != nil {
			return zero, true, err
		}
		return cloned, true, nil
	}
	return zero, false, nil
}

func (h *MemoryHandle[T]) Create(ctx context.Context, record T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	if h.getID != nil && h.setID != nil && h.getID(record) == uuid.Nil {
		h.setID(record, uuid.New())
	}

	stored, err := h.clone(record)
	if err != nil {
		return zero, err
	}
	h.records = append(h.records, stored)

	// the returned record must not alias stored state either
	out, err := h.clone(stored)
	if err != nil {
		return zero, err
	}
	return out, nil
}

func (h *MemoryHandle[T]) DeleteByFilter(ctx context.Context, filter Filter) (DeleteResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.records[:0]
	deleted := 0
	for _, record := range h.records {
		view, err := recordView(record)
		if err != nil {
			return DeleteResult{}, err
		}
		if matchFilter(view, filter) {
			deleted++
			continue
		}
		kept = append(kept, record)
	}
	h.records = kept

	return DeleteResult{DeletedCount: deleted}, nil
}

// clone deep-copies a record so stored state never aliases what callers see.
func (h *MemoryHandle[T]) clone(record T) (T, error) {
	var zero T

	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Ptr {
		return record, nil
	}
	if rv.IsNil() {
		return zero, nil
	}

	dst := reflect.New(rv.Type().Elem())
	if err := mergo.Merge(dst.Interface(), rv.Elem().Interface(), mergo.WithOverride); err != nil {
		return zero, err
	}
	return dst.Interface().(T), nil
}

// recordView projects a record onto its JSON field map.
func recordView(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	view := map[string]any{}
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, err
	}
	return view, nil
}

func matchFilter(view map[string]any, filter Filter) bool {
	for name, fv := range filter {
		value, ok := view[name]
		if !ok {
			return false
		}
		switch fv.Kind {
		case FilterNumber:
			n, ok := value.(float64)
			if !ok || n != fv.Number {
				return false
			}
		case FilterBool:
			b, ok := value.(bool)
			if !ok || b != fv.Bool {
				return false
			}
		case FilterID:
			if !strings.EqualFold(fmt.Sprint(value), fv.Raw) {
				return false
			}
		default:
			if !strings.Contains(strings.ToLower(fmt.Sprint(value)), strings.ToLower(fv.Pattern)) {
				return false
			}
		}
	}
	return true
}

func compareValues(a, b any) int {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
