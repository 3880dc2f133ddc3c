package restify

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryHandle adapts a repository.Repository[T] to the DataHandle
// capability. Filters and ordering translate to bun select criteria; the
// slice window stays with the caller, so Find always returns the full
// matched set.
type RepositoryHandle[T any] struct {
	repo   repository.Repository[T]
	fields map[string]string
}

func NewRepositoryHandle[T any](repo repository.Repository[T]) *RepositoryHandle[T] {
	return &RepositoryHandle[T]{
		repo:   repo,
		fields: fieldsForType(typeOf[T]()),
	}
}

func (h *RepositoryHandle[T]) Find(ctx context.Context, q *ListQuery) ([]T, error) {
	records, _, err := h.repo.List(ctx, h.selectCriteria(q)...)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (h *RepositoryHandle[T]) FindOne(ctx context.Context, id string) (T, bool, error) {
	var zero T
	records, _, err := h.repo.List(ctx, whereID(id))
	if err != nil {
		return zero, false, err
	}
	if len(records) == 0 {
		return zero, false, nil
	}
	return records[0], true, nil
}

func (h *RepositoryHandle[T]) FindByIDAndUpdate(ctx context.Context, id string, patch map[string]any) (T, bool, error) {
	var zero T

	record, found, err := h.FindOne(ctx, id)
	if err != nil || !found {
		return zero, found, err
	}

	if err := applyPatch(&record, patch); err != nil {
		return zero, true, err
	}

	updated, err := h.repo.Update(ctx, record)
	if err != nil {
		return zero, true, err
	}
	return updated, true, nil
}

func (h *RepositoryHandle[T]) Create(ctx context.Context, record T) (T, error) {
	handlers := h.repo.Handlers()
	if handlers.GetID != nil && handlers.SetID != nil && handlers.GetID(record) == uuid.Nil {
		handlers.SetID(record, uuid.New())
	}
	return h.repo.Create(ctx, record)
}

func (h *RepositoryHandle[T]) DeleteByFilter(ctx context.Context, filter Filter) (DeleteResult, error) {
	records, _, err := h.repo.List(ctx, h.selectCriteria(&ListQuery{Filter: filter})...)
	if err != nil {
		return DeleteResult{}, err
	}
	if len(records) == 0 {
		return DeleteResult{}, nil
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, h.repo.Handlers().GetID(record).String())
	}

	if err := h.repo.DeleteWhere(ctx, repository.DeleteByIDs(ids)); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: len(records)}, nil
}

func (h *RepositoryHandle[T]) selectCriteria(q *ListQuery) []repository.SelectCriteria {
	criteria := []repository.SelectCriteria{}
	if q == nil {
		return criteria
	}

	for name, value := range q.Filter {
		column, ok := h.fields[name]
		if !ok {
			continue
		}
		fv := value
		criteria = append(criteria, func(sq *bun.SelectQuery) *bun.SelectQuery {
			switch fv.Kind {
			case FilterNumber:
				return sq.Where(fmt.Sprintf("%s = ?", column), fv.Number)
			case FilterBool:
				return sq.Where(fmt.Sprintf("%s = ?", column), fv.Bool)
			case FilterID:
				return sq.Where(fmt.Sprintf("%s = ?", column), fv.Raw)
			default:
				return sq.Where(fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", column), "%"+fv.Pattern+"%")
			}
		})
	}

	if q.Sort != "" {
		if column, ok := h.fields[q.Sort]; ok {
			clause := column
			if q.Order != "" {
				clause += " " + q.Order
			}
			criteria = append(criteria, func(sq *bun.SelectQuery) *bun.SelectQuery {
				return sq.Order(clause)
			})
		}
	}

	return criteria
}

func whereID(id string) repository.SelectCriteria {
	return func(sq *bun.SelectQuery) *bun.SelectQuery {
		return sq.Where("id = ?", id)
	}
}
