package restify

import (
	"context"
	"encoding/json"
)

// DataHandle is the persistence capability the generated routes depend on.
// Find returns the full filtered and ordered match set; the list action takes
// the total count before applying any slice window, so implementations must
// not paginate. FindOne and FindByIDAndUpdate report a missing record through
// the bool return rather than an error.
type DataHandle[T any] interface {
	Find(ctx context.Context, q *ListQuery) ([]T, error)
	FindOne(ctx context.Context, id string) (T, bool, error)
	FindByIDAndUpdate(ctx context.Context, id string, patch map[string]any) (T, bool, error)
	Create(ctx context.Context, record T) (T, error)
	DeleteByFilter(ctx context.Context, filter Filter) (DeleteResult, error)
}

// DeleteResult is the outcome of a delete-by-filter call.
type DeleteResult struct {
	DeletedCount int `json:"deletedCount"`
}

// ResourceModifier derives a request-scoped DataHandle before each default
// action runs, e.g. for tenant isolation. It must not mutate shared state;
// the derived handle is discarded after the request completes.
type ResourceModifier[T any] func(handle DataHandle[T], c Context) DataHandle[T]

// applyPatch sets exactly the fields present in patch on target, leaving the
// rest untouched. Zero values in the patch are applied.
func applyPatch(target any, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
