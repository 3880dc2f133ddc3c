package restify

import (
	"net/http"
	"strconv"
)

// HeaderTotalCount carries the pre-slice match count on list responses.
const HeaderTotalCount = "X-Total-Count"

// action builds the middle chain stage for a default slot. The deferred flag
// is fixed at registration time: it is true exactly when an after handler
// resolved for the slot.
func (b *Builder[T]) action(op Operation, deferred bool) HandlerFunc {
	switch op {
	case OpList:
		return b.listAction(deferred)
	case OpRead:
		return b.readAction(deferred)
	case OpUpdate:
		return b.updateAction(deferred)
	case OpCreate:
		return b.createAction(deferred)
	case OpDelete:
		return b.deleteAction(deferred)
	}
	return passthrough
}

// handleFor derives the effective DataHandle for the request.
func (b *Builder[T]) handleFor(c Context) DataHandle[T] {
	if b.modifier != nil {
		return b.modifier(b.handle, c)
	}
	return b.handle
}

func (b *Builder[T]) listAction(deferred bool) HandlerFunc {
	return func(c Context) error {
		q := BuildListQuery(c, b.fields)

		records, err := b.handleFor(c).Find(c.UserContext(), q)
		if err != nil {
			return b.encoder(c, &DataAccessError{err}, OpList)
		}

		// The count reflects the full matched set, never the slice window.
		c.Set(HeaderTotalCount, strconv.Itoa(len(records)))

		return dispatch(c, sliceRange(records, q), deferred)
	}
}

func (b *Builder[T]) readAction(deferred bool) HandlerFunc {
	return func(c Context) error {
		record, found, err := b.handleFor(c).FindOne(c.UserContext(), c.Params("id"))
		if err != nil {
			return b.encoder(c, &DataAccessError{err}, OpRead)
		}
		if !found {
			// A missing record is an empty result, not an error.
			return dispatch(c, nil, deferred)
		}
		return dispatch(c, record, deferred)
	}
}

func (b *Builder[T]) updateAction(deferred bool) HandlerFunc {
	return func(c Context) error {
		patch := map[string]any{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&patch); err != nil {
				return b.encoder(c, &ValidationError{err}, OpUpdate)
			}
		}

		record, found, err := b.handleFor(c).FindByIDAndUpdate(c.UserContext(), c.Params("id"), patch)
		if err != nil {
			return b.encoder(c, &DataAccessError{err}, OpUpdate)
		}
		if !found {
			return dispatch(c, nil, deferred)
		}
		return dispatch(c, record, deferred)
	}
}

func (b *Builder[T]) createAction(deferred bool) HandlerFunc {
	return func(c Context) error {
		record, err := b.deserializer(OpCreate, c)
		if err != nil {
			return b.encoder(c, &ValidationError{err}, OpCreate)
		}

		created, err := b.handleFor(c).Create(c.UserContext(), record)
		if err != nil {
			return b.encoder(c, &DataAccessError{err}, OpCreate)
		}

		c.Status(http.StatusCreated)
		return dispatch(c, created, deferred)
	}
}

func (b *Builder[T]) deleteAction(deferred bool) HandlerFunc {
	return func(c Context) error {
		outcome, err := b.handleFor(c).DeleteByFilter(c.UserContext(), idFilter(c.Params("id")))
		if err != nil {
			return b.encoder(c, &DataAccessError{err}, OpDelete)
		}
		return dispatch(c, outcome, deferred)
	}
}
