package restify

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// chainContext threads Next through an ordered handler list. Stages after the
// first receive the chain context itself, so calling Next inside any stage
// advances within the same chain.
type chainContext struct {
	Context
	handlers []HandlerFunc
	index    int
}

func (c *chainContext) Next() error {
	c.index++
	if c.index < len(c.handlers) {
		return c.handlers[c.index](c)
	}
	return nil
}

// Chain composes an ordered handler list into a single handler. A panic in
// any stage is recovered and surfaced as an internal error so the routing
// framework's error path handles it instead of the process dying.
func Chain(handlers ...HandlerFunc) HandlerFunc {
	return func(base Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = goerrors.New(fmt.Sprintf("handler panic: %v", r), goerrors.CategoryInternal)
			}
		}()

		if len(handlers) == 0 {
			return nil
		}

		cc := &chainContext{Context: base, handlers: handlers}
		return handlers[0](cc)
	}
}
