package restify

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// fiberAdapter wraps a fiber.Router so that it satisfies restify.Router.
type fiberAdapter struct {
	r fiber.Router
}

// NewFiberAdapter creates a restify.Router backed by a fiber app or group.
func NewFiberAdapter(r fiber.Router) Router {
	return &fiberAdapter{r: r}
}

func (ra *fiberAdapter) Get(path string, handlers ...HandlerFunc) RouteInfo {
	return &fiberRouteInfo{ri: ra.r.Get(path, ra.wrap(handlers))}
}

func (ra *fiberAdapter) Post(path string, handlers ...HandlerFunc) RouteInfo {
	return &fiberRouteInfo{ri: ra.r.Post(path, ra.wrap(handlers))}
}

func (ra *fiberAdapter) Put(path string, handlers ...HandlerFunc) RouteInfo {
	return &fiberRouteInfo{ri: ra.r.Put(path, ra.wrap(handlers))}
}

func (ra *fiberAdapter) Delete(path string, handlers ...HandlerFunc) RouteInfo {
	return &fiberRouteInfo{ri: ra.r.Delete(path, ra.wrap(handlers))}
}

// wrap composes the chain once at registration time and exposes it to fiber
// as a single handler.
func (ra *fiberAdapter) wrap(handlers []HandlerFunc) func(*fiber.Ctx) error {
	chain := Chain(handlers...)
	return func(fc *fiber.Ctx) error {
		return chain(&fiberContext{c: fc})
	}
}

type fiberRouteInfo struct {
	ri fiber.Router
}

func (ri *fiberRouteInfo) Name(n string) RouteInfo {
	ri.ri.Name(n)
	return ri
}

// fiberContext wraps a fiber.Ctx to implement restify.Context.
type fiberContext struct {
	c          *fiber.Ctx
	statusCode int
}

func (ca *fiberContext) UserContext() context.Context {
	return ca.c.UserContext()
}

func (ca *fiberContext) Params(key string, defaultValue ...string) string {
	val := ca.c.Params(key)
	if val == "" && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return val
}

func (ca *fiberContext) BodyParser(out any) error {
	return ca.c.BodyParser(out)
}

func (ca *fiberContext) Query(key string, defaultValue ...string) string {
	val := ca.c.Query(key)
	if val == "" && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return val
}

func (ca *fiberContext) QueryInt(key string, defaultValue ...int) int {
	i, err := strconv.Atoi(ca.Query(key))
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return 0
	}
	return i
}

func (ca *fiberContext) Queries() map[string]string {
	return ca.c.Queries()
}

func (ca *fiberContext) Body() []byte {
	return ca.c.Body()
}

func (ca *fiberContext) Status(status int) Response {
	ca.statusCode = status
	ca.c.Status(status)
	return ca
}

func (ca *fiberContext) JSON(data any, ctype ...string) error {
	if ca.statusCode == 0 {
		ca.statusCode = http.StatusOK
	}
	ca.c.Status(ca.statusCode)
	return ca.c.JSON(data, ctype...)
}

func (ca *fiberContext) SendStatus(status int) error {
	ca.statusCode = status
	return ca.c.SendStatus(status)
}

func (ca *fiberContext) Set(key, value string) {
	ca.c.Set(key, value)
}

func (ca *fiberContext) Locals(key any, value ...any) any {
	return ca.c.Locals(key, value...)
}

func (ca *fiberContext) Next() error {
	return ca.c.Next()
}
