package restify

import (
	"context"
	"strings"
)

// Method is the closed set of HTTP methods a generated route may use.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod normalizes a method string to one of the supported methods.
func ParseMethod(s string) (Method, bool) {
	switch Method(strings.ToUpper(strings.TrimSpace(s))) {
	case MethodGet:
		return MethodGet, true
	case MethodPost:
		return MethodPost, true
	case MethodPut:
		return MethodPut, true
	case MethodDelete:
		return MethodDelete, true
	}
	return "", false
}

// Operation identifies which generated route a handler is serving.
type Operation string

const (
	OpList      Operation = "list"
	OpRead      Operation = "read"
	OpCreate    Operation = "create"
	OpUpdate    Operation = "update"
	OpDelete    Operation = "delete"
	OpExtension Operation = "extension"
)

type Request interface {
	UserContext() context.Context
	Params(key string, defaultValue ...string) string
	BodyParser(out any) error
	Query(key string, defaultValue ...string) string
	QueryInt(key string, defaultValue ...int) int
	Queries() map[string]string
	Body() []byte
}

type Response interface {
	Status(status int) Response
	JSON(data any, ctype ...string) error
	SendStatus(status int) error
	Set(key, value string)
}

// Context is the request/response surface handlers run against. Locals carries
// request-scoped values between chain stages; Next hands control to the next
// stage of the current chain.
type Context interface {
	Request
	Response
	Locals(key any, value ...any) any
	Next() error
}

// HandlerFunc is a single stage in a registered handler chain.
type HandlerFunc func(Context) error

// Router is the routing capability the builder registers against. Handlers
// passed to one registration form an ordered chain for that (method, path).
type Router interface {
	Get(path string, handlers ...HandlerFunc) RouteInfo
	Post(path string, handlers ...HandlerFunc) RouteInfo
	Put(path string, handlers ...HandlerFunc) RouteInfo
	Delete(path string, handlers ...HandlerFunc) RouteInfo
}

// RouteInfo is a simplified interface for route info.
type RouteInfo interface {
	Name(string) RouteInfo
}
