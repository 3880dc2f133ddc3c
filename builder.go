package restify

import (
	"fmt"
	"strings"
)

// slot is one of the five fixed default route bindings.
type slot struct {
	op     Operation
	method Method
	path   string
}

func defaultSlots() []slot {
	return []slot{
		{OpList, MethodGet, "/all"},
		{OpRead, MethodGet, "/single/:id"},
		{OpUpdate, MethodPut, "/:id"},
		{OpCreate, MethodPost, "/"},
		{OpDelete, MethodDelete, "/:id"},
	}
}

// Builder assembles the default CRUD routes plus caller extensions for one
// resource and registers them with a Router. It holds no registration state
// once RegisterRoutes returns.
type Builder[T any] struct {
	handle       DataHandle[T]
	extensions   []RouteDescriptor
	before       []RouteDescriptor
	after        []RouteDescriptor
	modifier     ResourceModifier[T]
	deserializer func(Operation, Context) (T, error)
	encoder      ErrorEncoder
	logger       Logger
	basePath     string
	resource     string
	fields       map[string]string
}

// NewBuilder creates a Builder for the model type with functional options.
func NewBuilder[T any](handle DataHandle[T], opts ...Option[T]) *Builder[T] {
	t := typeOf[T]()
	b := &Builder[T]{
		handle:       handle,
		deserializer: DefaultDeserializer[T],
		encoder:      DefaultErrorEncoder(),
		logger:       defaultLogger{},
		resource:     resourceSlug(t),
		fields:       fieldsForType(t),
	}
	b.basePath = "/" + b.resource

	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RegisterRoutes validates the declared descriptors and registers the routes.
// Extensions go first so one can shadow a default slot's (method, path);
// the five default slots follow. Each registration is a three-stage chain:
// resolved before handler, action, resolved after handler. Validation is
// all-or-nothing: the first malformed descriptor aborts with no routes
// registered.
func (b *Builder[T]) RegisterRoutes(r Router) error {
	if err := validateDescriptors("extension", b.extensions); err != nil {
		return err
	}
	if err := validateDescriptors("before", b.before); err != nil {
		return err
	}
	if err := validateDescriptors("after", b.after); err != nil {
		return err
	}

	for _, ext := range b.extensions {
		method, _ := ParseMethod(string(ext.Method))
		before, _ := resolveHandler(b.before, method, ext.Path)
		after, _ := resolveHandler(b.after, method, ext.Path)
		name := fmt.Sprintf("%s:%s:%s", b.resource, OpExtension, extensionSlug(method, ext.Path))
		b.register(r, method, ext.Path, name, before, ext.Handler, after)
	}

	for _, s := range defaultSlots() {
		before, _ := resolveHandler(b.before, s.method, s.path)
		after, deferred := resolveHandler(b.after, s.method, s.path)
		name := fmt.Sprintf("%s:%s", b.resource, s.op)
		b.register(r, s.method, s.path, name, before, b.action(s.op, deferred), after)
	}

	return nil
}

func (b *Builder[T]) register(r Router, method Method, path, name string, handlers ...HandlerFunc) {
	full := b.join(path)

	var info RouteInfo
	switch method {
	case MethodGet:
		info = r.Get(full, handlers...)
	case MethodPost:
		info = r.Post(full, handlers...)
	case MethodPut:
		info = r.Put(full, handlers...)
	case MethodDelete:
		info = r.Delete(full, handlers...)
	default:
		return
	}

	if info != nil {
		info.Name(name)
	}
	b.logger.Debug("registered %s %s as %s", method, full, name)
}

func (b *Builder[T]) join(path string) string {
	base := strings.TrimSuffix(b.basePath, "/")
	if path == "" || path == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
