package restify

// Option configures a Builder.
type Option[T any] func(*Builder[T])

// WithExtensions appends caller-defined routes. They are registered before
// the default slots, so an extension sharing a default (method, path) shadows
// the built-in action.
func WithExtensions[T any](descriptors ...RouteDescriptor) Option[T] {
	return func(b *Builder[T]) {
		b.extensions = append(b.extensions, descriptors...)
	}
}

// WithBefore declares middleware spliced in front of the matching route's
// action. Entries that match no registered slot are never invoked.
func WithBefore[T any](descriptors ...RouteDescriptor) Option[T] {
	return func(b *Builder[T]) {
		b.before = append(b.before, descriptors...)
	}
}

// WithAfter declares middleware spliced behind the matching route's action.
// When an after handler matches a default slot, the action defers its result
// to it instead of responding directly.
func WithAfter[T any](descriptors ...RouteDescriptor) Option[T] {
	return func(b *Builder[T]) {
		b.after = append(b.after, descriptors...)
	}
}

// WithResourceModifier derives a request-scoped DataHandle ahead of every
// default action.
func WithResourceModifier[T any](modifier ResourceModifier[T]) Option[T] {
	return func(b *Builder[T]) {
		b.modifier = modifier
	}
}

// WithBasePath overrides the base path derived from the model type name.
func WithBasePath[T any](path string) Option[T] {
	return func(b *Builder[T]) {
		b.basePath = path
	}
}

// WithDeserializer sets a custom deserializer for create payloads.
func WithDeserializer[T any](d func(Operation, Context) (T, error)) Option[T] {
	return func(b *Builder[T]) {
		b.deserializer = d
	}
}

// WithErrorEncoder overrides how handler errors become HTTP responses.
func WithErrorEncoder[T any](encoder ErrorEncoder) Option[T] {
	return func(b *Builder[T]) {
		if encoder != nil {
			b.encoder = encoder
		}
	}
}

func WithLogger[T any](logger Logger) Option[T] {
	return func(b *Builder[T]) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// DefaultDeserializer decodes the full request body into a record.
func DefaultDeserializer[T any](op Operation, c Context) (T, error) {
	var record T
	if err := c.BodyParser(&record); err != nil {
		return record, err
	}
	return record, nil
}
