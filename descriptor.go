package restify

import "strings"

// RouteDescriptor declares a (method, path, handler) triple. Callers use it to
// contribute extension routes and before/after middleware to a resource.
// Paths are relative to the builder's base path and match against route slots
// by exact string equality.
type RouteDescriptor struct {
	Method  Method
	Path    string
	Handler HandlerFunc
}

// validateDescriptors rejects malformed declarations before anything is
// registered. The first invalid descriptor aborts the whole batch.
func validateDescriptors(list string, descriptors []RouteDescriptor) error {
	for i, d := range descriptors {
		if _, ok := ParseMethod(string(d.Method)); !ok {
			return &InvalidRouteError{List: list, Index: i, Reason: "unsupported method " + strings.TrimSpace(string(d.Method))}
		}
		if strings.TrimSpace(d.Path) == "" {
			return &InvalidRouteError{List: list, Index: i, Reason: "empty path"}
		}
		if d.Handler == nil {
			return &InvalidRouteError{List: list, Index: i, Reason: "nil handler"}
		}
	}
	return nil
}
