package restify

// resolveHandler returns the handler of the first descriptor whose normalized
// (method, path) pair matches exactly. Declaring multiple candidates for the
// same slot is allowed; the first one wins. When nothing matches it returns a
// pass-through so every registered chain keeps exactly three stages. The
// second return reports whether a real handler matched.
func resolveHandler(descriptors []RouteDescriptor, method Method, path string) (HandlerFunc, bool) {
	for _, d := range descriptors {
		m, ok := ParseMethod(string(d.Method))
		if !ok || d.Handler == nil {
			continue
		}
		if m == method && d.Path == path {
			return d.Handler, true
		}
	}
	return passthrough, false
}

// passthrough immediately hands control to the next chain stage.
func passthrough(c Context) error {
	return c.Next()
}
