package restify

// PendingResultKey is the Locals key under which a default action stashes its
// result when an after handler is registered for the slot.
const PendingResultKey = "restify.pending_result"

// PendingResult returns the value a default action computed for the current
// request, or nil outside the deferred path.
func PendingResult(c Context) any {
	return c.Locals(PendingResultKey)
}

// dispatch settles a default action's result. Without an after handler the
// result is serialized and sent immediately, terminating the chain. With one,
// the result is attached to the request and control passes onward; the after
// handler then owns the client-visible response. Exactly one of the two
// happens per request.
func dispatch(c Context, result any, deferred bool) error {
	if !deferred {
		return c.JSON(result)
	}
	c.Locals(PendingResultKey, result)
	return c.Next()
}
