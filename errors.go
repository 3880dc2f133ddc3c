package restify

import "fmt"

// DataAccessError marks a failure reported by the DataHandle collaborator.
// It is surfaced to the client as a 400-class response carrying the
// collaborator's message and terminates the chain.
type DataAccessError struct{ error }

// ValidationError marks a request body that could not be deserialized.
type ValidationError struct{ error }

func (e *DataAccessError) Unwrap() error { return e.error }
func (e *ValidationError) Unwrap() error { return e.error }

// InvalidRouteError reports a malformed RouteDescriptor. It is returned from
// RegisterRoutes before any route is registered and never reaches request
// handling.
type InvalidRouteError struct {
	List   string
	Index  int
	Reason string
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid %s route at index %d: %s", e.List, e.Index, e.Reason)
}
