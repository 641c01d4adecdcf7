package explore

import "errors"

// Explore source errors.
var (
	// ErrUnavailable is returned when the source cannot be reached or
	// answers with a non-2xx status.
	ErrUnavailable = errors.New("explore source unavailable")
	// ErrMalformedResponse is returned when the response body is not the
	// expected {"data": [...]} envelope.
	ErrMalformedResponse = errors.New("malformed explore response")
)

// ErrStale is delivered by Session.Refresh when its result was dropped
// because a newer refresh started or the session was closed.
var ErrStale = errors.New("explore result superseded")
