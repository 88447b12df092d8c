package reservations

import "errors"

var (
	// ErrNotFound means the lookup matched nothing in the catalog. The
	// workflow resets to Idle and the user may retry with other criteria.
	ErrNotFound = errors.New("no reservation found with the provided information")

	// ErrInvalidState guards the workflow transitions: modifying without a
	// found reservation, cancelling a reservation that is not the found
	// one, and the like.
	ErrInvalidState = errors.New("operation not valid in the current workflow state")
)
