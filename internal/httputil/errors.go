package httputil

import "errors"

// Errors for request binding. Their messages go to API clients verbatim.
var (
	ErrInvalidBody      = errors.New("the request body contains invalid or un-parseable data, check it and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
