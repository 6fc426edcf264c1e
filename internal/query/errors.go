package query

import "errors"

// Domain-specific errors for the query package.
var (
	ErrMissingUser = errors.New("user id is required")
	ErrEmptyQuery  = errors.New("query must not be empty")
)
