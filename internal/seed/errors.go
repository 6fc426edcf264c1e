package seed

import "errors"

var (
	ErrMissingUser  = errors.New("seed: fixture has no user_id")
	ErrInvalidDate  = errors.New("seed: invalid date")
	ErrInvalidEvent = errors.New("seed: invalid event")
)
