package calendarsync

import "errors"

var (
	ErrMissingUser = errors.New("calendarsync: user id is required")
	ErrFetchFailed = errors.New("calendarsync: failed to fetch calendar events")
)
