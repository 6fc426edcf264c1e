package repository

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrFailedToQuery   = errors.New("failed to query records")
	ErrFailedToInsert  = errors.New("failed to insert record")
)
