package parser

import "errors"

var (
	ErrUnparsableDate = errors.New("unparsable date reference")
)
