package records

import "errors"

var (
	ErrInvalidID      = errors.New("invalid identifier")
	ErrUnknownFamily  = errors.New("unknown sub-record family")
	ErrRecordNotFound = errors.New("record not found")
)
