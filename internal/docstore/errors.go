package docstore

import "errors"

var (
	ErrNotFound          = errors.New("document not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidField      = errors.New("invalid reference field")
	ErrConflict          = errors.New("document conflicts with an existing one")
)
