package directory

import (
	"errors"

	"hrdesk/internal/docstore"
)

var (
	ErrInvalidID          = errors.New("invalid identifier")
	ErrMissingField       = errors.New("missing required field")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, docstore.ErrNotFound)
}
