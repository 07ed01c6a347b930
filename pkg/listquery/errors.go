package listquery

import (
	"github.com/pkg/errors"
)

// ErrInvalidPagination reports a page or limit that was non-numeric or out of
// range. The value is clamped and the query still runs.
var ErrInvalidPagination = errors.New("invalid pagination")

// ParamError is a filter value that failed presence or coercion checks.
type ParamError struct {
	Param  string
	Reason string
}

func (e *ParamError) Error() string {
	return e.Param + " " + e.Reason
}

// StorageError wraps a failure of the count or data query. No partial result
// accompanies it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "listquery: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsParamError(err error) bool {
	var pe *ParamError
	return errors.As(err, &pe)
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
