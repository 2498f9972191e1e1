package store

import (
	stderrors "errors"
	"fmt"
)

// ErrNotFound reports that a targeted record does not exist.
var ErrNotFound = stderrors.New("record not found")

// StorageError is any failure reported by the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageFailure reports whether err carries a StorageError.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return stderrors.As(err, &se)
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
