package service

import (
	"errors"
	"fmt"
)

// StorageError marks a failure of the underlying store: unreachable
// database, missing schema, or a failed statement. Validation failures
// are plain errors, not StorageErrors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError anywhere in
// its chain.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// ExternalServiceError marks a failed call to one of the external search
// collaborators. Callers always receive an empty result set alongside
// it; partial results are never returned.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// IsExternalServiceError reports whether err carries an
// ExternalServiceError anywhere in its chain.
func IsExternalServiceError(err error) bool {
	var ee *ExternalServiceError
	return errors.As(err, &ee)
}
