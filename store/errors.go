package store

import "fmt"

// StorageError reports a failure reading, parsing or writing the tokens file.
type StorageError struct {
	URL string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: failed to %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
