package store

import "fmt"

// StorageError wraps any failure talking to the durable store. Callers treat
// it as the commit-point failure: a mutation whose write returns one is not
// durably applied, even if in-memory state kept the change.
type StorageError struct {
	Op  string // "get", "set", "clear", "append", "query", "open"
	Key string // logical key or event type, empty when not applicable
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Key: key, Err: err}
}
