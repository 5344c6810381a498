package store

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound is returned by Delete when no record has the key.
	ErrObjectNotFound = errors.New("object not found in the database")
	// ErrInitializationFailed is returned when the backing database cannot
	// be opened or its schema created.
	ErrInitializationFailed = errors.New("failed to initialize the database")
)

// Op names the store operation that failed.
type Op string

const (
	OpWrite  Op = "write"
	OpRead   Op = "read"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Error carries the failing operation and the underlying cause.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	switch e.Op {
	case OpWrite:
		return fmt.Sprintf("failed to write to the database: %v", e.Err)
	case OpRead:
		return fmt.Sprintf("failed to read from the database: %v", e.Err)
	case OpUpdate:
		return fmt.Sprintf("failed to update the database: %v", e.Err)
	case OpDelete:
		return fmt.Sprintf("failed to delete from the database: %v", e.Err)
	default:
		return fmt.Sprintf("database error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.Err }

func opError(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

func hasOp(err error, op Op) bool {
	var e *Error
	return errors.As(err, &e) && e.Op == op
}

func IsWriteFailed(err error) bool  { return hasOp(err, OpWrite) }
func IsReadFailed(err error) bool   { return hasOp(err, OpRead) }
func IsUpdateFailed(err error) bool { return hasOp(err, OpUpdate) }
func IsDeleteFailed(err error) bool { return hasOp(err, OpDelete) }
