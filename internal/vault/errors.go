package vault

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned by write operations when no Vault address is
// configured. Callers treat it as "export not requested", not as a failure.
var ErrDisabled = errors.New("vault export is disabled")

// OperationError describes a failed Vault operation.
type OperationError struct {
	// Op is the operation that failed, e.g. "kv_write".
	Op string

	// Path is the full secret path involved.
	Path string

	// Msg is a human-readable description.
	Msg string

	// Err is the underlying cause, if any.
	Err error
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vault %s %s: %s: %v", e.Op, e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("vault %s %s: %s", e.Op, e.Path, e.Msg)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func newOpError(op, path, msg string, err error) *OperationError {
	return &OperationError{Op: op, Path: path, Msg: msg, Err: err}
}
