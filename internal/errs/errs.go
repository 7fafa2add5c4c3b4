// Package errs defines the error kinds surfaced by the dealership core.
//
// The HTTP layer deliberately collapses all of them into a single generic
// server-error response, mirroring the behavior of the system this API
// replaces. The distinct types exist so callers inside the process can
// still tell a rejected input from a failed statement.
package errs

import "fmt"

// ValidationError reports a malformed or missing input field, detected
// before any store interaction.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Constraint)
}

// PersistenceError reports a write the store rejected or failed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// QueryError reports a read the store rejected or failed.
type QueryError struct {
	Report string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Report, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ConnectivityError reports a connection that could not be acquired.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("failed to connect to database: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }
