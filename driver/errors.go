package driver

import (
	"errors"
	"fmt"
)

// ErrorKind classifies driver failures.
type ErrorKind int

const (
	// KindConnection covers native connect/ping/close failures.
	KindConnection ErrorKind = iota
	// KindStatement covers native prepare/bind/execute/commit/rollback failures.
	KindStatement
	// KindConversion covers unparsable or missing values during encode/decode,
	// unknown extension tags, and unimplemented type conversions.
	KindConversion
	// KindConcurrency covers blocking-worker dispatch and join failures,
	// reported distinctly from native database errors.
	KindConcurrency
)

// String returns the kind name used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindStatement:
		return "statement"
	case KindConversion:
		return "conversion"
	case KindConcurrency:
		return "concurrency"
	default:
		return "unknown"
	}
}

// ErrPoolClosed is reported when work is dispatched to a closed worker pool.
var ErrPoolClosed = errors.New("blocking worker pool is closed")

// ErrTaskJoin is reported when a dispatched unit of blocking work never
// completed normally (the worker died or the unit panicked).
var ErrTaskJoin = errors.New("task join error")

// DriverError is the error type surfaced by every public driver operation.
// It wraps the underlying cause and classifies it; none of these failures are
// retried internally.
type DriverError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *DriverError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("oracle: %s error in %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("oracle: %s error in %s: %v", e.Kind, e.Op, e.Err)
}

func (e *DriverError) Unwrap() error { return e.Err }

func connErr(op string, err error) error {
	return &DriverError{Kind: KindConnection, Op: op, Err: err}
}

func stmtErr(op string, err error) error {
	return &DriverError{Kind: KindStatement, Op: op, Err: err}
}

func convErr(op string, err error) error {
	return &DriverError{Kind: KindConversion, Op: op, Err: err}
}

func convErrf(op, format string, args ...interface{}) error {
	return convErr(op, fmt.Errorf(format, args...))
}

func concErr(op string, err error) error {
	return &DriverError{Kind: KindConcurrency, Op: op, Err: err}
}

func isKind(err error, k ErrorKind) bool {
	var de *DriverError
	return errors.As(err, &de) && de.Kind == k
}

// IsConnectionError reports whether err is a native connect/ping/close failure.
func IsConnectionError(err error) bool { return isKind(err, KindConnection) }

// IsStatementError reports whether err is a native statement failure.
func IsStatementError(err error) bool { return isKind(err, KindStatement) }

// IsConversionError reports whether err is an encode/decode failure.
func IsConversionError(err error) bool { return isKind(err, KindConversion) }

// IsConcurrencyError reports whether err is a worker dispatch/join failure.
func IsConcurrencyError(err error) bool { return isKind(err, KindConcurrency) }
