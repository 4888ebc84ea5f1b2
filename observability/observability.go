// Package observability defines the operation-observer seam shared by the
// driver components. Clients report each completed operation to an optional
// Observer; metric and tracing backends implement the interface without the
// driver depending on them.
package observability

import "time"

// OperationContext captures one completed operation for observation.
type OperationContext struct {
	// Component is the reporting component, e.g. "oracle".
	Component string

	// Operation is the operation name, e.g. "query", "exec", "close".
	Operation string

	// Resource identifies the acted-on resource, e.g. a connection id.
	Resource string

	// SubResource further narrows the resource when meaningful.
	SubResource string

	// Duration is the wall time the operation took.
	Duration time.Duration

	// Error is the operation outcome; nil on success.
	Error error

	// Size is an operation-specific magnitude (rows returned, rows affected).
	Size int64

	// Metadata carries optional extra dimensions.
	Metadata map[string]interface{}
}

// Observer receives operation reports. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
