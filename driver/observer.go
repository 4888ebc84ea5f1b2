package driver

import (
	"time"

	"github.com/dyndb/oracle/observability"
)

// observe notifies the observer about a completed operation if one is
// configured. Used internally to feed metrics and tracing backends.
func (c *Connection) observe(operation string, duration time.Duration, err error, size int64) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: "oracle",
		Operation: operation,
		Resource:  c.id,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  nil,
	})
}
