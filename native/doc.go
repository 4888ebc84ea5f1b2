// Package native declares the blocking Oracle client surface the bridge is
// written against.
//
// Every method on these interfaces may block for the duration of a network
// round trip. The driver core never calls them from a caller goroutine; all
// invocations happen on a dedicated blocking worker. Implementations do not
// need to be safe for concurrent use of a single Conn; the one physical
// session serializes its own work.
//
// The production implementation lives in native/orasql. Tests substitute
// in-memory fakes.
package native
