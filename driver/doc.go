// Package driver bridges a dynamically-typed, non-blocking query layer onto
// the blocking Oracle client surface declared in package native.
//
// # What it does
//
// The package owns the two pieces with real design risk:
//
//   - the bidirectional value transcoder: dynamic values bind into native
//     statement parameters (encode), and native column values come back as
//     dynamic values with precision-correct numeric widening (decode);
//   - the connection/transaction bridge: every public operation dispatches
//     its blocking native counterpart onto a bounded worker pool and awaits
//     the result, while an explicit flag tracks transaction boundaries.
//
// # Transactions
//
// The reserved statements "begin", "commit" and "rollback" (exact,
// case-sensitive) are intercepted by Exec. "begin" sets the transaction flag
// without any native call; "commit" and "rollback" perform the native call
// and clear the flag on success. Every other statement commits right after
// execution unless the flag is set.
//
// The flag has its own mutex which is never held across a native call, so
// two goroutines racing on one autocommit connection can both commit; see
// the Connection type comment.
//
// # Errors
//
// Every failure surfaces as a *DriverError classified as connection,
// statement, conversion or concurrency; nothing is retried internally, and
// no panic crosses the package boundary (panics inside dispatched native
// work are caught and reported as concurrency errors).
//
// # Basic usage
//
//	opts, err := driver.ParseURL("oracle://scott:tiger@db:1521/XEPDB1")
//	if err != nil { ... }
//	conn, err := driver.Establish(ctx, orasql.NewClient(), opts)
//	if err != nil { ... }
//	defer conn.Close(ctx)
//
//	rows, err := conn.Query(ctx, "SELECT id, name FROM users WHERE id = ?",
//	    []value.Value{value.Int64(1)})
//
// Connection pooling, retries and timeouts are caller concerns; a
// *Connection is one physical session.
package driver
