// Package orasql implements the native client surface on top of database/sql
// with the pure-Go sijms/go-ora driver registered.
//
// Each native.Conn wraps exactly one database/sql connection (the pool above
// it is pinned to a single open conn), so the session-level Commit/Rollback
// semantics the bridge expects hold: all statements executed between two
// Commit calls belong to the same server-side transaction.
package orasql
