// Package value defines the dynamic value representation exchanged between
// the query framework and database drivers.
//
// A Value is a tagged union over the primitive kinds a dynamic query layer
// deals in (null, booleans, fixed-width integers and floats, strings, byte
// slices and ordered sequences) plus a closed set of extension tags for
// domain types that need custom parse/format rules (dates, decimals, UUIDs).
//
// The extension tag set is a closed enum rather than free-form strings.
// Drivers match it exhaustively and reject out-of-range tag values at the
// encode boundary.
//
// Values are immutable once constructed and safe to share across goroutines.
package value
