package driver

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dyndb/oracle/native"
	"github.com/dyndb/oracle/value"
)

// Textual formats accepted at the encode boundary.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
	// Re-stringified bind form for parsed date-times.
	bindDateTimeLayout = "2006-01-02 15:04:05"
)

// bindValue binds one dynamic value into stmt. idx is the 0-based parameter
// index; the native call is made at the 1-based position.
func bindValue(stmt native.Stmt, v value.Value, idx int) error {
	pos := idx + 1

	switch v.Kind() {
	case value.KindExt:
		return bindExt(stmt, v, pos)
	case value.KindString:
		return bindNative(stmt.BindString(pos, v.Str()))
	case value.KindInt32:
		return bindNative(stmt.BindInt64(pos, int64(v.Int32())))
	case value.KindInt64:
		return bindNative(stmt.BindInt64(pos, v.Int64()))
	case value.KindFloat32:
		return bindNative(stmt.BindFloat32(pos, v.Float32()))
	case value.KindFloat64:
		return bindNative(stmt.BindFloat64(pos, v.Float64()))
	case value.KindBytes:
		return bindNative(stmt.BindBytes(pos, v.Bytes()))
	case value.KindNull:
		return bindNative(stmt.BindNull(pos))
	case value.KindBool:
		// No native boolean; booleans travel as 0/1 integers.
		b := int64(0)
		if v.Bool() {
			b = 1
		}
		return bindNative(stmt.BindInt64(pos, b))
	case value.KindSlice:
		// Sequences have no native representation; bind the stringified form.
		return bindNative(stmt.BindString(pos, v.String()))
	default:
		return bindNative(stmt.BindString(pos, v.String()))
	}
}

// bindExt handles the extension tags, each with its own parse rule. Unknown
// tags fail loudly; nothing is silently dropped.
func bindExt(stmt native.Stmt, v value.Value, pos int) error {
	payload := v.Payload()

	switch v.Tag() {
	case value.TagDate:
		s, _ := payload.AsString()
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return convErr("bind date", err)
		}
		return bindNative(stmt.BindString(pos, t.Format(dateLayout)))

	case value.TagDateTime:
		s, _ := payload.AsString()
		t, err := time.Parse(dateTimeLayout, s)
		if err != nil {
			return convErr("bind datetime", err)
		}
		return bindNative(stmt.BindString(pos, t.Format(bindDateTimeLayout)))

	case value.TagTime:
		s, _ := payload.AsString()
		return bindNative(stmt.BindString(pos, s))

	case value.TagDecimal:
		s, _ := payload.AsString()
		d, err := decimal.NewFromString(s)
		if err != nil {
			return convErr("bind decimal", err)
		}
		return bindNative(stmt.BindString(pos, d.String()))

	case value.TagTimestamp:
		ts, _ := payload.AsUint64()
		return bindNative(stmt.BindInt64(pos, int64(ts)))

	case value.TagUuid:
		s, _ := payload.AsString()
		return bindNative(stmt.BindString(pos, s))

	case value.TagJson:
		return convErrf("bind", "json type not implemented")

	default:
		return convErrf("bind", "unknown extended type %v", v.Tag())
	}
}

func bindNative(err error) error {
	if err != nil {
		return stmtErr("bind", err)
	}
	return nil
}
