package value

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
	KindSlice
	KindExt
)

// String returns the kind name as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindSlice:
		return "slice"
	case KindExt:
		return "ext"
	default:
		return "unknown"
	}
}

// ExtTag names a recognized extension sub-kind. The set is closed: drivers
// match it exhaustively and reject any out-of-range value.
type ExtTag int

const (
	TagDate ExtTag = iota
	TagDateTime
	TagTime
	TagDecimal
	TagTimestamp
	TagUuid
	TagJson
)

// String returns the canonical tag name.
func (t ExtTag) String() string {
	switch t {
	case TagDate:
		return "Date"
	case TagDateTime:
		return "DateTime"
	case TagTime:
		return "Time"
	case TagDecimal:
		return "Decimal"
	case TagTimestamp:
		return "Timestamp"
	case TagUuid:
		return "Uuid"
	case TagJson:
		return "Json"
	default:
		return "ExtTag(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is the dynamic tagged union. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	bin  []byte
	vs   []Value
	tag  ExtTag
	ext  *Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int32 wraps a 32-bit integer.
func Int32(i int32) Value { return Value{kind: KindInt32, i: int64(i)} }

// Int64 wraps a 64-bit integer.
func Int64(i int64) Value { return Value{kind: KindInt64, i: i} }

// Float32 wraps a 32-bit float.
func Float32(f float32) Value { return Value{kind: KindFloat32, f: float64(f)} }

// Float64 wraps a 64-bit float.
func Float64(f float64) Value { return Value{kind: KindFloat64, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes wraps a byte slice. The slice is not copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bin: b} }

// SliceOf wraps an ordered sequence of values. The slice is not copied.
func SliceOf(vs []Value) Value { return Value{kind: KindSlice, vs: vs} }

// Ext wraps a payload under an extension tag.
func Ext(tag ExtTag, payload Value) Value {
	return Value{kind: KindExt, tag: tag, ext: &payload}
}

// Kind reports the held variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Int32 returns the int32 payload. Valid only for KindInt32.
func (v Value) Int32() int32 { return int32(v.i) }

// Int64 returns the int64 payload. Valid only for KindInt64.
func (v Value) Int64() int64 { return v.i }

// Float32 returns the float32 payload. Valid only for KindFloat32.
func (v Value) Float32() float32 { return float32(v.f) }

// Float64 returns the float64 payload. Valid only for KindFloat64.
func (v Value) Float64() float64 { return v.f }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.s }

// Bytes returns the byte payload. Valid only for KindBytes.
func (v Value) Bytes() []byte { return v.bin }

// Slice returns the sequence payload. Valid only for KindSlice.
func (v Value) Slice() []Value { return v.vs }

// Tag returns the extension tag. Valid only for KindExt.
func (v Value) Tag() ExtTag { return v.tag }

// Payload returns the extension payload, or null for non-extension values.
func (v Value) Payload() Value {
	if v.kind != KindExt || v.ext == nil {
		return Null()
	}
	return *v.ext
}

// AsString extracts a string from string-like values: strings themselves and
// extension payloads that hold a string. The second return reports success.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.s, true
	case KindExt:
		return v.Payload().AsString()
	default:
		return "", false
	}
}

// AsUint64 extracts an unsigned integer from integer-shaped values.
func (v Value) AsUint64() (uint64, bool) {
	switch v.kind {
	case KindInt32, KindInt64:
		if v.i < 0 {
			return 0, false
		}
		return uint64(v.i), true
	case KindExt:
		return v.Payload().AsUint64()
	default:
		return 0, false
	}
}

// String renders the value as text. This is the representation used when a
// value has to be bound through a string fallback (e.g. sequences).
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBytes:
		return string(v.bin)
	case KindSlice:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.vs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e.String())
		}
		b.WriteByte(']')
		return b.String()
	case KindExt:
		return v.tag.String() + "(" + v.Payload().String() + ")"
	default:
		return ""
	}
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt32, KindInt64:
		return v.i == o.i
	case KindFloat32, KindFloat64:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindBytes:
		if len(v.bin) != len(o.bin) {
			return false
		}
		for i := range v.bin {
			if v.bin[i] != o.bin[i] {
				return false
			}
		}
		return true
	case KindSlice:
		if len(v.vs) != len(o.vs) {
			return false
		}
		for i := range v.vs {
			if !v.vs[i].Equal(o.vs[i]) {
				return false
			}
		}
		return true
	case KindExt:
		return v.tag == o.tag && v.Payload().Equal(o.Payload())
	default:
		return false
	}
}
