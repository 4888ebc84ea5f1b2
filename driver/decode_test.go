package driver

import (
	"testing"

	"github.com/dyndb/oracle/native"
	"github.com/dyndb/oracle/value"
)

func textCell(text string, t native.ColumnType) native.CellValue {
	return native.CellValue{Text: text, HasText: true, Type: t}
}

func numberType(p, s int) native.ColumnType {
	return native.ColumnType{Code: native.TypeNumber, Precision: p, Scale: s}
}

func mustDecode(t *testing.T, cell native.CellValue) value.Value {
	t.Helper()
	v, err := decodeColumn(cell)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return v
}

func TestDecodeNullBeatsEverything(t *testing.T) {
	types := []native.ColumnType{
		numberType(10, 2),
		{Code: native.TypeBLOB},
		{Code: native.TypeCLOB},
		{Code: native.TypeDate},
		{Code: native.TypeUnknown},
	}
	for _, ct := range types {
		v := mustDecode(t, native.CellValue{Null: true, Type: ct})
		if !v.IsNull() {
			t.Fatalf("null cell of type %s must decode to null, got %v", ct, v.Kind())
		}
	}
}

func TestDecodeNumberWideningByPrecision(t *testing.T) {
	// Digit-count 9 with scale <= 0 fits an int32.
	v := mustDecode(t, textCell("123456789", numberType(9, 0)))
	if v.Kind() != value.KindInt32 || v.Int32() != 123456789 {
		t.Fatalf("numeric(9,0) must decode to int32, got %v %v", v.Kind(), v)
	}

	// Digit-count 10 needs an int64.
	v = mustDecode(t, textCell("1234567890", numberType(10, 0)))
	if v.Kind() != value.KindInt64 || v.Int64() != 1234567890 {
		t.Fatalf("numeric(10,0) must decode to int64, got %v %v", v.Kind(), v)
	}

	// Precision 18 is the int64 ceiling.
	v = mustDecode(t, textCell("123456789012345678", numberType(18, 0)))
	if v.Kind() != value.KindInt64 {
		t.Fatalf("numeric(18,0) must decode to int64, got %v", v.Kind())
	}

	// Beyond 18 digits only the tagged decimal is lossless.
	v = mustDecode(t, textCell("1234567890123456789", numberType(19, 0)))
	if v.Kind() != value.KindExt || v.Tag() != value.TagDecimal {
		t.Fatalf("numeric(19,0) must decode to tagged decimal, got %v", v.Kind())
	}
}

func TestDecodeNumberFractionalNeverWidensToFloat(t *testing.T) {
	v := mustDecode(t, textCell("12345678.90", numberType(10, 2)))
	if v.Kind() != value.KindExt || v.Tag() != value.TagDecimal {
		t.Fatalf("numeric(10,2) must decode to tagged decimal, got %v", v.Kind())
	}
	if s, _ := v.AsString(); s != "12345678.90" {
		t.Fatalf("decimal payload must preserve the value, got %q", s)
	}
}

func TestDecodeNumberUnconstrainedSentinel(t *testing.T) {
	unconstrained := numberType(0, -127)

	v := mustDecode(t, textCell("42", unconstrained))
	if v.Kind() != value.KindInt32 || v.Int32() != 42 {
		t.Fatalf("small whole number must decode to int32, got %v", v.Kind())
	}

	v = mustDecode(t, textCell("1234567890123", unconstrained))
	if v.Kind() != value.KindInt64 || v.Int64() != 1234567890123 {
		t.Fatalf("mid-size whole number must decode to int64, got %v", v.Kind())
	}

	v = mustDecode(t, textCell("12345678901234567890123", unconstrained))
	if v.Kind() != value.KindExt || v.Tag() != value.TagDecimal {
		t.Fatalf("wide whole number must decode to tagged decimal, got %v", v.Kind())
	}

	v = mustDecode(t, textCell("3.14", unconstrained))
	if v.Kind() != value.KindExt || v.Tag() != value.TagDecimal {
		t.Fatalf("fractional unconstrained number must decode to tagged decimal, got %v", v.Kind())
	}
}

func TestDecodeNumberMalformedIsFatal(t *testing.T) {
	_, err := decodeColumn(textCell("12x34", numberType(9, 0)))
	if !IsConversionError(err) {
		t.Fatalf("expected conversion error, got %v", err)
	}
	_, err = decodeColumn(textCell("abc", numberType(0, -127)))
	if !IsConversionError(err) {
		t.Fatalf("expected conversion error, got %v", err)
	}
}

func TestDecodeNumberMissingTextIsFatal(t *testing.T) {
	_, err := decodeColumn(native.CellValue{Type: numberType(9, 0)})
	if !IsConversionError(err) {
		t.Fatalf("expected conversion error for missing string value, got %v", err)
	}
}

func TestDecodeInt64Column(t *testing.T) {
	v := mustDecode(t, textCell("-987654321", native.ColumnType{Code: native.TypeInt64}))
	if v.Kind() != value.KindInt64 || v.Int64() != -987654321 {
		t.Fatalf("int64 column must decode to int64, got %v %v", v.Kind(), v)
	}
}

func TestDecodeFloatMantissaSplit(t *testing.T) {
	wide := native.ColumnType{Code: native.TypeFloat, Precision: 53}
	v := mustDecode(t, textCell("2.5", wide))
	if v.Kind() != value.KindFloat64 || v.Float64() != 2.5 {
		t.Fatalf("float precision 53 must decode to float64, got %v", v.Kind())
	}

	boundary := native.ColumnType{Code: native.TypeFloat, Precision: 24}
	v = mustDecode(t, textCell("2.5", boundary))
	if v.Kind() != value.KindFloat64 {
		t.Fatalf("float precision 24 must decode to float64, got %v", v.Kind())
	}

	narrow := native.ColumnType{Code: native.TypeFloat, Precision: 23}
	v = mustDecode(t, textCell("2.5", narrow))
	if v.Kind() != value.KindFloat32 || v.Float32() != 2.5 {
		t.Fatalf("float precision 23 must decode to float32, got %v", v.Kind())
	}
}

func TestDecodeDate(t *testing.T) {
	v := mustDecode(t, textCell("2024-03-09 11:22:33", native.ColumnType{Code: native.TypeDate}))
	if v.Kind() != value.KindExt || v.Tag() != value.TagDateTime {
		t.Fatalf("date column must decode to tagged datetime, got %v", v.Kind())
	}
	if s, _ := v.AsString(); s != "2024-03-09T11:22:33" {
		t.Fatalf("unexpected datetime payload %q", s)
	}
}

func TestDecodeDateMalformedIsFatal(t *testing.T) {
	_, err := decodeColumn(textCell("not a date", native.ColumnType{Code: native.TypeDate}))
	if !IsConversionError(err) {
		t.Fatalf("expected conversion error, got %v", err)
	}
}

func TestDecodeBinaryTypesRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0xde, 0xad, 0xbe, 0xef, 0x00, 0x7f}
	for _, code := range []native.TypeCode{native.TypeBLOB, native.TypeRaw, native.TypeLongRaw} {
		cell := native.CellValue{Binary: payload, Type: native.ColumnType{Code: code}}
		v := mustDecode(t, cell)
		if v.Kind() != value.KindBytes {
			t.Fatalf("%s must decode through the binary path, got %v", code, v.Kind())
		}
		got := v.Bytes()
		if string(got) != string(payload) {
			t.Fatalf("%s binary round trip mismatch: %v", code, got)
		}

		v = mustDecode(t, native.CellValue{Type: native.ColumnType{Code: code}})
		if !v.IsNull() {
			t.Fatalf("%s without binary payload must decode to null, got %v", code, v.Kind())
		}
	}
}

func TestDecodeCharacterLobs(t *testing.T) {
	for _, code := range []native.TypeCode{native.TypeCLOB, native.TypeNCLOB, native.TypeLong} {
		v := mustDecode(t, textCell("lorem ipsum", native.ColumnType{Code: code}))
		if v.Kind() != value.KindString || v.Str() != "lorem ipsum" {
			t.Fatalf("%s must decode to string, got %v", code, v.Kind())
		}

		_, err := decodeColumn(native.CellValue{Type: native.ColumnType{Code: code}})
		if !IsConversionError(err) {
			t.Fatalf("%s without text must be a fatal conversion error, got %v", code, err)
		}
	}
}

func TestDecodeUnknownTypeFallsBackToText(t *testing.T) {
	v := mustDecode(t, textCell("whatever", native.ColumnType{Code: native.TypeVarchar}))
	if v.Kind() != value.KindString || v.Str() != "whatever" {
		t.Fatalf("varchar must decode to string, got %v", v.Kind())
	}

	_, err := decodeColumn(native.CellValue{Type: native.ColumnType{Code: native.TypeUnknown}})
	if !IsConversionError(err) {
		t.Fatalf("expected unimplemented-conversion error, got %v", err)
	}
}
