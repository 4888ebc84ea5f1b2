package native

import "strconv"

// TypeCode identifies a database-declared column type.
type TypeCode int

const (
	TypeUnknown TypeCode = iota
	TypeVarchar
	TypeChar
	TypeNumber
	TypeInt64
	TypeFloat
	TypeDate
	TypeTimestamp
	TypeRaw
	TypeLong
	TypeLongRaw
	TypeBLOB
	TypeCLOB
	TypeNCLOB
)

// String returns the Oracle-style name of the type code.
func (c TypeCode) String() string {
	switch c {
	case TypeVarchar:
		return "VARCHAR2"
	case TypeChar:
		return "CHAR"
	case TypeNumber:
		return "NUMBER"
	case TypeInt64:
		return "INT64"
	case TypeFloat:
		return "FLOAT"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeRaw:
		return "RAW"
	case TypeLong:
		return "LONG"
	case TypeLongRaw:
		return "LONG RAW"
	case TypeBLOB:
		return "BLOB"
	case TypeCLOB:
		return "CLOB"
	case TypeNCLOB:
		return "NCLOB"
	default:
		return "UNKNOWN"
	}
}

// ColumnType is a declared column type together with its numeric metadata.
//
// For TypeNumber, Precision/Scale carry the declared precision and scale;
// the pair (0, -127) is the sentinel for an unconstrained NUMBER. For
// TypeFloat, Precision is the binary mantissa precision.
type ColumnType struct {
	Code      TypeCode
	Precision int
	Scale     int
}

// String renders the type for metadata display, e.g. "NUMBER(10,2)".
func (t ColumnType) String() string {
	if t.Code == TypeNumber && (t.Precision != 0 || t.Scale != 0) {
		return t.Code.String() + "(" + strconv.Itoa(t.Precision) + "," + strconv.Itoa(t.Scale) + ")"
	}
	if t.Code == TypeFloat && t.Precision != 0 {
		return t.Code.String() + "(" + strconv.Itoa(t.Precision) + ")"
	}
	return t.Code.String()
}

// IsBinary reports whether values of this type travel through the binary
// representation rather than the textual one.
func (t ColumnType) IsBinary() bool {
	switch t.Code {
	case TypeRaw, TypeLongRaw, TypeBLOB:
		return true
	default:
		return false
	}
}

// ColumnInfo describes one column of a result set as reported by the native
// client.
type ColumnInfo struct {
	Name string
	Type ColumnType
}

// CellValue is the raw representation of a single column value in a fetched
// row. When Null is false, exactly one of the textual or binary slots is
// populated; large-object binary types never populate the textual slot.
//
// A cell with Null false, HasText false and a nil Binary is the "empty"
// degraded form produced when the native getter failed in relaxed retrieval
// mode.
type CellValue struct {
	Text    string
	HasText bool
	Binary  []byte
	Null    bool
	Type    ColumnType
}
