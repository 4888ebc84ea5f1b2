package driver

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dyndb/oracle/native"
	"github.com/dyndb/oracle/value"
)

var errMissingString = errors.New("missing string value")

// Textual forms a DATE column may arrive in.
var dateParseLayouts = []string{
	bindDateTimeLayout,
	dateTimeLayout,
	dateLayout,
}

// decodeColumn converts one raw column value into a dynamic value. It is a
// pure function: the null flag short-circuits everything, numeric types widen
// by precision, and large objects keep to their binary or textual path.
func decodeColumn(cell native.CellValue) (value.Value, error) {
	if cell.Null {
		return value.Null(), nil
	}

	switch cell.Type.Code {
	case native.TypeNumber:
		return decodeNumber(cell)

	case native.TypeInt64:
		s, err := cellText(cell)
		if err != nil {
			return value.Null(), err
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Null(), convErr("decode int64", err)
		}
		return value.Int64(i), nil

	case native.TypeFloat:
		s, err := cellText(cell)
		if err != nil {
			return value.Null(), err
		}
		// Mantissa precision below 24 bits fits a 32-bit float.
		if cell.Type.Precision >= 24 {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return value.Null(), convErr("decode float64", err)
			}
			return value.Float64(f), nil
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return value.Null(), convErr("decode float32", err)
		}
		return value.Float32(float32(f)), nil

	case native.TypeDate:
		s, err := cellText(cell)
		if err != nil {
			return value.Null(), err
		}
		for _, layout := range dateParseLayouts {
			if t, perr := time.Parse(layout, s); perr == nil {
				return value.Ext(value.TagDateTime, value.String(t.Format(dateTimeLayout))), nil
			}
		}
		return value.Null(), convErrf("decode date", "unparsable date value %q", s)

	case native.TypeBLOB, native.TypeRaw, native.TypeLongRaw:
		// Always the binary path, never a textual decode.
		if cell.Binary != nil {
			return value.Bytes(cell.Binary), nil
		}
		return value.Null(), nil

	case native.TypeLong, native.TypeCLOB, native.TypeNCLOB:
		s, err := cellText(cell)
		if err != nil {
			return value.Null(), err
		}
		return value.String(s), nil

	default:
		if cell.HasText {
			return value.String(cell.Text), nil
		}
		return value.Null(), convErrf("decode", "unimplemented conversion for type %s", cell.Type)
	}
}

// decodeNumber applies the precision/scale widening rules for NUMBER columns:
// up to 9 significant digits fit an int32, up to 18 an int64, anything wider
// or genuinely fractional becomes a tagged decimal string. Fractional values
// are never widened to a float.
func decodeNumber(cell native.CellValue) (value.Value, error) {
	s, err := cellText(cell)
	if err != nil {
		return value.Null(), err
	}
	p, sc := cell.Type.Precision, cell.Type.Scale

	// NUMBER(*) sentinel: precision and scale are unconstrained, so the
	// stored value itself decides the width.
	if p == 0 && sc == -127 {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		if d.IsInteger() {
			// Drop a fractional ".000" tail so the digit count and the
			// integer parse both see the plain integer form.
			n := d.Truncate(0)
			return widenInteger(n.String(), int(n.NumDigits()), n)
		}
		return decimalValue(d), nil
	}

	if sc > 0 {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		return decimalValue(d), nil
	}

	switch {
	case p >= 1 && p <= 9:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		return value.Int32(int32(i)), nil
	case p >= 10 && p <= 18:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		return value.Int64(i), nil
	default:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		return decimalValue(d), nil
	}
}

func widenInteger(s string, digits int, d decimal.Decimal) (value.Value, error) {
	switch {
	case digits <= 9:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		return value.Int32(int32(i)), nil
	case digits <= 18:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Null(), convErr("decode number", err)
		}
		return value.Int64(i), nil
	default:
		return decimalValue(d), nil
	}
}

func decimalValue(d decimal.Decimal) value.Value {
	return value.Ext(value.TagDecimal, value.String(d.String()))
}

func cellText(cell native.CellValue) (string, error) {
	if !cell.HasText {
		return "", convErr("decode", errMissingString)
	}
	return cell.Text, nil
}
