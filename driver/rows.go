package driver

import (
	"fmt"
	"strings"

	"github.com/dyndb/oracle/native"
	"github.com/dyndb/oracle/value"
)

// Column describes one column of a result set: the lower-cased name and the
// declared native type.
type Column struct {
	Name string
	Type native.ColumnType
}

// Meta exposes the column schema of a row to the host framework.
type Meta struct {
	columns []Column
}

// ColumnLen reports the number of columns.
func (m Meta) ColumnLen() int { return len(m.columns) }

// ColumnName returns the lower-cased name of column i.
func (m Meta) ColumnName(i int) string { return m.columns[i].Name }

// ColumnType returns the display form of column i's declared type.
func (m Meta) ColumnType(i int) string { return m.columns[i].Type.String() }

// Row is one fetched row. Its schema slice is shared with every other row of
// the same result set; cells decode lazily on Get.
type Row struct {
	columns []Column
	cells   []native.CellValue
}

// Meta returns the shared column schema.
func (r Row) Meta() Meta { return Meta{columns: r.columns} }

// Get decodes column i into a dynamic value.
func (r Row) Get(i int) (value.Value, error) {
	if i < 0 || i >= len(r.cells) {
		return value.Null(), convErrf("row get", "index %d out of bounds (%d columns)", i, len(r.cells))
	}
	return decodeColumn(r.cells[i])
}

// Rows is a materialized result set with a single shared schema.
type Rows struct {
	columns []Column
	rows    []Row
	pos     int
}

// Columns returns the shared schema. The slice must not be mutated.
func (r *Rows) Columns() []Column { return r.columns }

// Len reports the number of fetched rows.
func (r *Rows) Len() int { return len(r.rows) }

// Next returns the next row, advancing the cursor.
func (r *Rows) Next() (Row, bool) {
	if r.pos >= len(r.rows) {
		return Row{}, false
	}
	row := r.rows[r.pos]
	r.pos++
	return row, true
}

// Row returns row i without moving the cursor.
func (r *Rows) Row(i int) (Row, error) {
	if i < 0 || i >= len(r.rows) {
		return Row{}, fmt.Errorf("row index %d out of bounds (%d rows)", i, len(r.rows))
	}
	return r.rows[i], nil
}

// buildColumns captures the schema once per executed statement.
func buildColumns(infos []native.ColumnInfo) []Column {
	columns := make([]Column, len(infos))
	for i, info := range infos {
		columns[i] = Column{
			Name: strings.ToLower(info.Name),
			Type: info.Type,
		}
	}
	return columns
}

// assembleRows drains a native cursor into a Rows value. The schema is built
// exactly once and every Row references the same slice; no per-row schema
// allocation happens.
func assembleRows(nr native.Rows) (*Rows, error) {
	columns := buildColumns(nr.Columns())
	out := &Rows{columns: columns}
	for {
		cells, ok, err := nr.Next()
		if err != nil {
			return nil, stmtErr("fetch", err)
		}
		if !ok {
			return out, nil
		}
		out.rows = append(out.rows, Row{columns: columns, cells: cells})
	}
}
