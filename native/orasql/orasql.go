package orasql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/sijms/go-ora/v2" // registers the "oracle" driver

	"github.com/dyndb/oracle/native"
)

// Client implements native.Client over database/sql.
type Client struct{}

// NewClient returns a Client ready to open sessions.
func NewClient() *Client { return &Client{} }

var _ native.Client = (*Client)(nil)

// Connect opens one physical session. connectString uses the
// "//host:port/service" form; the service segment may be absent.
func (*Client) Connect(username, password, connectString string) (native.Conn, error) {
	db, err := sql.Open("oracle", buildDSN(username, password, connectString))
	if err != nil {
		return nil, fmt.Errorf("failed to open oracle handle: %w", err)
	}

	// One physical session per native.Conn; pooling above the session is a
	// caller concern.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	conn, err := db.Conn(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to acquire oracle session: %w", err)
	}
	if err := conn.PingContext(context.Background()); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping oracle session: %w", err)
	}
	return &sqlConn{db: db, conn: conn}, nil
}

// buildDSN assembles the go-ora URL form from the bridge's connect string.
func buildDSN(username, password, connectString string) string {
	hostport := strings.TrimPrefix(connectString, "//")
	service := ""
	if i := strings.IndexByte(hostport, '/'); i >= 0 {
		service = hostport[i+1:]
		hostport = hostport[:i]
	}
	u := url.URL{
		Scheme: "oracle",
		User:   url.UserPassword(username, password),
		Host:   hostport,
	}
	if service != "" {
		u.Path = "/" + service
	}
	return u.String()
}

type sqlConn struct {
	db   *sql.DB
	conn *sql.Conn
	tx   *sql.Tx
}

var _ native.Conn = (*sqlConn)(nil)

// tx lazily opens the session transaction. database/sql has no session-level
// commit, so every statement runs inside an explicit transaction that Commit
// or Rollback then closes.
func (c *sqlConn) ensureTx() (*sql.Tx, error) {
	if c.tx == nil {
		tx, err := c.conn.BeginTx(context.Background(), nil)
		if err != nil {
			return nil, err
		}
		c.tx = tx
	}
	return c.tx, nil
}

func (c *sqlConn) Prepare(sqlText string) (native.Stmt, error) {
	return &sqlStmt{conn: c, text: sqlText}, nil
}

func (c *sqlConn) Commit() error {
	if c.tx == nil {
		return nil
	}
	tx := c.tx
	c.tx = nil
	return tx.Commit()
}

func (c *sqlConn) Rollback() error {
	if c.tx == nil {
		return nil
	}
	tx := c.tx
	c.tx = nil
	return tx.Rollback()
}

func (c *sqlConn) Ping() error {
	return c.conn.PingContext(context.Background())
}

func (c *sqlConn) Close() error {
	if c.tx != nil {
		_ = c.tx.Rollback()
		c.tx = nil
	}
	cerr := c.conn.Close()
	if derr := c.db.Close(); cerr == nil {
		cerr = derr
	}
	return cerr
}

// sqlStmt collects positional bind arguments and runs the statement when
// executed. Preparation is deferred to the database/sql layer.
type sqlStmt struct {
	conn *sqlConn
	text string
	args []any
}

var _ native.Stmt = (*sqlStmt)(nil)

func (s *sqlStmt) bindAt(pos int, v any) error {
	if pos < 1 {
		return fmt.Errorf("bind position %d out of range", pos)
	}
	for len(s.args) < pos {
		s.args = append(s.args, nil)
	}
	s.args[pos-1] = v
	return nil
}

func (s *sqlStmt) BindString(pos int, v string) error   { return s.bindAt(pos, v) }
func (s *sqlStmt) BindInt64(pos int, v int64) error     { return s.bindAt(pos, v) }
func (s *sqlStmt) BindFloat64(pos int, v float64) error { return s.bindAt(pos, v) }
func (s *sqlStmt) BindFloat32(pos int, v float32) error { return s.bindAt(pos, float64(v)) }
func (s *sqlStmt) BindBytes(pos int, v []byte) error    { return s.bindAt(pos, v) }
func (s *sqlStmt) BindNull(pos int) error               { return s.bindAt(pos, nil) }

func (s *sqlStmt) Exec() (int64, error) {
	tx, err := s.conn.ensureTx()
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(context.Background(), s.text, s.args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		// Driver could not report a count; the statement itself succeeded.
		return 0, nil
	}
	return affected, nil
}

func (s *sqlStmt) Query() (native.Rows, error) {
	tx, err := s.conn.ensureTx()
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryContext(context.Background(), s.text, s.args...)
	if err != nil {
		return nil, err
	}
	cols, err := columnInfos(rows)
	if err != nil {
		_ = rows.Close()
		return nil, err
	}
	return &sqlRows{rows: rows, cols: cols}, nil
}

func (s *sqlStmt) Close() error { return nil }

type sqlRows struct {
	rows *sql.Rows
	cols []native.ColumnInfo
}

var _ native.Rows = (*sqlRows)(nil)

func (r *sqlRows) Columns() []native.ColumnInfo { return r.cols }

func (r *sqlRows) Next() ([]native.CellValue, bool, error) {
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	raw := make([]any, len(r.cols))
	ptrs := make([]any, len(r.cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		return nil, false, err
	}
	cells := make([]native.CellValue, len(r.cols))
	for i, v := range raw {
		cells[i] = toCell(v, r.cols[i].Type)
	}
	return cells, true, nil
}

func (r *sqlRows) Close() error { return r.rows.Close() }

// toCell converts a scanned driver value into the raw cell representation.
// A value the adapter cannot represent degrades to an empty cell rather than
// failing the row (relaxed retrieval mode).
func toCell(v any, t native.ColumnType) native.CellValue {
	cell := native.CellValue{Type: t}
	if v == nil {
		cell.Null = true
		return cell
	}
	if t.IsBinary() {
		if b, ok := v.([]byte); ok {
			cell.Binary = append([]byte(nil), b...)
		}
		return cell
	}
	switch x := v.(type) {
	case []byte:
		cell.Text = string(x)
		cell.HasText = true
	case string:
		cell.Text = x
		cell.HasText = true
	case int64:
		cell.Text = fmt.Sprintf("%d", x)
		cell.HasText = true
	case float64:
		cell.Text = fmt.Sprintf("%v", x)
		cell.HasText = true
	case time.Time:
		cell.Text = x.Format("2006-01-02 15:04:05")
		cell.HasText = true
	case bool:
		if x {
			cell.Text = "1"
		} else {
			cell.Text = "0"
		}
		cell.HasText = true
	}
	return cell
}

// columnInfos maps database/sql column metadata onto the native schema.
func columnInfos(rows *sql.Rows) ([]native.ColumnInfo, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	infos := make([]native.ColumnInfo, len(types))
	for i, ct := range types {
		infos[i] = native.ColumnInfo{
			Name: ct.Name(),
			Type: mapColumnType(ct),
		}
	}
	return infos, nil
}

func mapColumnType(ct *sql.ColumnType) native.ColumnType {
	name := strings.ToUpper(ct.DatabaseTypeName())
	out := native.ColumnType{Code: native.TypeUnknown}

	switch {
	case name == "NUMBER":
		out.Code = native.TypeNumber
		if precision, scale, ok := ct.DecimalSize(); ok {
			out.Precision = int(precision)
			out.Scale = int(scale)
		} else {
			// Unconstrained NUMBER sentinel.
			out.Precision = 0
			out.Scale = -127
		}
	case name == "FLOAT":
		out.Code = native.TypeFloat
		if precision, _, ok := ct.DecimalSize(); ok {
			out.Precision = int(precision)
		} else {
			out.Precision = 126
		}
	case name == "BINARY_FLOAT":
		out.Code = native.TypeFloat
		out.Precision = 23
	case name == "BINARY_DOUBLE":
		out.Code = native.TypeFloat
		out.Precision = 53
	case name == "DATE":
		out.Code = native.TypeDate
	case strings.HasPrefix(name, "TIMESTAMP"):
		out.Code = native.TypeTimestamp
	case name == "VARCHAR2" || name == "NVARCHAR2" || name == "VARCHAR":
		out.Code = native.TypeVarchar
	case name == "CHAR" || name == "NCHAR":
		out.Code = native.TypeChar
	case name == "LONG RAW":
		out.Code = native.TypeLongRaw
	case name == "RAW":
		out.Code = native.TypeRaw
	case name == "LONG":
		out.Code = native.TypeLong
	case name == "BLOB":
		out.Code = native.TypeBLOB
	case name == "CLOB":
		out.Code = native.TypeCLOB
	case name == "NCLOB":
		out.Code = native.TypeNCLOB
	}
	return out
}
