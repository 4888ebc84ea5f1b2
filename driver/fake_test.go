package driver

import (
	"errors"
	"sync"

	"github.com/dyndb/oracle/native"
)

// The fakes below implement the native client surface with enough
// bookkeeping to assert on bind calls, executed SQL and transaction
// outcomes.

type bindCall struct {
	pos  int
	kind string
	val  interface{}
}

type fakeStmt struct {
	conn  *fakeConn
	sql   string
	binds []bindCall

	bindErr  error
	execErr  error
	queryErr error
	affected int64
	rows     *fakeRows
}

var _ native.Stmt = (*fakeStmt)(nil)

func (s *fakeStmt) record(pos int, kind string, val interface{}) error {
	if s.bindErr != nil {
		return s.bindErr
	}
	s.binds = append(s.binds, bindCall{pos: pos, kind: kind, val: val})
	return nil
}

func (s *fakeStmt) BindString(pos int, v string) error   { return s.record(pos, "string", v) }
func (s *fakeStmt) BindInt64(pos int, v int64) error     { return s.record(pos, "int64", v) }
func (s *fakeStmt) BindFloat64(pos int, v float64) error { return s.record(pos, "float64", v) }
func (s *fakeStmt) BindFloat32(pos int, v float32) error { return s.record(pos, "float32", v) }
func (s *fakeStmt) BindBytes(pos int, v []byte) error    { return s.record(pos, "bytes", v) }
func (s *fakeStmt) BindNull(pos int) error               { return s.record(pos, "null", nil) }

func (s *fakeStmt) Exec() (int64, error) {
	if s.execErr != nil {
		return 0, s.execErr
	}
	if s.conn != nil {
		s.conn.pending = append(s.conn.pending, s.sql)
	}
	return s.affected, nil
}

func (s *fakeStmt) Query() (native.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if s.rows != nil {
		return s.rows, nil
	}
	return &fakeRows{}, nil
}

func (s *fakeStmt) Close() error { return nil }

type fakeRows struct {
	cols   []native.ColumnInfo
	data   [][]native.CellValue
	pos    int
	closed bool
}

var _ native.Rows = (*fakeRows)(nil)

func (r *fakeRows) Columns() []native.ColumnInfo { return r.cols }

func (r *fakeRows) Next() ([]native.CellValue, bool, error) {
	if r.pos >= len(r.data) {
		return nil, false, nil
	}
	row := r.data[r.pos]
	r.pos++
	return row, true, nil
}

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

// fakeConn tracks transaction outcomes: executed statements accumulate in
// pending, Commit moves them to committed, Rollback drops them.
type fakeConn struct {
	mu        sync.Mutex
	prepared  []string
	pending   []string
	committed []string
	commits   int
	rollbacks int
	pings     int
	closed    bool

	prepareErr  error
	commitErr   error
	rollbackErr error
	pingErr     error
	closeErr    error

	nextStmt *fakeStmt
}

var _ native.Conn = (*fakeConn)(nil)

func (c *fakeConn) Prepare(sql string) (native.Stmt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prepareErr != nil {
		return nil, c.prepareErr
	}
	c.prepared = append(c.prepared, sql)
	stmt := c.nextStmt
	if stmt == nil {
		stmt = &fakeStmt{}
	}
	stmt.conn = c
	stmt.sql = sql
	return stmt, nil
}

func (c *fakeConn) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.commitErr != nil {
		return c.commitErr
	}
	c.commits++
	c.committed = append(c.committed, c.pending...)
	c.pending = nil
	return nil
}

func (c *fakeConn) Rollback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rollbackErr != nil {
		return c.rollbackErr
	}
	c.rollbacks++
	c.pending = nil
	return nil
}

func (c *fakeConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pingErr != nil {
		return c.pingErr
	}
	c.pings++
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closeErr != nil {
		return c.closeErr
	}
	c.closed = true
	return nil
}

func (c *fakeConn) committedStatements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.committed))
	copy(out, c.committed)
	return out
}

func (c *fakeConn) pendingStatements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.pending))
	copy(out, c.pending)
	return out
}

type fakeClient struct {
	conn       *fakeConn
	connectErr error

	lastUser    string
	lastConnect string
}

var _ native.Client = (*fakeClient)(nil)

func (f *fakeClient) Connect(username, password, connectString string) (native.Conn, error) {
	if f.connectErr != nil {
		return nil, f.connectErr
	}
	f.lastUser = username
	f.lastConnect = connectString
	if f.conn == nil {
		f.conn = &fakeConn{}
	}
	return f.conn, nil
}

var errNative = errors.New("ORA-00942: table or view does not exist")
