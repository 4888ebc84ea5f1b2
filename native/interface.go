package native

// Client opens physical sessions against the database. Implementations block.
type Client interface {
	// Connect establishes one physical session. connectString is the
	// Oracle-style "//host:port/service" form.
	Connect(username, password, connectString string) (Conn, error)
}

// Conn is one physical session. Commit and Rollback act on the whole
// session's pending work.
type Conn interface {
	Prepare(sql string) (Stmt, error)
	Commit() error
	Rollback() error
	Ping() error
	Close() error
}

// Stmt is a prepared statement. Bind positions are 1-based, matching the
// database's positional bind syntax.
type Stmt interface {
	BindString(pos int, v string) error
	BindInt64(pos int, v int64) error
	BindFloat64(pos int, v float64) error
	BindFloat32(pos int, v float32) error
	BindBytes(pos int, v []byte) error
	BindNull(pos int) error

	// Exec runs the statement and reports the number of affected rows.
	Exec() (int64, error)
	// Query runs the statement and returns its result cursor.
	Query() (Rows, error)
	Close() error
}

// Rows is a forward-only result cursor.
type Rows interface {
	// Columns reports the result schema. The returned slice is valid for the
	// lifetime of the cursor and must not be mutated.
	Columns() []ColumnInfo
	// Next fetches the next row. ok is false when the cursor is exhausted.
	Next() (row []CellValue, ok bool, err error)
	Close() error
}
