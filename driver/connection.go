package driver

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dyndb/oracle/native"
	"github.com/dyndb/oracle/observability"
	"github.com/dyndb/oracle/value"
)

// Reserved statement texts intercepted before they reach the native execute
// path. Matched exactly and case-sensitively.
const (
	stmtBegin    = "begin"
	stmtCommit   = "commit"
	stmtRollback = "rollback"
)

// ExecResult reports the outcome of a statement execution. Oracle has no
// session last-insert-id, so LastInsertID is always the null value.
type ExecResult struct {
	RowsAffected int64
	LastInsertID value.Value
}

// Connection wraps one physical native session and tracks explicit
// transaction boundaries. All native calls are dispatched onto the blocking
// worker pool; the calling goroutine only awaits.
//
// A *Connection may be shared across goroutines. The transaction flag is
// guarded by its own mutex, which is never held across a native call:
// two concurrent autocommit executions can therefore both observe the
// autocommit state and both commit. Callers that need stricter ordering must
// serialize their own statements.
type Connection struct {
	conn     native.Conn
	pool     *workerPool
	log      *zap.Logger
	observer observability.Observer

	// id identifies this session in logs and operation reports.
	id string

	mu   sync.Mutex
	inTx bool
}

// Establish opens a session described by opts through the given native
// client. The blocking connect runs on the worker pool; the caller only
// awaits ctx.
func Establish(ctx context.Context, client native.Client, opts ConnectOptions, options ...Option) (*Connection, error) {
	if err := opts.Validate(); err != nil {
		return nil, connErr("establish", err)
	}
	cfg := newConfig(options)
	pool := newWorkerPool(cfg.pool.Workers)

	conn, err := dispatch(ctx, pool, "connect", func() (native.Conn, error) {
		c, cerr := client.Connect(opts.Username, opts.Password, opts.ConnectString)
		if cerr != nil {
			return nil, connErr("connect", cerr)
		}
		return c, nil
	})
	if err != nil {
		_ = pool.close(context.Background())
		return nil, err
	}

	c := &Connection{
		conn:     conn,
		pool:     pool,
		log:      cfg.log,
		observer: cfg.observer,
		id:       uuid.NewString(),
	}
	c.log.Info("established oracle session",
		zap.String("conn_id", c.id),
		zap.String("connect_string", opts.ConnectString),
		zap.String("username", opts.Username),
	)
	return c, nil
}

// Query translates placeholders, binds params and executes sql, returning
// the materialized result set. The column schema is built once and shared by
// every returned row.
func (c *Connection) Query(ctx context.Context, sql string, params []value.Value) (*Rows, error) {
	start := time.Now()
	translated := TranslatePlaceholders(sql)

	rows, err := dispatch(ctx, c.pool, "query", func() (*Rows, error) {
		return c.runQuery(translated, params)
	})

	var fetched int64
	if rows != nil {
		fetched = int64(rows.Len())
	}
	c.observe("query", time.Since(start), err, fetched)
	return rows, err
}

// runQuery runs on a pool worker.
func (c *Connection) runQuery(sql string, params []value.Value) (*Rows, error) {
	stmt, err := c.conn.Prepare(sql)
	if err != nil {
		return nil, stmtErr("prepare", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range params {
		if err := bindValue(stmt, p, i); err != nil {
			return nil, err
		}
	}
	nr, err := stmt.Query()
	if err != nil {
		return nil, stmtErr("query", err)
	}
	defer func() { _ = nr.Close() }()

	return assembleRows(nr)
}

// Exec executes sql. The reserved texts "begin", "commit" and "rollback"
// drive the transaction state machine instead of reaching the native execute
// path: "begin" only sets the transaction flag (no native call), "commit"
// and "rollback" perform the native call and clear the flag on success. Any
// other statement is translated, bound and executed, followed by a native
// commit when the connection is in autocommit state.
func (c *Connection) Exec(ctx context.Context, sql string, params []value.Value) (ExecResult, error) {
	start := time.Now()
	var (
		res ExecResult
		err error
	)

	switch sql {
	case stmtBegin:
		c.mu.Lock()
		c.inTx = true
		c.mu.Unlock()
		res = ExecResult{LastInsertID: value.Null()}

	case stmtCommit, stmtRollback:
		res, err = dispatch(ctx, c.pool, sql, func() (ExecResult, error) {
			var nerr error
			if sql == stmtCommit {
				nerr = c.conn.Commit()
			} else {
				nerr = c.conn.Rollback()
			}
			if nerr != nil {
				return ExecResult{}, stmtErr(sql, nerr)
			}
			return ExecResult{LastInsertID: value.Null()}, nil
		})
		if err == nil {
			c.mu.Lock()
			c.inTx = false
			c.mu.Unlock()
		}

	default:
		res, err = dispatch(ctx, c.pool, "exec", func() (ExecResult, error) {
			return c.runExec(sql, params)
		})
	}

	c.observe("exec", time.Since(start), err, res.RowsAffected)
	return res, err
}

// runExec runs on a pool worker.
func (c *Connection) runExec(sql string, params []value.Value) (ExecResult, error) {
	if strings.Contains(sql, "?") {
		sql = TranslatePlaceholders(sql)
	}
	stmt, err := c.conn.Prepare(sql)
	if err != nil {
		return ExecResult{}, stmtErr("prepare", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range params {
		if err := bindValue(stmt, p, i); err != nil {
			return ExecResult{}, err
		}
	}
	affected, err := stmt.Exec()
	if err != nil {
		return ExecResult{}, stmtErr("exec", err)
	}

	// The flag is read under its own lock, released before the commit call.
	// Two concurrent autocommit executions can both pass this check and both
	// commit; see the type comment.
	c.mu.Lock()
	autocommit := !c.inTx
	c.mu.Unlock()

	if autocommit {
		if cerr := c.conn.Commit(); cerr != nil {
			return ExecResult{}, stmtErr("commit", cerr)
		}
	}
	return ExecResult{RowsAffected: affected, LastInsertID: value.Null()}, nil
}

// Ping probes the session. No state changes.
func (c *Connection) Ping(ctx context.Context) error {
	start := time.Now()
	_, err := dispatch(ctx, c.pool, "ping", func() (struct{}, error) {
		if perr := c.conn.Ping(); perr != nil {
			return struct{}{}, connErr("ping", perr)
		}
		return struct{}{}, nil
	})
	c.observe("ping", time.Since(start), err, 0)
	return err
}

// Close commits pending work on a best-effort basis and releases the native
// session. The commit failure is swallowed so a connection disposed mid-
// transaction never leaks an open transaction; a failure of the native close
// itself is propagated. The worker pool shuts down afterwards.
func (c *Connection) Close(ctx context.Context) error {
	start := time.Now()
	_, err := dispatch(ctx, c.pool, "close", func() (struct{}, error) {
		if cerr := c.conn.Commit(); cerr != nil {
			c.log.Debug("best-effort commit before close failed",
				zap.String("conn_id", c.id),
				zap.Error(cerr),
			)
		}
		if cerr := c.conn.Close(); cerr != nil {
			return struct{}{}, connErr("close", cerr)
		}
		return struct{}{}, nil
	})

	poolErr := c.pool.close(ctx)
	c.observe("close", time.Since(start), err, 0)
	if err != nil {
		return err
	}
	if poolErr != nil {
		return poolErr
	}
	c.log.Info("closed oracle session", zap.String("conn_id", c.id))
	return nil
}

// ID returns the session identifier used in logs and operation reports.
func (c *Connection) ID() string { return c.id }

// InTransaction reports whether an explicit transaction is open.
func (c *Connection) InTransaction() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inTx
}
