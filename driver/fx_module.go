package driver

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dyndb/oracle/native"
	"github.com/dyndb/oracle/native/orasql"
	"github.com/dyndb/oracle/observability"
)

// FXModule provides a *Connection via dependency injection and ties its
// shutdown to the fx lifecycle.
//
// Usage:
//
//	app := fx.New(
//	    driver.FXModule,
//	    fx.Provide(func() (driver.ConnectOptions, error) {
//	        return driver.ParseURL("oracle://scott:tiger@db:1521/XEPDB1")
//	    }),
//	    fx.Invoke(func(conn *driver.Connection) {
//	        // Use conn...
//	    }),
//	)
//
// Dependencies required by this module:
//   - A driver.ConnectOptions instance must be available in the container.
//   - native.Client, *zap.Logger and observability.Observer are optional;
//     the orasql client and a no-op logger are used when absent.
var FXModule = fx.Module("oracle",
	fx.Provide(NewConnectionWithDI),
	fx.Invoke(RegisterConnectionLifecycle),
)

// ConnectionParams groups the dependencies needed to establish a connection.
type ConnectionParams struct {
	fx.In

	Options  ConnectOptions
	Client   native.Client          `optional:"true"`
	Logger   *zap.Logger            `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewConnectionWithDI establishes the connection from injected dependencies.
// The native client defaults to the orasql implementation.
func NewConnectionWithDI(params ConnectionParams) (*Connection, error) {
	client := params.Client
	if client == nil {
		client = orasql.NewClient()
	}
	var options []Option
	if params.Logger != nil {
		options = append(options, WithLogger(params.Logger))
	}
	if params.Observer != nil {
		options = append(options, WithObserver(params.Observer))
	}
	return Establish(context.Background(), client, params.Options, options...)
}

// RegisterConnectionLifecycle closes the connection when the application
// stops. Automatically invoked by FXModule.
func RegisterConnectionLifecycle(lc fx.Lifecycle, conn *Connection) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return conn.Close(ctx)
		},
	})
}
