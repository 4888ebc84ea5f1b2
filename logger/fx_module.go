package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule provides the *zap.Logger and flushes buffered entries on shutdown.
//
// Dependencies required by this module:
//   - A logger.Config instance must be available in the container.
var FXModule = fx.Module("logger",
	fx.Provide(NewLogger),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the logger when the application stops so no
// buffered entries are lost. Automatically invoked by FXModule.
func RegisterLoggerLifecycle(lc fx.Lifecycle, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync can fail on stderr on some platforms; that is not a
			// shutdown error.
			_ = log.Sync()
			return nil
		},
	})
}
