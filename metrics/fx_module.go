package metrics

import (
	"go.uber.org/fx"

	"github.com/dyndb/oracle/observability"
)

// FXModule provides *Metrics and exposes it as observability.Observer so the
// driver module picks it up automatically.
//
// Dependencies required by this module:
//   - A metrics.Config instance must be available in the container.
var FXModule = fx.Module("metrics",
	fx.Provide(
		New,
		func(m *Metrics) observability.Observer { return m },
	),
)
