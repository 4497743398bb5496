package metrics_fx

import (
	"go.uber.org/fx"

	"travelplanner/pkg/metrics"
)

var Module = fx.Provide(metrics.New)
