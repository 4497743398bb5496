package planner_fx

import (
	"go.uber.org/fx"

	"travelplanner/internal/services"
)

var Module = fx.Provide(services.NewPlannerService)
