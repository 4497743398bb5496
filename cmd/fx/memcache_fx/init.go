package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	"travelplanner/internal/config"
	"travelplanner/internal/planner"
	mem "travelplanner/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(lc fx.Lifecycle, cfg config.Config) mem.Store[planner.Session] {
	store := mem.NewTTLStore[planner.Session](cfg.Planner.SessionTTL)
	interval := max(cfg.Planner.SessionTTL/2, time.Second)
	lc.Append(fx.StartStopHook(
		func() { store.StartJanitor(interval) },
		store.StopJanitor,
	))
	return store
}
