package collector

import "go.uber.org/fx"

var Module = fx.Module("collector",
	fx.Provide(
		NewStatsCollector,
	),
	fx.Invoke(func(s *StatsCollector) {}),
)
