package main

import (
	"context"
	"time"

	"agencymanager/sources/artificial"
	"agencymanager/sources/configuration"
	"agencymanager/sources/external"
	"agencymanager/sources/features"
	"agencymanager/sources/metrics"
	"agencymanager/sources/metrics/collector"
	"agencymanager/sources/network"
	"agencymanager/sources/persistence"
	"agencymanager/sources/platform"
	"agencymanager/sources/repository"
	"agencymanager/sources/tracing"

	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

func main() {
	platform.SetAppManifest(version, buildTime, time.Now())

	fx.New(
		tracing.Module,
		configuration.Module,
		external.Module,
		network.Module,
		persistence.Module,
		repository.Module,
		features.Module,
		metrics.Module,
		collector.Module,
		artificial.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Agency Manager started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Agency Manager stopped", "version", version, "build_time", buildTime)
					return nil
				},
			})
		}),
	).Run()
}
