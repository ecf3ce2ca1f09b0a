package artificial

import (
	"agencymanager/sources/features"
	"agencymanager/sources/metrics"
	"agencymanager/sources/repository"

	"go.uber.org/fx"
)

var Module = fx.Module("artificial",
	fx.Provide(
		NewAIConfig,
		NewGeminiClient,
		NewSDKCaller,
		NewRawHTTPCaller,
		NewQuotaGate,
		NewGenerator,
		func(x *repository.TenantsRepository) TenantStore { return x },
		func(x *repository.UsageRepository) UsageLedger { return x },
		func(x *features.FeatureManager) FeatureSource { return x },
		func(config *AIConfig, sdk *SDKCaller, raw *RawHTTPCaller, features FeatureSource, metrics *metrics.MetricsService) *FallbackChain {
			return NewFallbackChain(config, sdk, raw, features, metrics)
		},
	),
)
