package repository

import (
	"time"

	"agencymanager/sources/platform"
)

type TenantsConfig struct {
	PlanCacheEnabled bool
	PlanCacheTTL     time.Duration
}

func NewTenantsConfig() *TenantsConfig {
	return &TenantsConfig{
		PlanCacheEnabled: platform.GetAsBool("TENANTS_PLAN_CACHE_ENABLED", true),
		PlanCacheTTL:     platform.GetAsDuration("TENANTS_PLAN_CACHE_TTL", "60s"),
	}
}
