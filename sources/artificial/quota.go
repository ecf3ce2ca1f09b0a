package artificial

import (
	"time"

	"agencymanager/sources/metrics"
	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"
)

const (
	TrialMonthlyLimit   = 50
	StarterMonthlyLimit = 50
	ProMonthlyLimit     = 200
)

// TenantStore is the read-only view into tenant management this core consumes.
type TenantStore interface {
	GetPlanSnapshot(log *tracing.Logger, tenantID string) (*platform.PlanSnapshot, error)
}

// UsageLedger is the append-only invocation accounting store.
type UsageLedger interface {
	CountSince(log *tracing.Logger, tenantID string, since time.Time) (int64, error)
	Append(log *tracing.Logger, tenantID string, at time.Time, action string) error
}

// MonthlyLimitFor maps a tenant's billing state to its monthly invocation
// limit. A nil result means unlimited. Pure and total: unknown inputs fall
// through to the starter limit.
func MonthlyLimitFor(plan platform.PlanCode, status platform.SubscriptionStatus) *int {
	if status == platform.StatusTrial {
		return intPtr(TrialMonthlyLimit)
	}

	switch plan {
	case platform.PlanPro:
		return intPtr(ProMonthlyLimit)
	case platform.PlanEnterprise:
		return nil
	default:
		return intPtr(StarterMonthlyLimit)
	}
}

func intPtr(v int) *int {
	return &v
}

type QuotaGate struct {
	tenants TenantStore
	ledger  UsageLedger
	metrics *metrics.MetricsService
}

func NewQuotaGate(tenants TenantStore, ledger UsageLedger, metrics *metrics.MetricsService) *QuotaGate {
	return &QuotaGate{tenants: tenants, ledger: ledger, metrics: metrics}
}

// Admit checks the tenant's monthly quota and records the invocation in the
// ledger. An empty tenant id admits unconditionally and is not metered.
//
// The check and the write are not atomic against concurrent calls from the
// same tenant: two requests near the boundary may both pass the count and both
// write. Callers needing hard enforcement must serialize externally.
func (x *QuotaGate) Admit(log *tracing.Logger, tenantID string, action string) error {
	if tenantID == "" {
		log.D("Quota gate bypassed for system invocation", tracing.UsageAction, action)
		return nil
	}

	snapshot, err := x.tenants.GetPlanSnapshot(log, tenantID)
	if err != nil {
		log.W("Failed to get plan snapshot, falling back to starter limits", tracing.TenantId, tenantID, tracing.InnerError, err)
		snapshot = nil
	}

	var plan platform.PlanCode
	var status platform.SubscriptionStatus
	if snapshot != nil {
		plan, status = snapshot.PlanCode, snapshot.SubscriptionStatus
	}

	now := time.Now()

	if limit := MonthlyLimitFor(plan, status); limit != nil {
		since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		used, err := x.ledger.CountSince(log, tenantID, since)
		if err != nil {
			log.E("Failed to count usage for quota check", tracing.TenantId, tenantID, tracing.InnerError, err)
			return err
		}

		if used >= int64(*limit) {
			x.metrics.RecordQuotaRejection(planLabel(plan, status))
			log.I("usage_limit_exceeded",
				tracing.TenantId, tenantID,
				tracing.PlanCode, plan,
				tracing.PlanStatus, status,
				tracing.QuotaLimit, *limit,
				tracing.QuotaUsed, used,
			)
			return &QuotaExceededError{TenantID: tenantID, Plan: plan, Limit: *limit, Used: used}
		}

		log.D("usage_check_success",
			tracing.TenantId, tenantID,
			tracing.QuotaLimit, *limit,
			tracing.QuotaUsed, used,
		)
	}

	return x.ledger.Append(log, tenantID, now, action)
}

func planLabel(plan platform.PlanCode, status platform.SubscriptionStatus) string {
	if status == platform.StatusTrial {
		return "trial"
	}
	if plan == "" {
		return platform.PlanStarter
	}
	return plan
}
