package collector

import (
	"context"
	"time"

	"agencymanager/sources/metrics"
	"agencymanager/sources/repository"
	"agencymanager/sources/tracing"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type StatsCollector struct {
	log     *tracing.Logger
	metrics *metrics.MetricsService
	tenants *repository.TenantsRepository
	plans   *repository.PlansRepository
	usage   *repository.UsageRepository
}

func NewStatsCollector(
	lc fx.Lifecycle,
	log *tracing.Logger,
	metrics *metrics.MetricsService,
	tenants *repository.TenantsRepository,
	plans *repository.PlansRepository,
	usage *repository.UsageRepository,
) *StatsCollector {
	s := &StatsCollector{
		log:     log,
		metrics: metrics,
		tenants: tenants,
		plans:   plans,
		usage:   usage,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go s.start()
			return nil
		},
	})

	return s
}

func (s *StatsCollector) start() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	s.collectStats()

	for range ticker.C {
		s.collectStats()
	}
}

func (s *StatsCollector) collectStats() {
	if count, err := s.tenants.GetTotalTenantsCount(s.log); err == nil {
		s.metrics.SetTotalTenants(float64(count))
	} else {
		s.log.E("Failed to collect total tenants stats", tracing.InnerError, err)
	}

	if count, err := s.usage.GetTotalInvocations(s.log); err == nil {
		s.metrics.SetTotalInvocations(float64(count))
	} else {
		s.log.E("Failed to collect total invocations stats", tracing.InnerError, err)
	}

	if count, err := s.usage.GetMonthlyInvocations(s.log); err == nil {
		s.metrics.SetMonthlyInvocations(float64(count))
	} else {
		s.log.E("Failed to collect monthly invocations stats", tracing.InnerError, err)
	}

	if count, err := s.usage.GetActiveTenantsCount(s.log, time.Now().Add(-24*time.Hour)); err == nil {
		s.metrics.SetDAT(float64(count))
	} else {
		s.log.E("Failed to collect DAT stats", tracing.InnerError, err)
	}

	if count, err := s.usage.GetActiveTenantsCount(s.log, time.Now().Add(-30*24*time.Hour)); err == nil {
		s.metrics.SetMAT(float64(count))
	} else {
		s.log.E("Failed to collect MAT stats", tracing.InnerError, err)
	}

	s.collectMRR()
}

// collectMRR sums the latest price of every plan weighted by its active tenants.
func (s *StatsCollector) collectMRR() {
	planCounts, err := s.tenants.GetActivePlanCounts(s.log)
	if err != nil {
		s.log.E("Failed to collect plan counts for MRR", tracing.InnerError, err)
		return
	}

	plans, err := s.plans.GetAllLatest(s.log)
	if err != nil {
		s.log.E("Failed to collect plans for MRR", tracing.InnerError, err)
		return
	}

	mrr := decimal.Zero
	for _, plan := range plans {
		if count, ok := planCounts[plan.Key]; ok {
			mrr = mrr.Add(plan.MonthlyPrice.Mul(decimal.NewFromInt(count)))
		}
	}

	s.metrics.SetMRR(mrr.InexactFloat64())
}
