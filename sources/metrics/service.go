package metrics

import (
	"time"

	"agencymanager/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	invocationsHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agencymanager_ai_invocations_total",
			Help: "Total number of AI invocations handled by the generation facade",
		},
		[]string{"action", "status"},
	)

	candidateAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agencymanager_ai_candidate_attempts_total",
			Help: "Total number of fallback chain candidate attempts",
		},
		[]string{"model", "transport", "outcome"},
	)

	quotaRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agencymanager_quota_rejections_total",
			Help: "Total number of invocations rejected by the quota gate",
		},
		[]string{"plan"},
	)

	aiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agencymanager_ai_request_duration_seconds",
			Help:    "Duration of AI provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	promptTokensEstimated = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agencymanager_prompt_tokens_estimated",
			Help:    "Estimated prompt size in tokens per calling feature",
			Buckets: []float64{64, 256, 1024, 4096, 16384, 65536},
		},
		[]string{"action"},
	)

	statsTotalTenants = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "agencymanager_stats_total_tenants",
			Help: "Total number of tenants",
		},
	)

	statsTotalInvocations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "agencymanager_stats_total_invocations",
			Help: "Total number of AI invocations recorded in the ledger",
		},
	)

	statsMonthlyInvocations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "agencymanager_stats_monthly_invocations",
			Help: "AI invocations recorded in the ledger this calendar month",
		},
	)

	statsDAT = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "agencymanager_stats_dat",
			Help: "Daily Active Tenants (last 24h)",
		},
	)

	statsMAT = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "agencymanager_stats_mat",
			Help: "Monthly Active Tenants (last 30d)",
		},
	)

	statsMRR = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "agencymanager_stats_mrr",
			Help: "Monthly recurring revenue from active tenant plans",
		},
	)
)

func init() {
	prometheus.MustRegister(invocationsHandled)
	prometheus.MustRegister(candidateAttempts)
	prometheus.MustRegister(quotaRejections)
	prometheus.MustRegister(aiRequestDuration)
	prometheus.MustRegister(promptTokensEstimated)
	prometheus.MustRegister(statsTotalTenants)
	prometheus.MustRegister(statsTotalInvocations)
	prometheus.MustRegister(statsMonthlyInvocations)
	prometheus.MustRegister(statsDAT)
	prometheus.MustRegister(statsMAT)
	prometheus.MustRegister(statsMRR)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{
		log: log,
	}
}

func (s *MetricsService) RecordInvocation(action string, status string) {
	invocationsHandled.WithLabelValues(action, status).Inc()
}

func (s *MetricsService) RecordCandidateAttempt(model string, transport string, outcome string) {
	candidateAttempts.WithLabelValues(model, transport, outcome).Inc()
}

func (s *MetricsService) RecordQuotaRejection(plan string) {
	quotaRejections.WithLabelValues(plan).Inc()
}

func (s *MetricsService) RecordAIRequestDuration(duration time.Duration, model string) {
	aiRequestDuration.WithLabelValues(model).Observe(duration.Seconds())
}

func (s *MetricsService) RecordPromptTokens(action string, tokens int) {
	promptTokensEstimated.WithLabelValues(action).Observe(float64(tokens))
}

func (s *MetricsService) SetTotalTenants(count float64) {
	statsTotalTenants.Set(count)
}

func (s *MetricsService) SetTotalInvocations(count float64) {
	statsTotalInvocations.Set(count)
}

func (s *MetricsService) SetMonthlyInvocations(count float64) {
	statsMonthlyInvocations.Set(count)
}

func (s *MetricsService) SetDAT(count float64) {
	statsDAT.Set(count)
}

func (s *MetricsService) SetMAT(count float64) {
	statsMAT.Set(count)
}

func (s *MetricsService) SetMRR(amount float64) {
	statsMRR.Set(amount)
}
