package artificial

import (
	"time"

	"agencymanager/sources/features"
	"agencymanager/sources/metrics"
	"agencymanager/sources/tracing"
)

// CandidateInvoker performs one candidate attempt and classifies its outcome:
// nil error is success, *AuthorizationError is fatal for the whole chain,
// anything else is retryable.
type CandidateInvoker interface {
	Invoke(log *tracing.Logger, candidate Candidate, prompt string) (string, error)
}

type FeatureSource interface {
	IsEnabledDefault(featureName string, defaultValue bool) bool
}

type FallbackChain struct {
	config   *AIConfig
	invokers map[CandidateKind]CandidateInvoker
	features FeatureSource
	metrics  *metrics.MetricsService
}

func NewFallbackChain(config *AIConfig, sdk CandidateInvoker, raw CandidateInvoker, features FeatureSource, metrics *metrics.MetricsService) *FallbackChain {
	return &FallbackChain{
		config: config,
		invokers: map[CandidateKind]CandidateInvoker{
			CandidateKindSDK:     sdk,
			CandidateKindRawHTTP: raw,
		},
		features: features,
		metrics:  metrics,
	}
}

// Generate tries candidates strictly in order and returns the first usable
// text. Candidates are never raced concurrently: ordering is the product
// policy and sequential attempts keep provider spend bounded.
func (x *FallbackChain) Generate(log *tracing.Logger, prompt string, preferred string) (string, error) {
	rawEnabled := x.features.IsEnabledDefault(features.FeatureRawFallback, x.config.RawFallbackDefault)
	candidates := BuildCandidates(x.config, rawEnabled, preferred)

	var lastErr error

	for attempt, candidate := range candidates {
		clog := log.With(tracing.AiModel, candidate.ID, tracing.AiTransport, string(candidate.Kind), tracing.AiAttempt, attempt+1)

		invoker := x.invokers[candidate.Kind]
		start := time.Now()

		text, err := invoker.Invoke(clog, candidate, prompt)
		x.metrics.RecordAIRequestDuration(time.Since(start), candidate.ID)

		if err == nil {
			x.metrics.RecordCandidateAttempt(candidate.ID, string(candidate.Kind), "success")
			clog.I("ai completed", tracing.ExecutionTime, time.Since(start).String())
			return text, nil
		}

		if IsAuthorizationFailure(err) {
			x.metrics.RecordCandidateAttempt(candidate.ID, string(candidate.Kind), "authorization_failure")
			clog.E("Provider rejected credentials, aborting fallback chain", tracing.InnerError, err)
			return "", err
		}

		x.metrics.RecordCandidateAttempt(candidate.ID, string(candidate.Kind), "retryable_failure")
		clog.W("Candidate failed, trying next", tracing.InnerError, err)
		lastErr = err
	}

	return "", &ExhaustedError{Attempts: len(candidates), Last: lastErr}
}
