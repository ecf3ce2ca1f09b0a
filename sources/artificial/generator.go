package artificial

import (
	"agencymanager/sources/metrics"
	"agencymanager/sources/tracing"
)

// Generator is the single entry point the rest of the platform uses to run a
// generation. It layers credential presence, quota admission and the fallback
// chain in that order and adds no retries of its own.
type Generator struct {
	config  *AIConfig
	gate    *QuotaGate
	chain   *FallbackChain
	metrics *metrics.MetricsService
}

func NewGenerator(config *AIConfig, gate *QuotaGate, chain *FallbackChain, metrics *metrics.MetricsService) *Generator {
	return &Generator{config: config, gate: gate, chain: chain, metrics: metrics}
}

// Invoke runs one metered generation for a tenant. The credential check comes
// first so a misconfigured deployment never touches the usage ledger, then the
// quota gate both checks and records usage, then the chain does the work.
func (x *Generator) Invoke(log *tracing.Logger, tenantID string, action string, prompt string, preferred string) (string, error) {
	ilog := log.With(tracing.TenantId, tenantID, tracing.UsageAction, action)

	if x.config.GeminiToken == "" {
		x.metrics.RecordInvocation(action, "unconfigured")
		ilog.E("Generation rejected, no provider credential configured")
		return "", ErrProviderUnconfigured
	}

	tokens := EstimatePromptTokens(ilog, prompt)
	x.metrics.RecordPromptTokens(action, tokens)
	ilog.D("Prompt sized", tracing.AiTokens, tokens)

	if err := x.gate.Admit(ilog, tenantID, action); err != nil {
		if IsQuotaExceeded(err) {
			x.metrics.RecordInvocation(action, "quota_exceeded")
		} else {
			x.metrics.RecordInvocation(action, "gate_error")
		}
		return "", err
	}

	text, err := x.chain.Generate(ilog, prompt, preferred)
	if err != nil {
		x.metrics.RecordInvocation(action, "failure")
		return "", err
	}

	x.metrics.RecordInvocation(action, "success")
	return text, nil
}
