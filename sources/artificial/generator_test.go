package artificial

import (
	"errors"
	"testing"

	"agencymanager/sources/metrics"
	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"
)

func newTestGenerator(config *AIConfig, tenants *fakeTenantStore, ledger *fakeLedger, sdk CandidateInvoker) *Generator {
	log := tracing.NewConsoleLogger()
	ms := metrics.NewMetricsService(log)
	gate := NewQuotaGate(tenants, ledger, ms)
	chain := NewFallbackChain(config, sdk, &scriptedInvoker{}, &staticFeatures{rawEnabled: false}, ms)
	return NewGenerator(config, gate, chain, ms)
}

func TestGeneratorHappyPath(t *testing.T) {
	tenants := &fakeTenantStore{snapshot: snapshotOf("", platform.StatusTrial)}
	ledger := &fakeLedger{count: 0}
	sdk := &scriptedInvoker{results: []invokeResult{{text: "drafted proposal"}}}
	generator := newTestGenerator(testConfig(), tenants, ledger, sdk)

	text, err := generator.Invoke(tracing.NewConsoleLogger(), "a4b2f7c0-1111-2222-3333-444455556666", "proposal", "write a proposal", "")
	if err != nil {
		t.Fatalf("Invoke() = %v, want nil", err)
	}
	if text != "drafted proposal" {
		t.Errorf("text = %q, want %q", text, "drafted proposal")
	}
	if len(ledger.appended) != 1 || ledger.appended[0] != "proposal" {
		t.Errorf("ledger writes = %v, want [proposal]", ledger.appended)
	}
}

func TestGeneratorTrialQuotaExhausted(t *testing.T) {
	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanPro, platform.StatusTrial)}
	ledger := &fakeLedger{count: 50}
	sdk := &scriptedInvoker{results: []invokeResult{{text: "never"}}}
	generator := newTestGenerator(testConfig(), tenants, ledger, sdk)

	_, err := generator.Invoke(tracing.NewConsoleLogger(), "a4b2f7c0-1111-2222-3333-444455556666", "proposal", "write a proposal", "")
	if !IsQuotaExceeded(err) {
		t.Fatalf("Invoke() = %v, want quota exceeded", err)
	}
	if sdk.calls != 0 {
		t.Errorf("sdk calls after rejection = %d, want 0", sdk.calls)
	}
	if len(ledger.appended) != 0 {
		t.Errorf("ledger writes after rejection = %d, want 0", len(ledger.appended))
	}
}

func TestGeneratorUnconfiguredProviderFailsFirst(t *testing.T) {
	config := testConfig()
	config.GeminiToken = ""

	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanPro, platform.StatusActive)}
	ledger := &fakeLedger{}
	generator := newTestGenerator(config, tenants, ledger, &scriptedInvoker{})

	_, err := generator.Invoke(tracing.NewConsoleLogger(), "a4b2f7c0-1111-2222-3333-444455556666", "proposal", "write a proposal", "")
	if !errors.Is(err, ErrProviderUnconfigured) {
		t.Fatalf("Invoke() = %v, want %v", err, ErrProviderUnconfigured)
	}
	if tenants.calls != 0 || ledger.countCalls != 0 || len(ledger.appended) != 0 {
		t.Errorf("stores touched before credential check: tenants=%d counts=%d writes=%d", tenants.calls, ledger.countCalls, len(ledger.appended))
	}
}

func TestGeneratorChainFailurePropagates(t *testing.T) {
	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanEnterprise, platform.StatusActive)}
	ledger := &fakeLedger{}
	sdk := &scriptedInvoker{results: []invokeResult{{err: errors.New("provider down")}}}
	generator := newTestGenerator(testConfig(), tenants, ledger, sdk)

	_, err := generator.Invoke(tracing.NewConsoleLogger(), "a4b2f7c0-1111-2222-3333-444455556666", "report", "summarize", "")
	if !IsExhausted(err) {
		t.Fatalf("Invoke() = %v, want exhausted", err)
	}
	// Usage is recorded at admission, before the chain runs.
	if len(ledger.appended) != 1 {
		t.Errorf("ledger writes = %d, want 1", len(ledger.appended))
	}
}

func TestGeneratorSystemInvocationBypassesQuota(t *testing.T) {
	tenants := &fakeTenantStore{}
	ledger := &fakeLedger{}
	sdk := &scriptedInvoker{results: []invokeResult{{text: "system result"}}}
	generator := newTestGenerator(testConfig(), tenants, ledger, sdk)

	text, err := generator.Invoke(tracing.NewConsoleLogger(), "", "maintenance", "internal prompt", "")
	if err != nil {
		t.Fatalf("Invoke() = %v, want nil", err)
	}
	if text != "system result" {
		t.Errorf("text = %q, want %q", text, "system result")
	}
	if tenants.calls != 0 || len(ledger.appended) != 0 {
		t.Errorf("stores touched for system invocation: tenants=%d writes=%d", tenants.calls, len(ledger.appended))
	}
}
