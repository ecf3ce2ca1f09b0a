package artificial

import (
	"errors"
	"testing"
	"time"

	"agencymanager/sources/metrics"
	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"
)

func TestMonthlyLimitFor(t *testing.T) {
	limit := func(v int) *int { return &v }

	tests := []struct {
		name     string
		plan     platform.PlanCode
		status   platform.SubscriptionStatus
		expected *int
	}{
		{"trial overrides starter", platform.PlanStarter, platform.StatusTrial, limit(50)},
		{"trial overrides pro", platform.PlanPro, platform.StatusTrial, limit(50)},
		{"trial overrides enterprise", platform.PlanEnterprise, platform.StatusTrial, limit(50)},
		{"trial without plan", "", platform.StatusTrial, limit(50)},
		{"active pro", platform.PlanPro, platform.StatusActive, limit(200)},
		{"active enterprise is unlimited", platform.PlanEnterprise, platform.StatusActive, nil},
		{"active starter", platform.PlanStarter, platform.StatusActive, limit(50)},
		{"suspended pro", platform.PlanPro, platform.StatusSuspended, limit(200)},
		{"cancelled enterprise stays unlimited", platform.PlanEnterprise, platform.StatusCancelled, nil},
		{"unknown plan falls back to starter", "legacy-gold", platform.StatusActive, limit(50)},
		{"empty everything falls back to starter", "", "", limit(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyLimitFor(tt.plan, tt.status)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("MonthlyLimitFor(%q, %q) = %d, want unlimited", tt.plan, tt.status, *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("MonthlyLimitFor(%q, %q) = unlimited, want %d", tt.plan, tt.status, *tt.expected)
			}
			if *got != *tt.expected {
				t.Errorf("MonthlyLimitFor(%q, %q) = %d, want %d", tt.plan, tt.status, *got, *tt.expected)
			}
		})
	}
}

type fakeTenantStore struct {
	snapshot *platform.PlanSnapshot
	err      error
	calls    int
}

func (f *fakeTenantStore) GetPlanSnapshot(log *tracing.Logger, tenantID string) (*platform.PlanSnapshot, error) {
	f.calls++
	return f.snapshot, f.err
}

type fakeLedger struct {
	count      int64
	countErr   error
	appendErr  error
	countCalls int
	appended   []string
}

func (f *fakeLedger) CountSince(log *tracing.Logger, tenantID string, since time.Time) (int64, error) {
	f.countCalls++
	return f.count, f.countErr
}

func (f *fakeLedger) Append(log *tracing.Logger, tenantID string, at time.Time, action string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, action)
	return nil
}

func snapshotOf(plan platform.PlanCode, status platform.SubscriptionStatus) *platform.PlanSnapshot {
	return &platform.PlanSnapshot{TenantID: "a4b2f7c0-1111-2222-3333-444455556666", PlanCode: plan, SubscriptionStatus: status}
}

func TestQuotaGateAdmitUnderLimit(t *testing.T) {
	log := tracing.NewConsoleLogger()
	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanPro, platform.StatusActive)}
	ledger := &fakeLedger{count: 199}
	gate := NewQuotaGate(tenants, ledger, metrics.NewMetricsService(log))

	if err := gate.Admit(log, "a4b2f7c0-1111-2222-3333-444455556666", "proposal"); err != nil {
		t.Fatalf("Admit() = %v, want nil", err)
	}
	if len(ledger.appended) != 1 {
		t.Errorf("ledger writes = %d, want 1", len(ledger.appended))
	}
}

func TestQuotaGateRejectsAtLimit(t *testing.T) {
	log := tracing.NewConsoleLogger()
	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanPro, platform.StatusActive)}
	ledger := &fakeLedger{count: 200}
	gate := NewQuotaGate(tenants, ledger, metrics.NewMetricsService(log))

	err := gate.Admit(log, "a4b2f7c0-1111-2222-3333-444455556666", "proposal")
	if !IsQuotaExceeded(err) {
		t.Fatalf("Admit() = %v, want quota exceeded", err)
	}
	if len(ledger.appended) != 0 {
		t.Errorf("ledger writes after rejection = %d, want 0", len(ledger.appended))
	}

	var quotaErr *QuotaExceededError
	if !errors.As(err, &quotaErr) {
		t.Fatal("error is not *QuotaExceededError")
	}
	if quotaErr.Limit != 200 || quotaErr.Used != 200 {
		t.Errorf("quota error limit/used = %d/%d, want 200/200", quotaErr.Limit, quotaErr.Used)
	}
}

func TestQuotaGateUnlimitedSkipsCounting(t *testing.T) {
	log := tracing.NewConsoleLogger()
	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanEnterprise, platform.StatusActive)}
	ledger := &fakeLedger{count: 10000}
	gate := NewQuotaGate(tenants, ledger, metrics.NewMetricsService(log))

	if err := gate.Admit(log, "a4b2f7c0-1111-2222-3333-444455556666", "report"); err != nil {
		t.Fatalf("Admit() = %v, want nil", err)
	}
	if ledger.countCalls != 0 {
		t.Errorf("count calls for unlimited plan = %d, want 0", ledger.countCalls)
	}
	if len(ledger.appended) != 1 {
		t.Errorf("ledger writes = %d, want 1", len(ledger.appended))
	}
}

func TestQuotaGateBypassesEmptyTenant(t *testing.T) {
	log := tracing.NewConsoleLogger()
	tenants := &fakeTenantStore{}
	ledger := &fakeLedger{}
	gate := NewQuotaGate(tenants, ledger, metrics.NewMetricsService(log))

	if err := gate.Admit(log, "", "maintenance"); err != nil {
		t.Fatalf("Admit() = %v, want nil", err)
	}
	if tenants.calls != 0 {
		t.Errorf("tenant lookups for system invocation = %d, want 0", tenants.calls)
	}
	if ledger.countCalls != 0 || len(ledger.appended) != 0 {
		t.Errorf("ledger touched for system invocation: counts=%d writes=%d", ledger.countCalls, len(ledger.appended))
	}
}

func TestQuotaGateSnapshotErrorFallsBackToStarter(t *testing.T) {
	log := tracing.NewConsoleLogger()
	tenants := &fakeTenantStore{err: errors.New("db down")}
	ledger := &fakeLedger{count: 50}
	gate := NewQuotaGate(tenants, ledger, metrics.NewMetricsService(log))

	err := gate.Admit(log, "a4b2f7c0-1111-2222-3333-444455556666", "proposal")
	if !IsQuotaExceeded(err) {
		t.Fatalf("Admit() = %v, want quota exceeded under starter fallback", err)
	}
}

func TestQuotaGateCountErrorPropagates(t *testing.T) {
	log := tracing.NewConsoleLogger()
	tenants := &fakeTenantStore{snapshot: snapshotOf(platform.PlanStarter, platform.StatusActive)}
	countErr := errors.New("ledger unavailable")
	ledger := &fakeLedger{countErr: countErr}
	gate := NewQuotaGate(tenants, ledger, metrics.NewMetricsService(log))

	err := gate.Admit(log, "a4b2f7c0-1111-2222-3333-444455556666", "proposal")
	if !errors.Is(err, countErr) {
		t.Fatalf("Admit() = %v, want %v", err, countErr)
	}
	if len(ledger.appended) != 0 {
		t.Errorf("ledger writes after count failure = %d, want 0", len(ledger.appended))
	}
}
