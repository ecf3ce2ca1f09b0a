package artificial

import (
	"testing"
	"time"
)

func testConfig() *AIConfig {
	return &AIConfig{
		GeminiToken:         "AIzaSyA1234567890abcdefghijklmnopqrstuvw",
		SDKModels:           []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"},
		SDKTimeout:          5 * time.Minute,
		RawAPIVersions:      []string{"v1beta", "v1"},
		RawModels:           []string{"gemini-2.0-flash", "gemini-1.5-flash"},
		RawEndpointTemplate: "https://generativelanguage.googleapis.com/%s/models/%s:generateContent",
		RawFallbackDefault:  true,
	}
}

func ids(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = string(c.Kind) + "/" + c.ID
	}
	return out
}

func assertOrder(t *testing.T, got []Candidate, want []string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("candidates = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", gotIDs, want)
		}
	}
}

func TestBuildCandidatesDefaultOrder(t *testing.T) {
	candidates := BuildCandidates(testConfig(), true, "")

	assertOrder(t, candidates, []string{
		"sdk/gemini-2.5-pro",
		"sdk/gemini-2.5-flash",
		"sdk/gemini-2.0-flash",
		"sdk/gemini-1.5-pro",
		"sdk/gemini-1.5-flash",
		"raw_http/gemini-2.0-flash",
		"raw_http/gemini-1.5-flash",
	})
}

func TestBuildCandidatesPreferredMovesToFront(t *testing.T) {
	candidates := BuildCandidates(testConfig(), true, "gemini-2.0-flash")

	assertOrder(t, candidates, []string{
		"sdk/gemini-2.0-flash",
		"sdk/gemini-2.5-pro",
		"sdk/gemini-2.5-flash",
		"sdk/gemini-1.5-pro",
		"sdk/gemini-1.5-flash",
		"raw_http/gemini-2.0-flash",
		"raw_http/gemini-1.5-flash",
	})
}

func TestBuildCandidatesPreferredInsertsUnknownModel(t *testing.T) {
	candidates := BuildCandidates(testConfig(), true, "gemini-exp-1206")

	if candidates[0].ID != "gemini-exp-1206" || candidates[0].Kind != CandidateKindSDK {
		t.Fatalf("first candidate = %v, want sdk/gemini-exp-1206", candidates[0])
	}
	if len(candidates) != 8 {
		t.Errorf("candidate count = %d, want 8", len(candidates))
	}
}

func TestBuildCandidatesNoDuplicates(t *testing.T) {
	candidates := BuildCandidates(testConfig(), true, "gemini-2.5-pro")

	seen := map[string]bool{}
	for _, c := range candidates {
		if c.Kind != CandidateKindSDK {
			continue
		}
		if seen[c.ID] {
			t.Fatalf("duplicate sdk candidate %s", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != 5 {
		t.Errorf("distinct sdk candidates = %d, want 5", len(seen))
	}
}

func TestBuildCandidatesRawDisabled(t *testing.T) {
	candidates := BuildCandidates(testConfig(), false, "")

	for _, c := range candidates {
		if c.Kind == CandidateKindRawHTTP {
			t.Fatalf("raw candidate %s present with raw tier disabled", c.ID)
		}
	}
	if len(candidates) != 5 {
		t.Errorf("candidate count = %d, want 5", len(candidates))
	}
}

func TestBuildCandidatesRawEndpoints(t *testing.T) {
	candidates := BuildCandidates(testConfig(), true, "")

	raw := candidates[len(candidates)-2:]
	if raw[0].Endpoint != "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Errorf("first raw endpoint = %s", raw[0].Endpoint)
	}
	if raw[1].Endpoint != "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent" {
		t.Errorf("second raw endpoint = %s", raw[1].Endpoint)
	}
}
