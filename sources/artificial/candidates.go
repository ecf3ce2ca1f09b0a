package artificial

import "fmt"

type CandidateKind string

const (
	CandidateKindSDK     CandidateKind = "sdk"
	CandidateKindRawHTTP CandidateKind = "raw_http"
)

// Candidate is one model + transport combination the fallback chain may try.
type Candidate struct {
	ID       string
	Kind     CandidateKind
	Endpoint string
}

// BuildCandidates produces the ordered, deduplicated attempt list for one
// invocation: the SDK tier first (with the preferred model moved or inserted
// at the front), then the raw HTTP tier when enabled.
func BuildCandidates(config *AIConfig, rawEnabled bool, preferred string) []Candidate {
	models := make([]string, 0, len(config.SDKModels)+1)
	if preferred != "" {
		models = append(models, preferred)
	}
	models = append(models, config.SDKModels...)

	seen := make(map[string]bool, len(models))
	candidates := make([]Candidate, 0, len(models)+len(config.RawAPIVersions))

	for _, model := range models {
		if seen[model] {
			continue
		}
		seen[model] = true
		candidates = append(candidates, Candidate{ID: model, Kind: CandidateKindSDK})
	}

	if rawEnabled && len(config.RawModels) > 0 {
		for i, version := range config.RawAPIVersions {
			model := config.RawModels[min(i, len(config.RawModels)-1)]
			candidates = append(candidates, Candidate{
				ID:       model,
				Kind:     CandidateKindRawHTTP,
				Endpoint: fmt.Sprintf(config.RawEndpointTemplate, version, model),
			})
		}
	}

	return candidates
}
