package artificial

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"
)

// Wire types for the provider's generateContent HTTP surface.
type (
	rawRequest struct {
		Contents       []rawContent       `json:"contents"`
		SafetySettings []rawSafetySetting `json:"safetySettings"`
	}

	rawContent struct {
		Role  string    `json:"role,omitempty"`
		Parts []rawPart `json:"parts"`
	}

	rawPart struct {
		Text string `json:"text"`
	}

	rawSafetySetting struct {
		Category  string `json:"category"`
		Threshold string `json:"threshold"`
	}

	rawResponse struct {
		Candidates []rawCandidate `json:"candidates"`
	}

	rawCandidate struct {
		Content      rawContent `json:"content"`
		FinishReason string     `json:"finishReason"`
	}
)

// RawHTTPCaller runs one candidate attempt against the provider's HTTP surface
// directly. It exists because the SDK's model routing occasionally disagrees
// with what the HTTP API actually serves, so the raw path is an independent
// route rather than a duplicate of the same failure.
type RawHTTPCaller struct {
	client *http.Client
	config *AIConfig
}

func NewRawHTTPCaller(client *http.Client, config *AIConfig) *RawHTTPCaller {
	return &RawHTTPCaller{client: client, config: config}
}

func (x *RawHTTPCaller) Invoke(log *tracing.Logger, candidate Candidate, prompt string) (string, error) {
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 60*time.Second)
	defer cancel()

	body := rawRequest{
		Contents: []rawContent{
			{Role: "user", Parts: []rawPart{{Text: prompt}}},
		},
		SafetySettings: permissiveRawSafetySettings(),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal raw request for %s: %w", candidate.ID, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, candidate.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build raw request for %s: %w", candidate.ID, err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", x.config.GeminiToken)

	log.I("ai requested", tracing.AiKind, "gemini/raw", tracing.AiEndpoint, candidate.Endpoint)

	response, err := x.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("raw candidate %s unreachable: %w", candidate.ID, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusForbidden {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return "", &AuthorizationError{
			Candidate:  candidate.ID,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("provider returned: %s", string(snippet)),
		}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		log.W("Raw candidate returned unexpected status", tracing.HttpStatus, response.StatusCode)
		return "", fmt.Errorf("raw candidate %s returned http %d: %s", candidate.ID, response.StatusCode, string(snippet))
	}

	var decoded rawResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode raw response from %s: %w", candidate.ID, err)
	}

	return normalizeRaw(&decoded)
}

func permissiveRawSafetySettings() []rawSafetySetting {
	return []rawSafetySetting{
		{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
		{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
		{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
		{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
	}
}
