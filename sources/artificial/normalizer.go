package artificial

import (
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// normalizeSDK reduces an SDK response to plain text. A safety stop or a
// missing shape is a retryable failure, never an empty success; an empty
// string from a present text part is a legitimate result.
func normalizeSDK(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		if response != nil && response.PromptFeedback != nil && response.PromptFeedback.BlockReason == genai.BlockReasonSafety {
			return "", ErrSafetyBlocked
		}
		return "", ErrNoUsableContent
	}

	candidate := response.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", ErrSafetyBlocked
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrNoUsableContent
	}

	var builder strings.Builder
	found := false
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
			found = true
		}
	}

	if !found {
		return "", ErrNoUsableContent
	}

	return builder.String(), nil
}

// normalizeRaw reduces a decoded HTTP payload to plain text under the same
// contract as normalizeSDK.
func normalizeRaw(response *rawResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", ErrNoUsableContent
	}

	candidate := response.Candidates[0]

	if candidate.FinishReason == "SAFETY" {
		return "", ErrSafetyBlocked
	}

	if len(candidate.Content.Parts) == 0 {
		return "", ErrNoUsableContent
	}

	return candidate.Content.Parts[0].Text, nil
}
