package artificial

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestNormalizeSDKText(t *testing.T) {
	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("generated "), genai.Text("text")}},
		}},
	}

	text, err := normalizeSDK(response)
	if err != nil {
		t.Fatalf("normalizeSDK() = %v, want nil", err)
	}
	if text != "generated text" {
		t.Errorf("text = %q, want %q", text, "generated text")
	}
}

func TestNormalizeSDKEmptyTextIsSuccess(t *testing.T) {
	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("")}},
		}},
	}

	text, err := normalizeSDK(response)
	if err != nil {
		t.Fatalf("normalizeSDK() = %v, want nil", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestNormalizeSDKSafetyStop(t *testing.T) {
	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []genai.Part{genai.Text("partial")}},
			FinishReason: genai.FinishReasonSafety,
		}},
	}

	_, err := normalizeSDK(response)
	if !errors.Is(err, ErrSafetyBlocked) {
		t.Fatalf("normalizeSDK() = %v, want %v", err, ErrSafetyBlocked)
	}
}

func TestNormalizeSDKPromptBlocked(t *testing.T) {
	response := &genai.GenerateContentResponse{
		PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
	}

	_, err := normalizeSDK(response)
	if !errors.Is(err, ErrSafetyBlocked) {
		t.Fatalf("normalizeSDK() = %v, want %v", err, ErrSafetyBlocked)
	}
}

func TestNormalizeSDKMissingShapes(t *testing.T) {
	tests := []struct {
		name     string
		response *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"empty parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeSDK(tt.response)
			if !errors.Is(err, ErrNoUsableContent) {
				t.Errorf("normalizeSDK() = %v, want %v", err, ErrNoUsableContent)
			}
		})
	}
}

func TestNormalizeRawText(t *testing.T) {
	response := &rawResponse{
		Candidates: []rawCandidate{{
			Content:      rawContent{Parts: []rawPart{{Text: "raw text"}}},
			FinishReason: "STOP",
		}},
	}

	text, err := normalizeRaw(response)
	if err != nil {
		t.Fatalf("normalizeRaw() = %v, want nil", err)
	}
	if text != "raw text" {
		t.Errorf("text = %q, want %q", text, "raw text")
	}
}

func TestNormalizeRawSafetyStop(t *testing.T) {
	response := &rawResponse{
		Candidates: []rawCandidate{{
			Content:      rawContent{Parts: []rawPart{{Text: "partial"}}},
			FinishReason: "SAFETY",
		}},
	}

	_, err := normalizeRaw(response)
	if !errors.Is(err, ErrSafetyBlocked) {
		t.Fatalf("normalizeRaw() = %v, want %v", err, ErrSafetyBlocked)
	}
}

func TestNormalizeRawMissingShapes(t *testing.T) {
	tests := []struct {
		name     string
		response *rawResponse
	}{
		{"nil response", nil},
		{"no candidates", &rawResponse{}},
		{"empty parts", &rawResponse{Candidates: []rawCandidate{{Content: rawContent{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeRaw(tt.response)
			if !errors.Is(err, ErrNoUsableContent) {
				t.Errorf("normalizeRaw() = %v, want %v", err, ErrNoUsableContent)
			}
		})
	}
}
