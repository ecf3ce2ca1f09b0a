package artificial

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// NewGeminiClient builds the shared SDK client once at process start. It is
// read-only after construction and injected everywhere it is needed.
func NewGeminiClient(lc fx.Lifecycle, config *AIConfig, log *tracing.Logger) *genai.Client {
	if config.GeminiToken == "" {
		log.W("Gemini API key is not configured, generation requests will be rejected")
		return nil
	}

	if err := platform.ValidateGeminiToken(config.GeminiToken); err != nil {
		log.W("Gemini API key has unexpected format", tracing.InnerError, err)
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.GeminiToken))
	if err != nil {
		log.F("Failed to initialize Gemini client", tracing.InnerError, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.I("Closing Gemini client")
			return client.Close()
		},
	})

	log.I("Gemini client initialized successfully")
	return client
}

// SDKCaller runs one candidate attempt over the official SDK.
type SDKCaller struct {
	client *genai.Client
	config *AIConfig
}

func NewSDKCaller(client *genai.Client, config *AIConfig) *SDKCaller {
	return &SDKCaller{client: client, config: config}
}

func (x *SDKCaller) Invoke(log *tracing.Logger, candidate Candidate, prompt string) (string, error) {
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), x.config.SDKTimeout)
	defer cancel()

	model := x.client.GenerativeModel(candidate.ID)
	model.SafetySettings = permissiveSafetySettings()

	log.I("ai requested", tracing.AiKind, "gemini/sdk")

	response, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifySDKError(candidate, err)
	}

	return normalizeSDK(response)
}

// The provider's safety filtering is owned by the calling platform, not this
// layer, so every category is set to its most permissive threshold.
func permissiveSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}
}

func classifySDKError(candidate Candidate, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
		return &AuthorizationError{Candidate: candidate.ID, StatusCode: apiErr.Code, Err: err}
	}

	return fmt.Errorf("sdk candidate %s failed: %w", candidate.ID, err)
}
