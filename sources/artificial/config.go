package artificial

import (
	"time"

	"agencymanager/sources/platform"
)

type AIConfig struct {
	GeminiToken string

	SDKModels  []string
	SDKTimeout time.Duration

	RawAPIVersions      []string
	RawModels           []string
	RawEndpointTemplate string
	RawFallbackDefault  bool
}

func NewAIConfig() *AIConfig {
	return &AIConfig{
		GeminiToken: platform.Get("GEMINI_API_KEY", ""),

		SDKModels:  platform.GetAsSlice("AI_SDK_MODELS", []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"}),
		SDKTimeout: platform.GetAsDuration("AI_SDK_TIMEOUT", "5m"),

		RawAPIVersions:      platform.GetAsSlice("AI_RAW_API_VERSIONS", []string{"v1beta", "v1"}),
		RawModels:           platform.GetAsSlice("AI_RAW_MODELS", []string{"gemini-2.0-flash", "gemini-1.5-flash"}),
		RawEndpointTemplate: platform.Get("AI_RAW_ENDPOINT_TEMPLATE", "https://generativelanguage.googleapis.com/%s/models/%s:generateContent"),
		RawFallbackDefault:  platform.GetAsBool("AI_RAW_FALLBACK_DEFAULT", true),
	}
}
