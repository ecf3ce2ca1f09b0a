package artificial

import (
	"agencymanager/sources/tracing"

	"github.com/pkoukk/tiktoken-go"
)

var tkm, _ = tiktoken.GetEncoding("o200k_base")

// EstimatePromptTokens sizes a prompt for metrics and logging. The encoding is
// not the provider's own tokenizer, so treat the number as an estimate only.
func EstimatePromptTokens(log *tracing.Logger, prompt string) int {
	defer tracing.ProfilePoint(log, "Prompt tokens estimated", "estimate_prompt_tokens")()

	if tkm == nil {
		return len(prompt) / 4
	}

	return len(tkm.Encode(prompt, nil, nil))
}
