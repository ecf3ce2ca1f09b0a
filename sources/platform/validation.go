package platform

import (
	"fmt"
	"regexp"
)

var GeminiTokenPattern = regexp.MustCompile(`^AIza[0-9A-Za-z\-_]{35}$`)

func ValidateGeminiToken(token string) error {
	if token == "" {
		return fmt.Errorf("Gemini API token is required")
	}

	if !GeminiTokenPattern.MatchString(token) {
		return fmt.Errorf("invalid Gemini API token format: expected AIza[0-9A-Za-z-_]{35}")
	}

	return nil
}
