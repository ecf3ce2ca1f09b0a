package artificial

import (
	"errors"
	"fmt"

	"agencymanager/sources/platform"
)

var (
	ErrProviderUnconfigured = errors.New("gemini api key is not configured")
	ErrNoUsableContent      = errors.New("no valid candidates in response")
	ErrSafetyBlocked        = errors.New("response blocked by safety filter")
)

type QuotaExceededError struct {
	TenantID string
	Plan     platform.PlanCode
	Limit    int
	Used     int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly invocation quota exceeded for tenant %s: used %d of %d (plan %s)", e.TenantID, e.Used, e.Limit, e.Plan)
}

func IsQuotaExceeded(err error) bool {
	var target *QuotaExceededError
	return errors.As(err, &target)
}

// AuthorizationError aborts the whole fallback chain: a key-level permission
// failure cannot be fixed by trying another model.
type AuthorizationError struct {
	Candidate  string
	StatusCode int
	Err        error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("provider authorization failed on candidate %s (http %d): %v", e.Candidate, e.StatusCode, e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

func IsAuthorizationFailure(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d candidates exhausted, last error: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

func IsExhausted(err error) bool {
	var target *ExhaustedError
	return errors.As(err, &target)
}
