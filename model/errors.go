package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the pipeline distinguishes.
// PlatformError carries everything the platform reported that is neither a
// missing resource nor an exhausted quota.
var (
	// ErrNotFound means an identifier did not resolve to a channel or video:
	// bad URL, deleted or private content, or search exhausted.
	ErrNotFound = errors.New("not found, please try a different URL or channel name")

	// ErrQuotaExceeded means the platform reported its daily quota reason
	// code. Batches surface this distinctly so the caller can show standing
	// guidance instead of a per-record error.
	ErrQuotaExceeded = errors.New("youtube API quota exceeded, try again tomorrow or use a different API key")

	// ErrUnresolvable means the URL resolver could not classify the input
	// at all. Terminal for the record, never retried.
	ErrUnresolvable = errors.New("could not determine channel identifier from the provided URL, please check the URL format")
)

// PlatformError wraps an API-reported error message passed through verbatim.
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	if e.Message == "" {
		return "youtube API error"
	}
	return fmt.Sprintf("youtube API error: %s", e.Message)
}

// NotFoundError builds a user-facing not-found failure that suggests
// alternate URL formats, wrapping ErrNotFound for errors.Is checks.
func NotFoundError(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}
