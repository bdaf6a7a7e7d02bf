package summarizer

import (
	"errors"
	"fmt"
)

// Closed set of error kinds surfaced by the summarization provider adapter
var (
	ErrRateLimited         = errors.New("summarization provider rate limited")
	ErrAuthFailed          = errors.New("summarization provider authentication failed")
	ErrBadInput            = errors.New("summarization provider rejected input")
	ErrProviderUnavailable = errors.New("summarization provider unavailable")
)

// ProviderError carries the upstream status code alongside the mapped kind
type ProviderError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == e.Kind
}

func (e *ProviderError) Unwrap() error {
	return e.Kind
}

func retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrProviderUnavailable)
}
