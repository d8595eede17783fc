package vision

import "fmt"

// ProviderError wraps a network or HTTP failure from a single provider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ParseError means the fence-stripped provider response was not a single
// valid JSON object.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response JSON: %v (response: %s)", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExhaustedError is returned when every provider in the chain has failed.
// It carries the last attempt's error.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d providers failed: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
