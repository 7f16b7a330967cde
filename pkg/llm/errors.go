package llm

import "errors"

// Sentinel errors let callers classify backend failures without parsing
// provider-specific text.
var (
	// ErrNoCredential: the provider requires an API key and none is set.
	ErrNoCredential = errors.New("llm: missing API credential")

	// ErrUnauthorized: the backend rejected the configured credential.
	ErrUnauthorized = errors.New("llm: backend rejected credentials")

	// ErrRateLimited: the backend signaled overload or exhausted quota.
	ErrRateLimited = errors.New("llm: backend rate limited")
)
