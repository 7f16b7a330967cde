package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", Validation("bad input"), 400},
		{"configuration", Configuration("missing key", nil), 500},
		{"storage", Storage(errors.New("db down")), 500},
		{"backend auth", BackendAuth(errors.New("401")), 401},
		{"backend rate limit", BackendRateLimit(errors.New("429")), 429},
		{"backend unknown", BackendUnknown(errors.New("boom")), 500},
		{"wrapped", fmt.Errorf("outer: %w", BackendAuth(errors.New("401"))), 401},
		{"plain error", errors.New("plain"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause)

	if !errors.Is(err, cause) {
		t.Errorf("Storage should wrap its cause")
	}

	appErr, ok := As(fmt.Errorf("wrap: %w", err))
	if !ok {
		t.Fatalf("As should find AppError in chain")
	}
	if appErr.Kind != KindStorage {
		t.Errorf("Kind = %v, want %v", appErr.Kind, KindStorage)
	}
}

func TestMessageNeverContainsCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user postgres")
	err := Storage(cause)

	// The client-facing message must stay generic.
	if err.Message != "storage operation failed" {
		t.Errorf("Message = %q leaks detail", err.Message)
	}
}
