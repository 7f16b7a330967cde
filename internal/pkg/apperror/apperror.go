package apperror

import (
	"errors"
	"fmt"
)

// Kind buckets every failure crossing the API boundary.
type Kind string

const (
	KindValidation       Kind = "VALIDATION_ERROR"
	KindConfiguration    Kind = "CONFIGURATION_ERROR"
	KindStorage          Kind = "STORAGE_ERROR"
	KindBackendAuth      Kind = "BACKEND_AUTH_ERROR"
	KindBackendRateLimit Kind = "BACKEND_RATE_LIMIT_ERROR"
	KindBackendUnknown   Kind = "BACKEND_UNKNOWN_ERROR"
)

// AppError carries a stable client-facing message plus the wrapped cause.
// The cause is for logs only and must never reach a response body.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Configuration(message string, err error) *AppError {
	return &AppError{Kind: KindConfiguration, Message: message, Err: err}
}

func Storage(err error) *AppError {
	return &AppError{Kind: KindStorage, Message: "storage operation failed", Err: err}
}

func BackendAuth(err error) *AppError {
	return &AppError{Kind: KindBackendAuth, Message: "assistant backend rejected credentials", Err: err}
}

func BackendRateLimit(err error) *AppError {
	return &AppError{Kind: KindBackendRateLimit, Message: "assistant backend is overloaded, try again later", Err: err}
}

func BackendUnknown(err error) *AppError {
	return &AppError{Kind: KindBackendUnknown, Message: "assistant backend request failed", Err: err}
}

// As unwraps err into an *AppError if one is in the chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus maps the taxonomy to transport status codes.
func HTTPStatus(err error) int {
	appErr, ok := As(err)
	if !ok {
		return 500
	}
	switch appErr.Kind {
	case KindValidation:
		return 400
	case KindBackendAuth:
		return 401
	case KindBackendRateLimit:
		return 429
	case KindConfiguration, KindStorage, KindBackendUnknown:
		return 500
	default:
		return 500
	}
}
