package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable means the provider cannot be called at all
	// (missing credentials, disabled, circuit open). Never retried.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderTransport classifies network and upstream failures. See TransportError.
	ErrProviderTransport = errors.New("provider transport failure")

	// ErrLocationNotFound is returned by geocoders for addresses that do not resolve.
	ErrLocationNotFound = errors.New("location not found")
)

// TransportError carries the details of a failed upstream call.
// errors.Is(err, ErrProviderTransport) reports true for it.
type TransportError struct {
	Provider   string
	Op         string
	StatusCode int
	Err        error
}

// NewTransportError wraps err as a transport failure of provider.op
func NewTransportError(provider, op string, statusCode int, err error) *TransportError {
	return &TransportError{Provider: provider, Op: op, StatusCode: statusCode, Err: err}
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Provider, e.Op)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrProviderTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrProviderTransport
}

// Unavailable wraps ErrProviderUnavailable with a reason.
func Unavailable(provider, reason string) error {
	return fmt.Errorf("%s: %s: %w", provider, reason, ErrProviderUnavailable)
}
