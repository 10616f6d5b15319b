package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError_MatchesSentinel(t *testing.T) {
	err := NewTransportError("google_places", "text_search", 502, errors.New("bad gateway"))

	assert.True(t, errors.Is(err, ErrProviderTransport))
	assert.False(t, errors.Is(err, ErrProviderUnavailable))
	assert.Contains(t, err.Error(), "status 502")

	wrapped := fmt.Errorf("search: %w", err)
	assert.True(t, errors.Is(wrapped, ErrProviderTransport))

	var te *TransportError
	assert.True(t, errors.As(wrapped, &te))
	assert.Equal(t, "text_search", te.Op)
}

func TestTransportError_UnwrapsCause(t *testing.T) {
	err := NewTransportError("qloo", "insights", 0, context.DeadlineExceeded)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.NotContains(t, err.Error(), "status")
}

func TestUnavailable(t *testing.T) {
	err := Unavailable("openai", "api key not configured")
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
	assert.Equal(t, "openai: api key not configured: provider unavailable", err.Error())
}
