package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestDeviceIDRoundTrip(t *testing.T) {
	ctx := WithDeviceID(context.Background(), "dev-456")
	assert.Equal(t, "dev-456", DeviceIDFromContext(ctx))
	assert.Empty(t, DeviceIDFromContext(context.Background()))
}
