package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewServer_AppliesTimeouts(t *testing.T) {
	s := NewServer(nil, WithTimeouts(3*time.Second, 4*time.Second, 5*time.Second))

	require.Equal(t, 3*time.Second, s.Echo().Server.ReadTimeout)
	require.Equal(t, 4*time.Second, s.Echo().Server.WriteTimeout)
	require.Equal(t, 5*time.Second, s.config.ShutdownTimeout)
}

func TestNewServer_Defaults(t *testing.T) {
	s := NewServer(nil)

	require.Equal(t, 8080, s.config.Port)
	require.Equal(t, 10*time.Second, s.Echo().Server.ReadTimeout)
	require.Equal(t, 10*time.Second, s.Echo().Server.WriteTimeout)
	require.True(t, s.config.CORS)
}

func TestNewServer_MetricsRoute(t *testing.T) {
	s := NewServer(nil, WithMetricsPath("/metrics"))

	found := false
	for _, r := range s.Echo().Routes() {
		if r.Path == "/metrics" {
			found = true
		}
	}
	require.True(t, found, "metrics path must be registered")
}
