package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_ADDR", "SESSION_SECRET", "SESSION_MAX_AGE", "BACKEND_URL",
		"BACKEND_TIMEOUT", "TRACKING_RECORD_ID", "AUTH_RETURN_TO_REQUESTED", "CONTENT_DIR",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("BLOOMLY_HOME", "/tmp/bloomly-test")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "http://127.0.0.1:5000", cfg.GetBackendURL())
	assert.Equal(t, 10*time.Second, cfg.GetBackendTimeout())
	assert.Equal(t, "1", cfg.GetTrackingRecordID())
	assert.Equal(t, 86400*7, cfg.GetSessionMaxAge())
	assert.False(t, cfg.GetReturnToRequested())
	assert.Equal(t, "/tmp/bloomly-test", cfg.GetHomeDir())
	assert.ErrorIs(t, cfg.Validate(), ErrMissingSessionSecret)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SESSION_MAX_AGE", "60")
	t.Setenv("BACKEND_URL", "http://backend:5000")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("TRACKING_RECORD_ID", "42")
	t.Setenv("AUTH_RETURN_TO_REQUESTED", "true")
	t.Setenv("CONTENT_DIR", "/srv/content")

	cfg := FromEnv()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.Equal(t, 60, cfg.SessionMaxAge)
	assert.Equal(t, "http://backend:5000", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "42", cfg.TrackingRecordID)
	assert.True(t, cfg.ReturnToRequested)
	assert.Equal(t, "/srv/content", cfg.ContentDir)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE", "soon")
	t.Setenv("BACKEND_TIMEOUT", "ten")
	t.Setenv("AUTH_RETURN_TO_REQUESTED", "maybe")

	cfg := FromEnv()

	assert.Equal(t, 86400*7, cfg.SessionMaxAge)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.False(t, cfg.ReturnToRequested)
}
