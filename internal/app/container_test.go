package app

import (
	"testing"

	"github.com/nfrund/bloomly/internal/config"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Resolve(t *testing.T) {
	cfg := &config.Config{
		BackendURL:        "http://127.0.0.1:5000",
		ReturnToRequested: true,
	}
	c := NewContainer(cfg)
	t.Cleanup(c.Shutdown)

	deps, err := c.Resolve()
	require.NoError(t, err)

	assert.Same(t, cfg, deps.Config)
	assert.Equal(t, "http://127.0.0.1:5000", deps.Backend.BaseURL())
	assert.NotNil(t, deps.Content.Current())
	assert.NotNil(t, deps.Bus)
	assert.NotNil(t, deps.Audit)
	assert.NotNil(t, deps.Renderer)

	origin := deps.Gate.Decide(nav.Tracking, false)
	assert.Equal(t, nav.Tracking, deps.Gate.AfterLogin(origin))

	again, err := c.Resolve()
	require.NoError(t, err)
	assert.Same(t, deps.Backend, again.Backend, "services are singletons")
}

func TestContainer_InvalidBackendURL(t *testing.T) {
	c := NewContainer(&config.Config{BackendURL: "not a url"})
	t.Cleanup(c.Shutdown)

	_, err := c.Resolve()
	assert.Error(t, err)
}

func TestContainer_ContentDirMustExist(t *testing.T) {
	c := NewContainer(&config.Config{
		BackendURL: "http://127.0.0.1:5000",
		ContentDir: t.TempDir(),
	})
	t.Cleanup(c.Shutdown)

	_, err := c.Resolve()
	assert.Error(t, err)
}
