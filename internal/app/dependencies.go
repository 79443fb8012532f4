package app

import (
	"github.com/nfrund/bloomly/internal/backend"
	"github.com/nfrund/bloomly/internal/config"
	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/nfrund/bloomly/internal/rendering"
)

// Dependencies holds the core services shared by the web server and the
// command-line client. It is resolved once from the container at startup.
type Dependencies struct {
	Config   *config.Config
	Backend  *backend.Client
	Content  *content.Library
	Bus      pubsub.Bus
	Audit    *pubsub.Audit
	Gate     nav.Gate
	Renderer rendering.Renderer
}
