package bootstrap

import (
	"net/http"

	"cancha-client/internal/pkg/config"

	"go.uber.org/fx"
)

var HTTPModule = fx.Module("http",
	fx.Provide(
		NewHTTPClient,
	),
)

// NewHTTPClient is the one transport every service gateway shares. The
// timeout bounds a whole exchange; per-call deadlines come from contexts.
func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.HTTP.Timeout,
	}
}
