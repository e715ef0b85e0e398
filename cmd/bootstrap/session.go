package bootstrap

import (
	"context"
	"log/slog"

	"cancha-client/internal/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			session.NewRedisBackend,
			fx.As(new(session.Backend)),
		),
		NewSessionStore,
	),
)

// NewSessionStore loads any persisted identity before the app starts serving,
// so a restart resumes the previous login.
func NewSessionStore(backend session.Backend, logger *slog.Logger) (*session.Store, error) {
	return session.NewStore(context.Background(), backend, logger)
}
