package main

import (
	"context"
	"log/slog"
	"os"

	"cancha-client/cmd/bootstrap"
	"cancha-client/internal/session"
	"cancha-client/internal/usecase/queries"

	"go.uber.org/fx"
)

// startup probes the remote services and reports the persisted session so an
// operator sees at a glance whether the client is wired correctly.
func startup(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	venues queries.VenueQueries,
	sessions *session.Store,
	logger *slog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx := context.Background()

				if u := sessions.Current(); u != nil {
					logger.Info("session restored", "user_id", u.ID, "email", u.Email, "role", u.Role.String())
				} else {
					logger.Info("no persisted session")
				}

				list, err := venues.LoadActive(ctx)
				if err != nil {
					logger.Error("venue service probe failed", "error", err.Error())
				} else {
					logger.Info("venue service reachable", "active_venues", len(list))
				}

				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			startup,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop cleanly", "error", err)
	}
}
