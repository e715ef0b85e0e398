package commands

import (
	"context"

	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/domain/user"
	"cancha-client/internal/gateway"
	"cancha-client/internal/infra/repository"
)

// Ports declared beside the usecases that consume them. The infra
// repositories satisfy these structurally; tests substitute mocks.

type ReservationGateway interface {
	ListByUser(ctx context.Context, userID int64) ([]reservation.Reservation, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status reservation.Status) ([]reservation.Reservation, error)
	VerifyConflict(ctx context.Context, venueID int64, start, end string) (bool, error)
	Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error)
	Confirm(ctx context.Context, id int64) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) (*reservation.Reservation, error)
	Complete(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type UserGateway interface {
	Login(ctx context.Context, email, password string) (*repository.LoginResult, error)
	Register(ctx context.Context, newUser gateway.UsuarioDTO) (*user.User, error)
}

type UserAdminGateway interface {
	AdminList(ctx context.Context, token string) ([]user.User, error)
	AdminListByRole(ctx context.Context, token string, role user.Role) ([]user.User, error)
	AdminChangeRole(ctx context.Context, token string, id int64, newRole user.Role) (*user.User, error)
	AdminReactivate(ctx context.Context, token string, id int64) (*user.User, error)
	AdminDeactivate(ctx context.Context, token string, id int64) error
	AdminDelete(ctx context.Context, token string, id int64) error
}

// SessionStore is the slice of the session store the workflows depend on.
type SessionStore interface {
	Save(ctx context.Context, u user.User, token string) error
	Logout(ctx context.Context) error
	Current() *user.User
	UserIDNow() (int64, bool)
	TokenNow() (string, bool)
	IsAdmin() bool
}
