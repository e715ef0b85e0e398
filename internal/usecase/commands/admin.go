package commands

import (
	"context"
	"log/slog"

	"cancha-client/internal/domain/user"
	"cancha-client/internal/infra"
	"cancha-client/internal/pkg/clock"
	"cancha-client/internal/pkg/errs"
	"cancha-client/internal/pkg/token"
	"cancha-client/internal/uistate"
)

var (
	ErrNotAdmin     = errs.New("admin privileges required")
	ErrTokenExpired = errs.New("session token expired, log in again")
)

type AdminCommands interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	ListUsersByRole(ctx context.Context, role user.Role) ([]user.User, error)
	ChangeRole(ctx context.Context, id int64, newRole user.Role) error
	Deactivate(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type adminCommandsImpl struct {
	users     UserAdminGateway
	sessions  SessionStore
	state     *uistate.Publisher
	inspector *token.Inspector
	clk       clock.Clock
	logger    *slog.Logger
}

func NewAdminCommands(
	users UserAdminGateway,
	sessions SessionStore,
	state *uistate.Publisher,
	inspector *token.Inspector,
	clk clock.Clock,
	logger *slog.Logger,
) AdminCommands {
	return &adminCommandsImpl{
		users:     users,
		sessions:  sessions,
		state:     state,
		inspector: inspector,
		clk:       clk,
		logger:    logger,
	}
}

func (c *adminCommandsImpl) begin() {
	c.state.Update(func(s *uistate.State) {
		s.Loading = true
		s.Err = ""
		s.Success = ""
	})
}

func (c *adminCommandsImpl) fail(err error, fallback string) error {
	msg := infra.Message(err, fallback)
	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Err = msg
	})
	return err
}

func (c *adminCommandsImpl) validationErr(mark error, msg string) error {
	return c.fail(errs.Mark(infra.NewRemoteErr(infra.KindValidation, 0, msg, nil), mark), msg)
}

// bearer gates every admin call: the cached role is advisory, the token is
// what the server actually checks. An expired token fails locally instead of
// bouncing off the service.
func (c *adminCommandsImpl) bearer() (string, error) {
	if !c.sessions.IsAdmin() {
		return "", c.validationErr(ErrNotAdmin, "admin privileges required")
	}
	bearerToken, ok := c.sessions.TokenNow()
	if !ok {
		return "", c.validationErr(ErrNotAdmin, "no admin token in session, log in again")
	}
	if err := c.inspector.CheckUsable(bearerToken, c.clk.Now()); err != nil {
		return "", c.validationErr(ErrTokenExpired, "session token expired, log in again")
	}
	return bearerToken, nil
}

func (c *adminCommandsImpl) ListUsers(ctx context.Context) ([]user.User, error) {
	c.begin()

	bearerToken, err := c.bearer()
	if err != nil {
		return nil, err
	}

	list, err := c.users.AdminList(ctx, bearerToken)
	if err != nil {
		return nil, c.fail(err, "failed to load users")
	}

	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Users = list
	})
	return list, nil
}

func (c *adminCommandsImpl) ListUsersByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	c.begin()

	bearerToken, err := c.bearer()
	if err != nil {
		return nil, err
	}

	list, err := c.users.AdminListByRole(ctx, bearerToken, role)
	if err != nil {
		return nil, c.fail(err, "failed to load users")
	}

	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Users = list
	})
	return list, nil
}

func (c *adminCommandsImpl) ChangeRole(ctx context.Context, id int64, newRole user.Role) error {
	return c.mutateUser(ctx, "role updated", func(ctx context.Context, bearerToken string) error {
		_, err := c.users.AdminChangeRole(ctx, bearerToken, id, newRole)
		return err
	})
}

func (c *adminCommandsImpl) Deactivate(ctx context.Context, id int64) error {
	return c.mutateUser(ctx, "user deactivated", func(ctx context.Context, bearerToken string) error {
		return c.users.AdminDeactivate(ctx, bearerToken, id)
	})
}

func (c *adminCommandsImpl) Reactivate(ctx context.Context, id int64) error {
	return c.mutateUser(ctx, "user reactivated", func(ctx context.Context, bearerToken string) error {
		_, err := c.users.AdminReactivate(ctx, bearerToken, id)
		return err
	})
}

func (c *adminCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.mutateUser(ctx, "user deleted", func(ctx context.Context, bearerToken string) error {
		return c.users.AdminDelete(ctx, bearerToken, id)
	})
}

// mutateUser runs one admin mutation and refreshes the user listing so the
// cached table reflects the change.
func (c *adminCommandsImpl) mutateUser(ctx context.Context, successMsg string, call func(context.Context, string) error) error {
	c.begin()

	bearerToken, err := c.bearer()
	if err != nil {
		return err
	}

	if err := call(ctx, bearerToken); err != nil {
		return c.fail(err, "admin operation failed")
	}

	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Success = successMsg
	})

	list, err := c.users.AdminList(ctx, bearerToken)
	if err != nil {
		c.logger.Warn("failed to refresh user listing", "error", err.Error())
		return nil
	}
	c.state.Update(func(s *uistate.State) {
		s.Users = list
	})
	return nil
}
