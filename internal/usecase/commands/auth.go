package commands

import (
	"context"
	"log/slog"

	"cancha-client/internal/domain/user"
	"cancha-client/internal/gateway"
	"cancha-client/internal/infra"
	"cancha-client/internal/pkg/errs"
	"cancha-client/internal/uistate"
)

var (
	ErrLoginFailed    = errs.New("login failed")
	ErrRegisterFailed = errs.New("registration failed")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Surname  string
	Phone    string
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*user.User, error)
	Register(ctx context.Context, input RegisterInput) (*user.User, error)
	Logout(ctx context.Context) error
}

type authCommandsImpl struct {
	users    UserGateway
	sessions SessionStore
	state    *uistate.Publisher
	logger   *slog.Logger
}

func NewAuthCommands(
	users UserGateway,
	sessions SessionStore,
	state *uistate.Publisher,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		users:    users,
		sessions: sessions,
		state:    state,
		logger:   logger,
	}
}

func (c *authCommandsImpl) begin() {
	c.state.Update(func(s *uistate.State) {
		s.Loading = true
		s.Err = ""
		s.Success = ""
	})
}

func (c *authCommandsImpl) fail(err error, fallback string) error {
	msg := infra.Message(err, fallback)
	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Err = msg
	})
	return err
}

func (c *authCommandsImpl) validationErr(mark error, msg string) error {
	return c.fail(errs.Mark(infra.NewRemoteErr(infra.KindValidation, 0, msg, nil), mark), msg)
}

// Login authenticates and persists the session before anything observes it.
// The credentials are validated locally first so malformed input never
// reaches the wire.
func (c *authCommandsImpl) Login(ctx context.Context, email, password string) (*user.User, error) {
	c.begin()

	validEmail, err := user.NewEmail(email)
	if err != nil {
		return nil, c.validationErr(ErrLoginFailed, err.Error())
	}
	validPassword, err := user.NewPassword(password)
	if err != nil {
		return nil, c.validationErr(ErrLoginFailed, err.Error())
	}

	result, err := c.users.Login(ctx, validEmail.Value(), validPassword.Value())
	if err != nil {
		return nil, c.fail(errs.Mark(err, ErrLoginFailed), "invalid credentials")
	}

	if err := c.sessions.Save(ctx, result.User, result.Token); err != nil {
		c.logger.Error("failed to persist session", "error", err.Error())
		return nil, c.fail(errs.Mark(err, ErrLoginFailed), "failed to persist session")
	}

	msg := result.Message
	if msg == "" {
		msg = "welcome back"
	}
	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Success = msg
	})

	logged := result.User
	return &logged, nil
}

func (c *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	c.begin()

	validEmail, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, c.validationErr(ErrRegisterFailed, err.Error())
	}
	validPassword, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, c.validationErr(ErrRegisterFailed, err.Error())
	}

	dto := gateway.UsuarioDTO{
		Email:    validEmail.Value(),
		Password: validPassword.Value(),
		Nombre:   input.Name,
	}
	if input.Surname != "" {
		dto.Apellido = &input.Surname
	}
	if input.Phone != "" {
		dto.Telefono = &input.Phone
	}

	created, err := c.users.Register(ctx, dto)
	if err != nil {
		return nil, c.fail(errs.Mark(err, ErrRegisterFailed), "failed to register user")
	}

	// Registration does not log the user in; a fresh login is required.
	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Success = "account created, please log in"
	})
	return created, nil
}

// Logout clears the session and resets every cached list: nothing private
// survives for the next identity.
func (c *authCommandsImpl) Logout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return c.fail(err, "failed to clear session")
	}

	c.state.Update(func(s *uistate.State) {
		*s = uistate.State{}
	})
	return nil
}
