//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"cancha-client/internal/domain/user"
	"cancha-client/internal/gateway"
	"cancha-client/internal/infra"
	"cancha-client/internal/infra/repository"
	"cancha-client/internal/session"
	"cancha-client/internal/uistate"
	"cancha-client/internal/usecase/commands"
	"cancha-client/tests/common/builder"
	commandsmock "cancha-client/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUser *commandsmock.MockUserGateway
	sessions *session.Store
	state    *uistate.Publisher
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUser = commandsmock.NewMockUserGateway(s.mockCtrl)

	store, err := session.NewStore(context.Background(), session.NewMemoryBackend(), slog.Default())
	s.Require().NoError(err)
	s.sessions = store

	s.state = uistate.NewPublisher()
	s.commands = commands.NewAuthCommands(s.mockUser, s.sessions, s.state, slog.Default())
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLoginSavesSession() {
	loggedUser := builder.NewUserBuilder().BuildDomain()
	s.mockUser.EXPECT().
		Login(gomock.Any(), "maria@example.com", "secreto1").
		Return(&repository.LoginResult{
			User:    loggedUser,
			Message: "Login exitoso",
			Token:   "tok-abc",
		}, nil)

	got, err := s.commands.Login(context.Background(), "maria@example.com", "secreto1")

	s.NoError(err)
	s.Equal(int64(7), got.ID)

	s.True(s.sessions.IsLoggedIn())
	id, ok := s.sessions.UserIDNow()
	s.True(ok)
	s.Equal(int64(7), id)
	token, ok := s.sessions.TokenNow()
	s.True(ok)
	s.Equal("tok-abc", token)

	state := s.state.State()
	s.False(state.Loading)
	s.Equal("Login exitoso", state.Success)
}

// Malformed credentials fail locally; the gateway mock would reject any call.
func (s *AuthCommandsTestSuite) TestLoginValidatesLocally() {
	_, err := s.commands.Login(context.Background(), "not-an-email", "secreto1")
	s.ErrorIs(err, commands.ErrLoginFailed)
	s.True(infra.IsKind(err, infra.KindValidation))
	s.False(s.sessions.IsLoggedIn())

	_, err = s.commands.Login(context.Background(), "maria@example.com", "123")
	s.ErrorIs(err, commands.ErrLoginFailed)
	s.False(s.sessions.IsLoggedIn())
}

func (s *AuthCommandsTestSuite) TestLoginRejectionLeavesNoSession() {
	s.mockUser.EXPECT().
		Login(gomock.Any(), "maria@example.com", "secreto1").
		Return(nil, infra.NewRemoteErr(infra.KindHTTP, 401, "Credenciales inválidas", nil))

	_, err := s.commands.Login(context.Background(), "maria@example.com", "secreto1")

	s.ErrorIs(err, commands.ErrLoginFailed)
	s.False(s.sessions.IsLoggedIn())
	s.Equal("Credenciales inválidas", s.state.State().Err)
}

func (s *AuthCommandsTestSuite) TestRegisterDoesNotLogIn() {
	created := builder.NewUserBuilder().BuildDomain()
	s.mockUser.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dto gateway.UsuarioDTO) (*user.User, error) {
			s.Equal("maria@example.com", dto.Email)
			s.Equal("María", dto.Nombre)
			s.Require().NotNil(dto.Apellido)
			s.Equal("García", *dto.Apellido)
			return &created, nil
		})

	got, err := s.commands.Register(context.Background(), commands.RegisterInput{
		Email:    "maria@example.com",
		Password: "secreto1",
		Name:     "María",
		Surname:  "García",
	})

	s.NoError(err)
	s.Equal(&created, got)
	s.False(s.sessions.IsLoggedIn())
}

func (s *AuthCommandsTestSuite) TestLogoutResetsState() {
	loggedUser := builder.NewUserBuilder().BuildDomain()
	s.Require().NoError(s.sessions.Save(context.Background(), loggedUser, "tok-abc"))
	s.state.Update(func(st *uistate.State) {
		st.Success = "reservation created"
	})

	s.NoError(s.commands.Logout(context.Background()))

	s.False(s.sessions.IsLoggedIn())
	state := s.state.State()
	s.Empty(state.Success)
	s.Empty(state.MyReservations)
	s.Nil(state.Created)
}
