//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"cancha-client/internal/domain/user"
	"cancha-client/internal/infra"
	"cancha-client/internal/pkg/clock"
	"cancha-client/internal/pkg/token"
	"cancha-client/internal/uistate"
	"cancha-client/internal/usecase/commands"
	"cancha-client/tests/common/builder"
	commandsmock "cancha-client/tests/mock/commands"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockAdmin    *commandsmock.MockUserAdminGateway
	mockSessions *commandsmock.MockSessionStore
	state        *uistate.Publisher
	clk          *clock.MockClock
	commands     commands.AdminCommands
}

func (s *AdminCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockUserAdminGateway(s.mockCtrl)
	s.mockSessions = commandsmock.NewMockSessionStore(s.mockCtrl)
	s.state = uistate.NewPublisher()
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewAdminCommands(
		s.mockAdmin, s.mockSessions, s.state, token.NewInspector(), s.clk, slog.Default(),
	)
}

func (s *AdminCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminCommandsSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandsTestSuite))
}

// signedToken mints a token expiring at the given time. The inspector never
// verifies signatures, so any key works.
func (s *AdminCommandsTestSuite) signedToken(expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   "maria@example.com",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	s.Require().NoError(err)
	return signed
}

func (s *AdminCommandsTestSuite) asAdmin(bearerToken string) {
	s.mockSessions.EXPECT().IsAdmin().Return(true).AnyTimes()
	s.mockSessions.EXPECT().TokenNow().Return(bearerToken, true).AnyTimes()
}

func (s *AdminCommandsTestSuite) TestListUsers() {
	bearerToken := s.signedToken(s.clk.Now().Add(time.Hour))
	s.asAdmin(bearerToken)

	listed := []user.User{builder.NewUserBuilder().BuildDomain()}
	s.mockAdmin.EXPECT().AdminList(gomock.Any(), bearerToken).Return(listed, nil)

	got, err := s.commands.ListUsers(context.Background())

	s.NoError(err)
	s.Len(got, 1)
	s.Equal(listed, s.state.State().Users)
}

// A non-admin fails locally; the gateway mock would reject any call.
func (s *AdminCommandsTestSuite) TestNonAdminRefusedLocally() {
	s.mockSessions.EXPECT().IsAdmin().Return(false)

	_, err := s.commands.ListUsers(context.Background())

	s.ErrorIs(err, commands.ErrNotAdmin)
	s.True(infra.IsKind(err, infra.KindValidation))
	s.Equal("admin privileges required", s.state.State().Err)
}

func (s *AdminCommandsTestSuite) TestMissingTokenRefusedLocally() {
	s.mockSessions.EXPECT().IsAdmin().Return(true)
	s.mockSessions.EXPECT().TokenNow().Return("", false)

	_, err := s.commands.ListUsers(context.Background())

	s.ErrorIs(err, commands.ErrNotAdmin)
}

// An expired token is caught before the network; advancing the clock past
// exp is enough.
func (s *AdminCommandsTestSuite) TestExpiredTokenRefusedLocally() {
	bearerToken := s.signedToken(s.clk.Now().Add(time.Minute))
	s.asAdmin(bearerToken)
	s.clk.Add(2 * time.Minute)

	_, err := s.commands.ListUsers(context.Background())

	s.ErrorIs(err, commands.ErrTokenExpired)
	s.Equal("session token expired, log in again", s.state.State().Err)
}

func (s *AdminCommandsTestSuite) TestChangeRoleRefreshesListing() {
	bearerToken := s.signedToken(s.clk.Now().Add(time.Hour))
	s.asAdmin(bearerToken)

	promoted := builder.NewUserBuilder().
		With(func(b *builder.UserBuilder) { b.Role = "ADMIN" }).
		BuildDomain()

	s.mockAdmin.EXPECT().
		AdminChangeRole(gomock.Any(), bearerToken, int64(7), user.RoleAdmin).
		Return(&promoted, nil)
	s.mockAdmin.EXPECT().
		AdminList(gomock.Any(), bearerToken).
		Return([]user.User{promoted}, nil)

	err := s.commands.ChangeRole(context.Background(), 7, user.RoleAdmin)

	s.NoError(err)
	state := s.state.State()
	s.Equal("role updated", state.Success)
	s.Len(state.Users, 1)
	s.Equal(user.RoleAdmin, state.Users[0].Role)
}

// The server remains the authority: a 403 despite a locally valid admin view
// is surfaced as-is.
func (s *AdminCommandsTestSuite) TestServerRejectionSurfaced() {
	bearerToken := s.signedToken(s.clk.Now().Add(time.Hour))
	s.asAdmin(bearerToken)

	s.mockAdmin.EXPECT().
		AdminDelete(gomock.Any(), bearerToken, int64(9)).
		Return(infra.NewRemoteErr(infra.KindHTTP, 403, "Acceso denegado", nil))

	err := s.commands.Delete(context.Background(), 9)

	s.Error(err)
	s.Equal(403, infra.StatusOf(err))
	s.Equal("Acceso denegado", s.state.State().Err)
}
