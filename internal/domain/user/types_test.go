//go:build unit

package user_test

import (
	"testing"

	"cancha-client/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid address", input: "maria@example.com"},
		{name: "trims whitespace", input: "  maria@example.com  "},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "mariaexample.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "maria@example", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "maria@example.com", email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	password, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", password.Value())
}

func TestRoleOrMember(t *testing.T) {
	assert.Equal(t, user.RoleAdmin, user.RoleOrMember("ADMIN"))
	assert.Equal(t, user.RoleMember, user.RoleOrMember("USUARIO"))

	// corrupt stored roles degrade instead of failing the session read
	assert.Equal(t, user.RoleMember, user.RoleOrMember("SUPERUSER"))
	assert.Equal(t, user.RoleMember, user.RoleOrMember(""))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, user.User{Role: user.RoleAdmin}.IsAdmin())
	assert.False(t, user.User{Role: user.RoleMember}.IsAdmin())
}
