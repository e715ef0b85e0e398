//go:build unit

package builder

import (
	"cancha-client/internal/domain/user"
	"cancha-client/internal/gateway"
)

type UserBuilder struct {
	ID      int64
	Email   string
	Name    string
	Surname string
	Phone   string
	Active  bool
	Role    string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:      7,
		Email:   "maria@example.com",
		Name:    "María",
		Surname: "García",
		Phone:   "555-0101",
		Active:  true,
		Role:    "USUARIO",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() user.User {
	return user.User{
		ID:      b.ID,
		Email:   b.Email,
		Name:    b.Name,
		Surname: b.Surname,
		Phone:   b.Phone,
		Active:  b.Active,
		Role:    user.RoleOrMember(b.Role),
	}
}

func (b *UserBuilder) BuildDTO() gateway.UsuarioDTO {
	id := b.ID
	return gateway.UsuarioDTO{
		ID:       &id,
		Email:    b.Email,
		Nombre:   b.Name,
		Apellido: &b.Surname,
		Telefono: &b.Phone,
		Activo:   &b.Active,
		Rol:      &b.Role,
	}
}
