package repository

import (
	"context"

	"cancha-client/internal/domain/user"
	"cancha-client/internal/gateway"
)

// LoginResult carries everything the login endpoint answers with: the user
// projection, the server's human-readable message, and an optional bearer
// token for admin-scoped calls.
type LoginResult struct {
	User    user.User
	Message string
	Token   string
}

type UserRepository struct {
	api *gateway.UsersAPI
}

func NewUserRepository(api *gateway.UsersAPI) *UserRepository {
	return &UserRepository{api: api}
}

func (r *UserRepository) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := r.api.Login(ctx, gateway.LoginRequestDTO{Email: email, Password: password})
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "invalid credentials")
	}
	var dto gateway.LoginResponseDTO
	if err := decodePayload(resp, &dto, "unusable login payload"); err != nil {
		return nil, err
	}
	return &LoginResult{
		User:    userFromDTO(dto.Usuario),
		Message: dto.Mensaje,
		Token:   dto.Token,
	}, nil
}

func (r *UserRepository) Register(ctx context.Context, newUser gateway.UsuarioDTO) (*user.User, error) {
	resp, err := r.api.Register(ctx, newUser)
	return r.oneUser(resp, err, "failed to register user")
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.lookupUser(r.api.GetByID(ctx, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.lookupUser(r.api.GetByEmail(ctx, email))
}

func (r *UserRepository) Update(ctx context.Context, id int64, updated gateway.UsuarioDTO) (*user.User, error) {
	resp, err := r.api.Update(ctx, id, updated)
	return r.oneUser(resp, err, "failed to update user")
}

func (r *UserRepository) AdminList(ctx context.Context, token string) ([]user.User, error) {
	return r.listUsers(r.api.AdminList(ctx, token))
}

func (r *UserRepository) AdminListByRole(ctx context.Context, token string, role user.Role) ([]user.User, error) {
	return r.listUsers(r.api.AdminListByRole(ctx, token, role.String()))
}

func (r *UserRepository) AdminChangeRole(ctx context.Context, token string, id int64, newRole user.Role) (*user.User, error) {
	resp, err := r.api.AdminChangeRole(ctx, token, id, newRole.String())
	return r.oneUser(resp, err, "failed to change role")
}

func (r *UserRepository) AdminReactivate(ctx context.Context, token string, id int64) (*user.User, error) {
	resp, err := r.api.AdminReactivate(ctx, token, id)
	return r.oneUser(resp, err, "failed to reactivate user")
}

// AdminDeactivate and AdminDelete answer with empty bodies on success.

func (r *UserRepository) AdminDeactivate(ctx context.Context, token string, id int64) error {
	resp, err := r.api.AdminDeactivate(ctx, token, id)
	return r.noBody(resp, err, "failed to deactivate user")
}

func (r *UserRepository) AdminDelete(ctx context.Context, token string, id int64) error {
	resp, err := r.api.AdminDelete(ctx, token, id)
	return r.noBody(resp, err, "failed to delete user")
}

func (r *UserRepository) listUsers(resp *gateway.Response, err error) ([]user.User, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "failed to load users")
	}
	var dtos []gateway.UsuarioDTO
	if err := decodePayload(resp, &dtos, "unusable users payload"); err != nil {
		return nil, err
	}
	return usersFromDTO(dtos), nil
}

func (r *UserRepository) oneUser(resp *gateway.Response, err error, defaultMsg string) (*user.User, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, defaultMsg)
	}
	var dto gateway.UsuarioDTO
	if err := decodePayload(resp, &dto, defaultMsg); err != nil {
		return nil, err
	}
	result := userFromDTO(dto)
	return &result, nil
}

func (r *UserRepository) lookupUser(resp *gateway.Response, err error) (*user.User, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "user not found")
	}
	var dto gateway.UsuarioDTO
	if err := decodeLookup(resp, &dto, "user not found"); err != nil {
		return nil, err
	}
	result := userFromDTO(dto)
	return &result, nil
}

func (r *UserRepository) noBody(resp *gateway.Response, err error, defaultMsg string) error {
	if err != nil {
		return networkErr(err)
	}
	if !resp.IsSuccess() {
		return httpErr(resp, defaultMsg)
	}
	return nil
}
