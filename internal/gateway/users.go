package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// UsersAPI addresses the users service (usuarios). Admin-scoped calls carry a
// bearer token from the cached session; the service authorizes it server-side.
type UsersAPI struct {
	client  *Client
	baseURL string
}

func NewUsersAPI(client *Client, baseURL string) *UsersAPI {
	return &UsersAPI{client: client, baseURL: baseURL}
}

func (a *UsersAPI) Login(ctx context.Context, body LoginRequestDTO) (*Response, error) {
	return a.client.Call(ctx, http.MethodPost, a.baseURL+"/api/usuarios/login", body)
}

func (a *UsersAPI) Register(ctx context.Context, body UsuarioDTO) (*Response, error) {
	return a.client.Call(ctx, http.MethodPost, a.baseURL+"/api/usuarios", body)
}

func (a *UsersAPI) GetByID(ctx context.Context, id int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/usuarios/"+formatID(id), nil)
}

func (a *UsersAPI) GetByEmail(ctx context.Context, email string) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/usuarios/email/"+url.PathEscape(email), nil)
}

func (a *UsersAPI) Update(ctx context.Context, id int64, body UsuarioDTO) (*Response, error) {
	return a.client.Call(ctx, http.MethodPut, a.baseURL+"/api/usuarios/"+formatID(id), body)
}

func (a *UsersAPI) AdminList(ctx context.Context, token string) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/usuarios/admin/todos", nil, WithBearer(token))
}

func (a *UsersAPI) AdminListByRole(ctx context.Context, token, role string) (*Response, error) {
	u := a.baseURL + "/api/usuarios/admin/rol/" + url.PathEscape(role)
	return a.client.Call(ctx, http.MethodGet, u, nil, WithBearer(token))
}

func (a *UsersAPI) AdminChangeRole(ctx context.Context, token string, id int64, newRole string) (*Response, error) {
	q := url.Values{}
	q.Set("nuevoRol", newRole)
	u := a.baseURL + "/api/usuarios/admin/" + formatID(id) + "/cambiar-rol?" + q.Encode()
	return a.client.Call(ctx, http.MethodPatch, u, nil, WithBearer(token))
}

func (a *UsersAPI) AdminDeactivate(ctx context.Context, token string, id int64) (*Response, error) {
	u := a.baseURL + "/api/usuarios/" + formatID(id) + "/desactivar"
	return a.client.Call(ctx, http.MethodPatch, u, nil, WithBearer(token))
}

func (a *UsersAPI) AdminReactivate(ctx context.Context, token string, id int64) (*Response, error) {
	u := a.baseURL + "/api/usuarios/admin/" + formatID(id) + "/activar"
	return a.client.Call(ctx, http.MethodPatch, u, nil, WithBearer(token))
}

func (a *UsersAPI) AdminDelete(ctx context.Context, token string, id int64) (*Response, error) {
	u := a.baseURL + "/api/usuarios/admin/" + formatID(id)
	return a.client.Call(ctx, http.MethodDelete, u, nil, WithBearer(token))
}
