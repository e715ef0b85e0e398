package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// VenuesAPI addresses the venues service (canchas).
type VenuesAPI struct {
	client  *Client
	baseURL string
}

func NewVenuesAPI(client *Client, baseURL string) *VenuesAPI {
	return &VenuesAPI{client: client, baseURL: baseURL}
}

func (a *VenuesAPI) List(ctx context.Context) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/canchas", nil)
}

func (a *VenuesAPI) ListActive(ctx context.Context) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/canchas/activas", nil)
}

func (a *VenuesAPI) GetByID(ctx context.Context, id int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/canchas/"+formatID(id), nil)
}

func (a *VenuesAPI) ListByType(ctx context.Context, sportType string) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/canchas/tipo/"+url.PathEscape(sportType), nil)
}

func (a *VenuesAPI) ListByCity(ctx context.Context, city string) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/canchas/ciudad/"+url.PathEscape(city), nil)
}
