package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ReservationsAPI addresses the reservations service (reservas).
type ReservationsAPI struct {
	client  *Client
	baseURL string
}

func NewReservationsAPI(client *Client, baseURL string) *ReservationsAPI {
	return &ReservationsAPI{client: client, baseURL: baseURL}
}

func (a *ReservationsAPI) GetByID(ctx context.Context, id int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/reservas/"+formatID(id), nil)
}

func (a *ReservationsAPI) ListByUser(ctx context.Context, userID int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/reservas/usuario/"+formatID(userID), nil)
}

func (a *ReservationsAPI) ListByUserAndStatus(ctx context.Context, userID int64, status string) (*Response, error) {
	u := a.baseURL + "/api/reservas/usuario/" + formatID(userID) + "/estado/" + url.PathEscape(status)
	return a.client.Call(ctx, http.MethodGet, u, nil)
}

func (a *ReservationsAPI) ListByVenue(ctx context.Context, venueID int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/reservas/cancha/"+formatID(venueID), nil)
}

func (a *ReservationsAPI) ListByRange(ctx context.Context, start, end string) (*Response, error) {
	q := url.Values{}
	q.Set("fechaInicio", start)
	q.Set("fechaFin", end)
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/reservas/rango?"+q.Encode(), nil)
}

// VerifyConflict answers whether the range is free of overlapping active
// reservations for the venue.
func (a *ReservationsAPI) VerifyConflict(ctx context.Context, venueID int64, start, end string) (*Response, error) {
	q := url.Values{}
	q.Set("canchaId", formatID(venueID))
	q.Set("fechaInicio", start)
	q.Set("fechaFin", end)
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/reservas/verificar?"+q.Encode(), nil)
}

func (a *ReservationsAPI) Create(ctx context.Context, body CrearReservaDTO) (*Response, error) {
	return a.client.Call(ctx, http.MethodPost, a.baseURL+"/api/reservas", body)
}

func (a *ReservationsAPI) Confirm(ctx context.Context, id int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodPatch, a.baseURL+"/api/reservas/"+formatID(id)+"/confirmar", nil)
}

func (a *ReservationsAPI) Cancel(ctx context.Context, id int64, reason string) (*Response, error) {
	u := a.baseURL + "/api/reservas/" + formatID(id) + "/cancelar"
	if reason != "" {
		q := url.Values{}
		q.Set("motivo", reason)
		u += "?" + q.Encode()
	}
	return a.client.Call(ctx, http.MethodPatch, u, nil)
}

func (a *ReservationsAPI) Complete(ctx context.Context, id int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodPatch, a.baseURL+"/api/reservas/"+formatID(id)+"/completar", nil)
}
