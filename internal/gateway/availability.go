package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// AvailabilityAPI addresses the availability service (disponibilidades).
type AvailabilityAPI struct {
	client  *Client
	baseURL string
}

func NewAvailabilityAPI(client *Client, baseURL string) *AvailabilityAPI {
	return &AvailabilityAPI{client: client, baseURL: baseURL}
}

func (a *AvailabilityAPI) SlotsByVenue(ctx context.Context, venueID int64) (*Response, error) {
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/disponibilidades/cancha/"+formatID(venueID), nil)
}

func (a *AvailabilityAPI) SlotsByVenueAndRange(ctx context.Context, venueID int64, start, end string) (*Response, error) {
	q := url.Values{}
	q.Set("fechaInicio", start)
	q.Set("fechaFin", end)
	u := a.baseURL + "/api/disponibilidades/cancha/" + formatID(venueID) + "/rango?" + q.Encode()
	return a.client.Call(ctx, http.MethodGet, u, nil)
}

// Verify answers whether the venue is free for the given range. Advisory: a
// true answer can still race a competing create.
func (a *AvailabilityAPI) Verify(ctx context.Context, venueID int64, start, end string) (*Response, error) {
	q := url.Values{}
	q.Set("canchaId", formatID(venueID))
	q.Set("fechaInicio", start)
	q.Set("fechaFin", end)
	return a.client.Call(ctx, http.MethodGet, a.baseURL+"/api/disponibilidades/verificar?"+q.Encode(), nil)
}
