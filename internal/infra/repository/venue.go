package repository

import (
	"context"

	"cancha-client/internal/domain/venue"
	"cancha-client/internal/gateway"
)

type VenueRepository struct {
	api *gateway.VenuesAPI
}

func NewVenueRepository(api *gateway.VenuesAPI) *VenueRepository {
	return &VenueRepository{api: api}
}

func (r *VenueRepository) list(resp *gateway.Response, err error) ([]venue.Venue, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "failed to load venues")
	}
	var dtos []gateway.CanchaDTO
	if err := decodePayload(resp, &dtos, "unusable venues payload"); err != nil {
		return nil, err
	}
	return venuesFromDTO(dtos), nil
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	return r.list(r.api.List(ctx))
}

func (r *VenueRepository) ListActive(ctx context.Context) ([]venue.Venue, error) {
	return r.list(r.api.ListActive(ctx))
}

func (r *VenueRepository) ListByType(ctx context.Context, sport venue.SportType) ([]venue.Venue, error) {
	return r.list(r.api.ListByType(ctx, sport.String()))
}

func (r *VenueRepository) ListByCity(ctx context.Context, city string) ([]venue.Venue, error) {
	return r.list(r.api.ListByCity(ctx, city))
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*venue.Venue, error) {
	resp, err := r.api.GetByID(ctx, id)
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "venue not found")
	}
	var dto gateway.CanchaDTO
	if err := decodeLookup(resp, &dto, "venue not found"); err != nil {
		return nil, err
	}
	result := venueFromDTO(dto)
	return &result, nil
}
