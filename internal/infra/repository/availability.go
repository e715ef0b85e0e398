package repository

import (
	"context"
	"encoding/json"

	"cancha-client/internal/domain/availability"
	"cancha-client/internal/gateway"
	"cancha-client/internal/infra"
)

type AvailabilityRepository struct {
	api *gateway.AvailabilityAPI
}

func NewAvailabilityRepository(api *gateway.AvailabilityAPI) *AvailabilityRepository {
	return &AvailabilityRepository{api: api}
}

func (r *AvailabilityRepository) slots(resp *gateway.Response, err error) ([]availability.Slot, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "failed to load availability")
	}
	var dtos []gateway.DisponibilidadDTO
	if err := decodePayload(resp, &dtos, "unusable availability payload"); err != nil {
		return nil, err
	}
	return slotsFromDTO(dtos), nil
}

func (r *AvailabilityRepository) SlotsByVenue(ctx context.Context, venueID int64) ([]availability.Slot, error) {
	return r.slots(r.api.SlotsByVenue(ctx, venueID))
}

func (r *AvailabilityRepository) SlotsByVenueAndRange(ctx context.Context, venueID int64, start, end string) ([]availability.Slot, error) {
	return r.slots(r.api.SlotsByVenueAndRange(ctx, venueID, start, end))
}

// Verify returns the service's advisory answer. The body is a bare JSON
// boolean.
func (r *AvailabilityRepository) Verify(ctx context.Context, venueID int64, start, end string) (bool, error) {
	resp, err := r.api.Verify(ctx, venueID, start, end)
	if err != nil {
		return false, networkErr(err)
	}
	if !resp.IsSuccess() {
		return false, httpErr(resp, "failed to verify availability")
	}
	var available bool
	if err := json.Unmarshal(resp.Body, &available); err != nil {
		return false, infra.NewRemoteErr(infra.KindDecode, resp.Status, "unusable availability answer", err)
	}
	return available, nil
}
