package repository

import (
	"context"
	"encoding/json"
	"net/http"

	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/gateway"
	"cancha-client/internal/infra"
)

// DefaultConflictMessage is surfaced when the reservations service rejects a
// create without a structured explanation.
const DefaultConflictMessage = "the venue is not available for the selected time"

type ReservationRepository struct {
	api *gateway.ReservationsAPI
}

func NewReservationRepository(api *gateway.ReservationsAPI) *ReservationRepository {
	return &ReservationRepository{api: api}
}

func (r *ReservationRepository) list(resp *gateway.Response, err error) ([]reservation.Reservation, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "failed to load reservations")
	}
	var dtos []gateway.ReservaDTO
	if err := decodePayload(resp, &dtos, "unusable reservations payload"); err != nil {
		return nil, err
	}
	return reservationsFromDTO(dtos), nil
}

func (r *ReservationRepository) one(resp *gateway.Response, err error, defaultMsg string) (*reservation.Reservation, error) {
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, defaultMsg)
	}
	var dto gateway.ReservaDTO
	if err := decodePayload(resp, &dto, defaultMsg); err != nil {
		return nil, err
	}
	result := reservationFromDTO(dto)
	return &result, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]reservation.Reservation, error) {
	return r.list(r.api.ListByUser(ctx, userID))
}

func (r *ReservationRepository) ListByUserAndStatus(ctx context.Context, userID int64, status reservation.Status) ([]reservation.Reservation, error) {
	return r.list(r.api.ListByUserAndStatus(ctx, userID, status.String()))
}

func (r *ReservationRepository) ListByVenue(ctx context.Context, venueID int64) ([]reservation.Reservation, error) {
	return r.list(r.api.ListByVenue(ctx, venueID))
}

func (r *ReservationRepository) ListByRange(ctx context.Context, start, end string) ([]reservation.Reservation, error) {
	return r.list(r.api.ListByRange(ctx, start, end))
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	resp, err := r.api.GetByID(ctx, id)
	if err != nil {
		return nil, networkErr(err)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, "reservation not found")
	}
	var dto gateway.ReservaDTO
	if err := decodeLookup(resp, &dto, "reservation not found"); err != nil {
		return nil, err
	}
	result := reservationFromDTO(dto)
	return &result, nil
}

func (r *ReservationRepository) VerifyConflict(ctx context.Context, venueID int64, start, end string) (bool, error) {
	resp, err := r.api.VerifyConflict(ctx, venueID, start, end)
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

// Create attempts the booking exactly once. A conflict rejection keeps the
// server's own message when it sends one.
func (r *ReservationRepository) Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	body := gateway.CrearReservaDTO{
		UsuarioID:   draft.UserID,
		CanchaID:    draft.VenueID,
		FechaInicio: draft.Range.StartWire(),
		FechaFin:    draft.Range.EndWire(),
		PrecioTotal: draft.TotalPrice,
	}
	if !draft.Notes.IsEmpty() {
		notes := draft.Notes.String()
		body.Observaciones = &notes
	}
	resp, err := r.api.Create(ctx, body)
	if err != nil {
		return nil, networkErr(err)
	}
	if resp.Status == http.StatusConflict {
		msg := resp.ErrorMessage()
		if msg == "" {
			msg = DefaultConflictMessage
		}
		return nil, infra.NewRemoteErr(infra.KindConflict, resp.Status, msg, nil)
	}
	if !resp.IsSuccess() {
		return nil, httpErr(resp, DefaultConflictMessage)
	}
	var dto gateway.ReservaDTO
	if err := decodePayload(resp, &dto, "unusable reservation payload"); err != nil {
		return nil, err
	}
	result := reservationFromDTO(dto)
	return &result, nil
}

func (r *ReservationRepository) Confirm(ctx context.Context, id int64) (*reservation.Reservation, error) {
	resp, err := r.api.Confirm(ctx, id)
	return r.one(resp, err, "failed to confirm reservation")
}

func (r *ReservationRepository) Cancel(ctx context.Context, id int64, reason string) (*reservation.Reservation, error) {
	resp, err := r.api.Cancel(ctx, id, reason)
	return r.one(resp, err, "failed to cancel reservation")
}

func (r *ReservationRepository) Complete(ctx context.Context, id int64) (*reservation.Reservation, error) {
	resp, err := r.api.Complete(ctx, id)
	return r.one(resp, err, "failed to complete reservation")
}
