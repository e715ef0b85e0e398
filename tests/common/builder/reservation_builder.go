//go:build unit

package builder

import (
	"time"

	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/gateway"
)

type ReservationBuilder struct {
	ID         int64
	UserID     int64
	VenueID    int64
	Start      time.Time
	End        time.Time
	TotalPrice float64
	Status     string
	Notes      string
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         42,
		UserID:     7,
		VenueID:    3,
		Start:      start,
		End:        start.Add(time.Hour),
		TotalPrice: 50,
		Status:     "PENDIENTE",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() reservation.Reservation {
	return reservation.Reservation{
		ID:         b.ID,
		UserID:     b.UserID,
		VenueID:    b.VenueID,
		Start:      b.Start.Format(reservation.WireTimeFormat),
		End:        b.End.Format(reservation.WireTimeFormat),
		TotalPrice: b.TotalPrice,
		Status:     reservation.Status(b.Status),
		Notes:      b.Notes,
	}
}

func (b *ReservationBuilder) BuildDTO() gateway.ReservaDTO {
	id := b.ID
	dto := gateway.ReservaDTO{
		ID:          &id,
		UsuarioID:   b.UserID,
		CanchaID:    b.VenueID,
		FechaInicio: b.Start.Format(reservation.WireTimeFormat),
		FechaFin:    b.End.Format(reservation.WireTimeFormat),
		PrecioTotal: b.TotalPrice,
		Estado:      &b.Status,
	}
	if b.Notes != "" {
		dto.Observaciones = &b.Notes
	}
	return dto
}
