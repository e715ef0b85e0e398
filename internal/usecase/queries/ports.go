package queries

import (
	"context"

	"cancha-client/internal/domain/availability"
	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/domain/venue"
)

type VenueReader interface {
	List(ctx context.Context) ([]venue.Venue, error)
	ListActive(ctx context.Context) ([]venue.Venue, error)
	ListByType(ctx context.Context, sport venue.SportType) ([]venue.Venue, error)
	ListByCity(ctx context.Context, city string) ([]venue.Venue, error)
	GetByID(ctx context.Context, id int64) (*venue.Venue, error)
}

type AvailabilityReader interface {
	SlotsByVenue(ctx context.Context, venueID int64) ([]availability.Slot, error)
	SlotsByVenueAndRange(ctx context.Context, venueID int64, start, end string) ([]availability.Slot, error)
	Verify(ctx context.Context, venueID int64, start, end string) (bool, error)
}

type ReservationReader interface {
	ListByUser(ctx context.Context, userID int64) ([]reservation.Reservation, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status reservation.Status) ([]reservation.Reservation, error)
	ListByVenue(ctx context.Context, venueID int64) ([]reservation.Reservation, error)
	ListByRange(ctx context.Context, start, end string) ([]reservation.Reservation, error)
	GetByID(ctx context.Context, id int64) (*reservation.Reservation, error)
}

// SessionReader is the read-only slice of the session store the queries need.
type SessionReader interface {
	UserIDNow() (int64, bool)
}
