package uistate

import (
	"cancha-client/internal/domain/availability"
	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/domain/user"
	"cancha-client/internal/domain/venue"
)

// State is the presentation snapshot shared by every workflow consumer. It
// is treated as a value: each transition builds a new State and republishes
// it whole. Slices are always replaced, never patched in place.
type State struct {
	Loading bool
	Err     string
	Success string

	// Available is the advisory answer of the last availability check;
	// nil until a check completes.
	Available *bool

	// Created is the reservation returned by the last successful create.
	Created *reservation.Reservation

	MyReservations []reservation.Reservation

	Venues []venue.Venue
	Slots  []availability.Slot

	// Users is the admin user listing, populated only for admins.
	Users []user.User
}

func (s State) IsAvailable() bool {
	return s.Available != nil && *s.Available
}
