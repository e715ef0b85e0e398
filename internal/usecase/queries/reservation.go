package queries

import (
	"context"
	"log/slog"
	"time"

	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/infra"
	"cancha-client/internal/uistate"
)

type ReservationQueries interface {
	// LoadMine loads the acting user's reservations into the shared state.
	LoadMine(ctx context.Context) ([]reservation.Reservation, error)
	LoadMineByStatus(ctx context.Context, status reservation.Status) ([]reservation.Reservation, error)
	ListByVenue(ctx context.Context, venueID int64) ([]reservation.Reservation, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]reservation.Reservation, error)
	GetByID(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReader
	sessions     SessionReader
	state        *uistate.Publisher
	logger       *slog.Logger
}

func NewReservationQueries(
	reservations ReservationReader,
	sessions SessionReader,
	state *uistate.Publisher,
	logger *slog.Logger,
) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		sessions:     sessions,
		state:        state,
		logger:       logger,
	}
}

func (q *reservationQueriesImpl) loadMine(fetch func(userID int64) ([]reservation.Reservation, error)) ([]reservation.Reservation, error) {
	q.state.Update(func(s *uistate.State) {
		s.Loading = true
		s.Err = ""
	})

	userID, ok := q.sessions.UserIDNow()
	if !ok {
		err := infra.NewRemoteErr(infra.KindValidation, 0, "no active session", nil)
		q.state.Update(func(s *uistate.State) {
			s.Loading = false
			s.Err = "no active session"
		})
		return nil, err
	}

	list, err := fetch(userID)
	if err != nil {
		q.state.Update(func(s *uistate.State) {
			s.Loading = false
			s.Err = infra.Message(err, "failed to load reservations")
		})
		return nil, err
	}

	q.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.MyReservations = list
	})
	return list, nil
}

func (q *reservationQueriesImpl) LoadMine(ctx context.Context) ([]reservation.Reservation, error) {
	return q.loadMine(func(userID int64) ([]reservation.Reservation, error) {
		return q.reservations.ListByUser(ctx, userID)
	})
}

func (q *reservationQueriesImpl) LoadMineByStatus(ctx context.Context, status reservation.Status) ([]reservation.Reservation, error) {
	return q.loadMine(func(userID int64) ([]reservation.Reservation, error) {
		return q.reservations.ListByUserAndStatus(ctx, userID, status)
	})
}

// ListByVenue and ListByRange are browse reads; they return without touching
// the user's cached list.

func (q *reservationQueriesImpl) ListByVenue(ctx context.Context, venueID int64) ([]reservation.Reservation, error) {
	return q.reservations.ListByVenue(ctx, venueID)
}

func (q *reservationQueriesImpl) ListByRange(ctx context.Context, start, end time.Time) ([]reservation.Reservation, error) {
	timeRange, err := reservation.NewTimeRange(start, end)
	if err != nil {
		return nil, infra.NewRemoteErr(infra.KindValidation, 0, err.Error(), nil)
	}
	return q.reservations.ListByRange(ctx, timeRange.StartWire(), timeRange.EndWire())
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return q.reservations.GetByID(ctx, id)
}
