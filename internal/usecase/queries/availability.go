package queries

import (
	"context"
	"log/slog"
	"time"

	"cancha-client/internal/domain/availability"
	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/infra"
	"cancha-client/internal/uistate"
)

type AvailabilityQueries interface {
	LoadSlots(ctx context.Context, venueID int64) ([]availability.Slot, error)
	LoadSlotsInRange(ctx context.Context, venueID int64, start, end time.Time) ([]availability.Slot, error)
	Verify(ctx context.Context, venueID int64, start, end time.Time) (bool, error)
}

type availabilityQueriesImpl struct {
	slots  AvailabilityReader
	state  *uistate.Publisher
	logger *slog.Logger
}

func NewAvailabilityQueries(slots AvailabilityReader, state *uistate.Publisher, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{slots: slots, state: state, logger: logger}
}

func (q *availabilityQueriesImpl) load(fetch func() ([]availability.Slot, error)) ([]availability.Slot, error) {
	q.state.Update(func(s *uistate.State) {
		s.Loading = true
		s.Err = ""
	})

	list, err := fetch()
	if err != nil {
		q.state.Update(func(s *uistate.State) {
			s.Loading = false
			s.Err = infra.Message(err, "failed to load availability")
		})
		return nil, err
	}

	q.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Slots = list
	})
	return list, nil
}

func (q *availabilityQueriesImpl) LoadSlots(ctx context.Context, venueID int64) ([]availability.Slot, error) {
	return q.load(func() ([]availability.Slot, error) { return q.slots.SlotsByVenue(ctx, venueID) })
}

func (q *availabilityQueriesImpl) LoadSlotsInRange(ctx context.Context, venueID int64, start, end time.Time) ([]availability.Slot, error) {
	timeRange, err := reservation.NewTimeRange(start, end)
	if err != nil {
		q.state.Update(func(s *uistate.State) {
			s.Err = err.Error()
		})
		return nil, infra.NewRemoteErr(infra.KindValidation, 0, err.Error(), nil)
	}
	return q.load(func() ([]availability.Slot, error) {
		return q.slots.SlotsByVenueAndRange(ctx, venueID, timeRange.StartWire(), timeRange.EndWire())
	})
}

// Verify asks the availability service directly. This is the slot-calendar
// answer; the reservations service runs its own overlap check on create.
func (q *availabilityQueriesImpl) Verify(ctx context.Context, venueID int64, start, end time.Time) (bool, error) {
	timeRange, err := reservation.NewTimeRange(start, end)
	if err != nil {
		return false, infra.NewRemoteErr(infra.KindValidation, 0, err.Error(), nil)
	}
	return q.slots.Verify(ctx, venueID, timeRange.StartWire(), timeRange.EndWire())
}
