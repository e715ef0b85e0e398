package commands

import (
	"context"
	"log/slog"
	"time"

	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/infra"
	"cancha-client/internal/pkg/errs"
	"cancha-client/internal/uistate"
)

var (
	ErrNoActiveSession   = errs.New("no active session")
	ErrInvalidTimeRange  = errs.New("invalid time range")
	ErrStaleTransition   = errs.New("reservation no longer accepts this action")
	ErrSlotUnavailable   = errs.New("slot unavailable")
	ErrReservationFailed = errs.New("reservation operation failed")
)

// UnavailableMessage is what consumers see when an availability check comes
// back negative.
const UnavailableMessage = "the venue is not available for the selected time"

type ReservationCommands interface {
	// CheckAvailability is advisory: a positive answer does not guarantee a
	// later create will succeed.
	CheckAvailability(ctx context.Context, venueID int64, start, end time.Time) (bool, error)
	Create(ctx context.Context, venueID int64, start, end time.Time, price float64, notes string) (*reservation.Reservation, error)
	Confirm(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64, reason string) error
	Complete(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	reservations ReservationGateway
	sessions     SessionStore
	state        *uistate.Publisher
	locks        *idLocks
	logger       *slog.Logger
}

func NewReservationCommands(
	reservations ReservationGateway,
	sessions SessionStore,
	state *uistate.Publisher,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		sessions:     sessions,
		state:        state,
		locks:        newIDLocks(),
		logger:       logger,
	}
}

func (c *reservationCommandsImpl) begin() {
	c.state.Update(func(s *uistate.State) {
		s.Loading = true
		s.Err = ""
		s.Success = ""
	})
}

// fail clears the loading flag and surfaces exactly one user-facing message.
func (c *reservationCommandsImpl) fail(err error, fallback string) error {
	msg := infra.Message(err, fallback)
	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Err = msg
	})
	return err
}

func (c *reservationCommandsImpl) validationErr(mark error, msg string) error {
	return c.fail(errs.Mark(infra.NewRemoteErr(infra.KindValidation, 0, msg, nil), mark), msg)
}

func (c *reservationCommandsImpl) CheckAvailability(ctx context.Context, venueID int64, start, end time.Time) (bool, error) {
	c.begin()

	timeRange, err := reservation.NewTimeRange(start, end)
	if err != nil {
		return false, c.validationErr(ErrInvalidTimeRange, err.Error())
	}

	available, err := c.reservations.VerifyConflict(ctx, venueID, timeRange.StartWire(), timeRange.EndWire())
	if err != nil {
		return false, c.fail(err, "failed to verify availability")
	}

	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Available = &available
		if !available {
			s.Err = UnavailableMessage
		}
	})
	return available, nil
}

func (c *reservationCommandsImpl) Create(ctx context.Context, venueID int64, start, end time.Time, price float64, notes string) (*reservation.Reservation, error) {
	c.begin()

	userID, ok := c.sessions.UserIDNow()
	if !ok {
		return nil, c.validationErr(ErrNoActiveSession, "no active session")
	}

	timeRange, err := reservation.NewTimeRange(start, end)
	if err != nil {
		return nil, c.validationErr(ErrInvalidTimeRange, err.Error())
	}

	created, err := c.reservations.Create(ctx, reservation.Draft{
		UserID:     userID,
		VenueID:    venueID,
		Range:      timeRange,
		TotalPrice: price,
		Notes:      reservation.NewNote(notes),
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, c.fail(errs.Mark(err, ErrSlotUnavailable), "")
		}
		return nil, c.fail(err, "failed to create reservation")
	}

	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Created = created
		s.Success = "reservation created"
	})

	c.refreshMine(ctx, userID)
	return created, nil
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, id int64) error {
	return c.mutate(ctx, id, reservation.StatusConfirmed, "reservation confirmed", func(ctx context.Context) (*reservation.Reservation, error) {
		return c.reservations.Confirm(ctx, id)
	})
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id int64, reason string) error {
	return c.mutate(ctx, id, reservation.StatusCancelled, "reservation cancelled", func(ctx context.Context) (*reservation.Reservation, error) {
		return c.reservations.Cancel(ctx, id, reason)
	})
}

func (c *reservationCommandsImpl) Complete(ctx context.Context, id int64) error {
	return c.mutate(ctx, id, reservation.StatusCompleted, "reservation completed", func(ctx context.Context) (*reservation.Reservation, error) {
		return c.reservations.Complete(ctx, id)
	})
}

// mutate is the shared shape of the three status transitions: serialize on
// the reservation id, refuse transitions the cached view already knows are
// impossible, run the remote call exactly once, then refresh the list.
func (c *reservationCommandsImpl) mutate(
	ctx context.Context,
	id int64,
	target reservation.Status,
	successMsg string,
	call func(context.Context) (*reservation.Reservation, error),
) error {
	unlock := c.locks.lock(id)
	defer unlock()

	c.begin()

	if current, known := c.cachedStatus(id); known && !reservation.CanTransition(current, target) {
		return c.validationErr(ErrStaleTransition, "reservation no longer accepts this action")
	}

	if _, err := call(ctx); err != nil {
		// A stale client view rejected by the server is an ordinary
		// HTTP failure, not a crash.
		return c.fail(errs.Mark(err, ErrReservationFailed), "failed to update reservation")
	}

	c.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Success = successMsg
	})

	if userID, ok := c.sessions.UserIDNow(); ok {
		c.refreshMine(ctx, userID)
	}
	return nil
}

func (c *reservationCommandsImpl) cachedStatus(id int64) (reservation.Status, bool) {
	for _, r := range c.state.State().MyReservations {
		if r.ID == id {
			return r.Status, true
		}
	}
	return "", false
}

// refreshMine replaces the cached list wholesale after a mutation. The
// mutation itself already succeeded; a failed refresh surfaces its own
// message without undoing that.
func (c *reservationCommandsImpl) refreshMine(ctx context.Context, userID int64) {
	list, err := c.reservations.ListByUser(ctx, userID)
	if err != nil {
		c.logger.Warn("failed to refresh reservation list", "user_id", userID, "error", err.Error())
		c.state.Update(func(s *uistate.State) {
			s.Err = infra.Message(err, "failed to load reservations")
		})
		return
	}
	c.state.Update(func(s *uistate.State) {
		s.MyReservations = list
	})
}
