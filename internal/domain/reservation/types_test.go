//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"cancha-client/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]reservation.Status]bool{
		{reservation.StatusPending, reservation.StatusConfirmed}:   true,
		{reservation.StatusPending, reservation.StatusCancelled}:   true,
		{reservation.StatusConfirmed, reservation.StatusCancelled}: true,
		{reservation.StatusConfirmed, reservation.StatusCompleted}: true,
	}

	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusCancelled,
		reservation.StatusCompleted,
	}

	for _, from := range all {
		for _, to := range all {
			got := reservation.CanTransition(from, to)
			want := allowed[[2]reservation.Status{from, to}]
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusConfirmed.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.True(t, reservation.StatusCompleted.IsTerminal())

	// terminal states have no outgoing edges at all
	for _, to := range []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusCancelled,
		reservation.StatusCompleted,
	} {
		assert.False(t, reservation.CanTransition(reservation.StatusCancelled, to))
		assert.False(t, reservation.CanTransition(reservation.StatusCompleted, to))
	}
}

func TestNewStatus(t *testing.T) {
	status, err := reservation.NewStatus("CONFIRMADA")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, status)

	_, err = reservation.NewStatus("confirmada")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)

	_, err = reservation.NewStatus("")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestNewTimeRange(t *testing.T) {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	tr, err := reservation.NewTimeRange(start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "2026-09-12T18:00:00", tr.StartWire())
	assert.Equal(t, "2026-09-12T19:00:00", tr.EndWire())
	assert.Equal(t, time.Hour, tr.Duration())

	_, err = reservation.NewTimeRange(start, start)
	assert.ErrorIs(t, err, reservation.ErrInvalidTimeRange)

	_, err = reservation.NewTimeRange(start, start.Add(-time.Minute))
	assert.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
}

func TestReservationActionGuards(t *testing.T) {
	r := reservation.Reservation{Status: reservation.StatusPending}
	assert.True(t, r.IsActive())
	assert.True(t, r.CanConfirm())
	assert.True(t, r.CanCancel())
	assert.False(t, r.CanComplete())

	r.Status = reservation.StatusConfirmed
	assert.True(t, r.IsActive())
	assert.False(t, r.CanConfirm())
	assert.True(t, r.CanCancel())
	assert.True(t, r.CanComplete())

	r.Status = reservation.StatusCancelled
	assert.False(t, r.IsActive())
	assert.False(t, r.CanConfirm())
	assert.False(t, r.CanCancel())
	assert.False(t, r.CanComplete())
}
