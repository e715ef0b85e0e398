//go:build unit

package uistate_test

import (
	"sync"
	"testing"

	"cancha-client/internal/uistate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDerivesFromCurrent(t *testing.T) {
	p := uistate.NewPublisher()

	next := p.Update(func(s *uistate.State) {
		s.Loading = true
	})
	assert.True(t, next.Loading)

	next = p.Update(func(s *uistate.State) {
		s.Err = "boom"
	})
	assert.True(t, next.Loading, "previous fields survive a transition")
	assert.Equal(t, "boom", next.Err)
	assert.Equal(t, next, p.State())
}

func TestSubscribeGetsCurrentImmediately(t *testing.T) {
	p := uistate.NewPublisher()
	p.Update(func(s *uistate.State) { s.Success = "hello" })

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	got := <-ch
	assert.Equal(t, "hello", got.Success)
}

// A subscriber that never drains still observes the newest snapshot.
func TestSlowSubscriberKeepsLatest(t *testing.T) {
	p := uistate.NewPublisher()
	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	for range 100 {
		p.Update(func(s *uistate.State) { s.Err = "stale" })
	}
	p.Update(func(s *uistate.State) { s.Err = "latest" })

	got := <-ch
	assert.Equal(t, "latest", got.Err)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	p := uistate.NewPublisher()
	ch := p.Subscribe()
	p.Unsubscribe(ch)

	// drain the initial snapshot, then observe the close
	for range ch {
	}

	// double unsubscribe is a no-op
	p.Unsubscribe(ch)
}

func TestConcurrentUpdates(t *testing.T) {
	p := uistate.NewPublisher()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Update(func(s *uistate.State) { s.Loading = !s.Loading })
		}()
	}
	wg.Wait()

	// 50 toggles land back on false
	assert.False(t, p.State().Loading)
}

func TestIsAvailable(t *testing.T) {
	var s uistate.State
	require.False(t, s.IsAvailable())

	yes := true
	s.Available = &yes
	assert.True(t, s.IsAvailable())

	no := false
	s.Available = &no
	assert.False(t, s.IsAvailable())
}
