package queries

import (
	"context"
	"log/slog"

	"cancha-client/internal/domain/venue"
	"cancha-client/internal/infra"
	"cancha-client/internal/uistate"
)

type VenueQueries interface {
	LoadAll(ctx context.Context) ([]venue.Venue, error)
	LoadActive(ctx context.Context) ([]venue.Venue, error)
	LoadByType(ctx context.Context, sport venue.SportType) ([]venue.Venue, error)
	LoadByCity(ctx context.Context, city string) ([]venue.Venue, error)
	GetByID(ctx context.Context, id int64) (*venue.Venue, error)
}

type venueQueriesImpl struct {
	venues VenueReader
	state  *uistate.Publisher
	logger *slog.Logger
}

func NewVenueQueries(venues VenueReader, state *uistate.Publisher, logger *slog.Logger) VenueQueries {
	return &venueQueriesImpl{venues: venues, state: state, logger: logger}
}

// load is the common shape: flag loading, fetch, replace the cached slice
// wholesale.
func (q *venueQueriesImpl) load(fetch func() ([]venue.Venue, error)) ([]venue.Venue, error) {
	q.state.Update(func(s *uistate.State) {
		s.Loading = true
		s.Err = ""
	})

	list, err := fetch()
	if err != nil {
		q.state.Update(func(s *uistate.State) {
			s.Loading = false
			s.Err = infra.Message(err, "failed to load venues")
		})
		return nil, err
	}

	q.state.Update(func(s *uistate.State) {
		s.Loading = false
		s.Venues = list
	})
	return list, nil
}

func (q *venueQueriesImpl) LoadAll(ctx context.Context) ([]venue.Venue, error) {
	return q.load(func() ([]venue.Venue, error) { return q.venues.List(ctx) })
}

func (q *venueQueriesImpl) LoadActive(ctx context.Context) ([]venue.Venue, error) {
	return q.load(func() ([]venue.Venue, error) { return q.venues.ListActive(ctx) })
}

func (q *venueQueriesImpl) LoadByType(ctx context.Context, sport venue.SportType) ([]venue.Venue, error) {
	return q.load(func() ([]venue.Venue, error) { return q.venues.ListByType(ctx, sport) })
}

func (q *venueQueriesImpl) LoadByCity(ctx context.Context, city string) ([]venue.Venue, error) {
	return q.load(func() ([]venue.Venue, error) { return q.venues.ListByCity(ctx, city) })
}

// GetByID is a point read; it does not touch the cached listing.
func (q *venueQueriesImpl) GetByID(ctx context.Context, id int64) (*venue.Venue, error) {
	return q.venues.GetByID(ctx, id)
}
