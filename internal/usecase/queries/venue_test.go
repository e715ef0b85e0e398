//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"cancha-client/internal/domain/venue"
	"cancha-client/internal/infra"
	"cancha-client/internal/uistate"
	"cancha-client/internal/usecase/queries"
	queriesmock "cancha-client/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueQueriesTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockReader *queriesmock.MockVenueReader
	state      *uistate.Publisher
	queries    queries.VenueQueries
}

func (s *VenueQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReader = queriesmock.NewMockVenueReader(s.mockCtrl)
	s.state = uistate.NewPublisher()
	s.queries = queries.NewVenueQueries(s.mockReader, s.state, slog.Default())
}

func (s *VenueQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueQueriesSuite(t *testing.T) {
	suite.Run(t, new(VenueQueriesTestSuite))
}

func testVenue() venue.Venue {
	return venue.Venue{
		ID:           3,
		Name:         "Cancha Central",
		Sport:        venue.SportSoccer,
		PricePerHour: 50,
		Address:      "Av. Siempre Viva 742",
		City:         "Córdoba",
		Active:       true,
	}
}

func (s *VenueQueriesTestSuite) TestLoadActivePublishesVenues() {
	s.mockReader.EXPECT().ListActive(gomock.Any()).Return([]venue.Venue{testVenue()}, nil)

	got, err := s.queries.LoadActive(context.Background())

	s.NoError(err)
	s.Len(got, 1)

	state := s.state.State()
	s.False(state.Loading)
	s.Empty(state.Err)
	s.Equal([]venue.Venue{testVenue()}, state.Venues)
}

func (s *VenueQueriesTestSuite) TestLoadByTypeReplacesPreviousListing() {
	s.state.Update(func(st *uistate.State) {
		st.Venues = []venue.Venue{testVenue(), testVenue()}
	})

	tennis := testVenue()
	tennis.Sport = venue.SportTennis
	s.mockReader.EXPECT().
		ListByType(gomock.Any(), venue.SportTennis).
		Return([]venue.Venue{tennis}, nil)

	_, err := s.queries.LoadByType(context.Background(), venue.SportTennis)

	s.NoError(err)
	s.Len(s.state.State().Venues, 1)
}

func (s *VenueQueriesTestSuite) TestLoadFailureSurfacesMessage() {
	s.mockReader.EXPECT().
		List(gomock.Any()).
		Return(nil, infra.NewRemoteErr(infra.KindNetwork, 0, "service unreachable", nil))

	_, err := s.queries.LoadAll(context.Background())

	s.Error(err)
	state := s.state.State()
	s.False(state.Loading)
	s.Equal("service unreachable", state.Err)
}

func (s *VenueQueriesTestSuite) TestGetByIDDoesNotTouchListing() {
	cached := []venue.Venue{testVenue()}
	s.state.Update(func(st *uistate.State) { st.Venues = cached })

	found := testVenue()
	s.mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&found, nil)

	got, err := s.queries.GetByID(context.Background(), 3)

	s.NoError(err)
	s.Equal(&found, got)
	s.Equal(cached, s.state.State().Venues)
}
